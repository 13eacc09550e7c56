package bumpCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/tnozicka/doozer/app"
	"github.com/tnozicka/doozer/app/appflags"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/git"
	"github.com/tnozicka/doozer/log"
	"github.com/tnozicka/doozer/releases"
	"github.com/tnozicka/doozer/version"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "bump",
	Short:     "bump the project version and commit the change",
	Long: `
  Increment the last component of the project version by one,
  write the new version string into the version file and commit it.

  The commit message subject mentions the new release tag. The message
  body lists the commits created since the previous release, i.e. the
  commits reachable from the current branch tip but not from the tag
  marking the version currently stored in the version file.

  The repository must be clean for the command to do anything at all.
  The old version string is printed to stdout before anything is changed.
	`,
	Action: run,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	if err := runMain(); err != nil {
		errs.Fatal(err)
	}
}

func runMain() error {
	// Make sure the working tree is clean. Nothing is mutated
	// before this check passes.
	task := "Make sure the working tree is clean"
	log.Run(task)
	if err := git.EnsureCleanWorkingTree(); err != nil {
		return err
	}

	// Read the current version.
	task = "Read the current version"
	log.Run(task)
	currentVersion, err := version.Get()
	if err != nil {
		return err
	}

	// Print the current version to stdout before any mutation happens
	// so that the operator always learns what the repository was at.
	fmt.Println(currentVersion)

	// Compute the next version.
	nextVersion := currentVersion.IncrementLast()

	// Collect the commits for the commit message body.
	task = "Collect the commits since the previous release"
	log.Run(task)
	commits, tagFound, err := releases.ListCommitsSinceRelease(currentVersion)
	if err != nil {
		return err
	}
	if !tagFound {
		log.Warn(fmt.Sprintf(
			"Release tag '%v' not found, the commit message will list the whole branch history",
			currentVersion.ReleaseTagString()))
	}

	// Write the new version into the version file.
	task = fmt.Sprintf("Bump the version file to %v", nextVersion)
	log.Run(task)
	if err := version.Set(nextVersion); err != nil {
		return errs.NewError(task, err)
	}

	// Stage the version file.
	versionFile, err := version.FileRelativePath()
	if err != nil {
		return err
	}
	task = fmt.Sprintf("Stage '%v'", versionFile)
	log.Run(task)
	relativePath, err := git.RelativePath(versionFile)
	if err != nil {
		return err
	}
	if err := git.Add(relativePath); err != nil {
		return errs.NewError(task, err)
	}

	// Commit the new version. The version file write and the staging
	// are deliberately not rolled back in case the commit fails, so that
	// the operator can inspect what happened and retry the commit by hand.
	task = fmt.Sprintf("Commit the new version (release %v)", nextVersion.ReleaseTagString())
	log.Run(task)
	if err := git.CommitChanges(releases.CommitMessage(nextVersion, commits)); err != nil {
		return errs.NewError(task, err)
	}

	return nil
}
