package tagCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/tnozicka/doozer/action"
	"github.com/tnozicka/doozer/app"
	"github.com/tnozicka/doozer/app/appflags"
	"github.com/tnozicka/doozer/config"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/git"
	"github.com/tnozicka/doozer/log"
	"github.com/tnozicka/doozer/prompt"
	"github.com/tnozicka/doozer/releases"
	"github.com/tnozicka/doozer/version"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "tag [-push]",
	Short:     "tag the current version as released",
	Long: `
  Create tag v<version> pointing to the current branch tip,
  <version> being the version currently stored in the version file.

  This marks the version as released, which bounds the commit range
  that the next 'doozer version bump' puts into the commit message.

  In case -push is set, the tag is also pushed to the remote.
  A failed push deletes the local tag again.
	`,
	Action: run,
}

var (
	flagPush bool
)

func init() {
	// Register flags.
	Command.Flags.BoolVar(&flagPush, "push", flagPush,
		"push the tag to the remote")

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

func runMain() (err error) {
	// Rollback machinery.
	chain := action.NewActionChain()
	defer chain.RollbackOnError(&err)

	// Load the project configuration.
	conf, err := config.Load()
	if err != nil {
		return err
	}
	remoteName := conf.RemoteName

	// Read the current version.
	task := "Read the current version"
	log.Run(task)
	ver, err := version.Get()
	if err != nil {
		return err
	}
	tag := ver.ReleaseTagString()

	// Make sure the tag does not exist yet.
	task = fmt.Sprintf("Make sure tag '%v' does not exist yet", tag)
	exists, err := git.TagExists(tag)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewError(task, fmt.Errorf("tag '%v' already exists", tag))
	}

	// Warn in case an even newer release tag exists already,
	// which usually means the version file is lagging behind.
	task = "Check the release tag ordering"
	tags, err := releases.ListTags()
	if err != nil {
		return err
	}
	if len(tags) != 0 {
		newestTag := tags[len(tags)-1]
		newestVersion, err := version.FromTag(newestTag)
		if err != nil {
			return errs.NewError(task, err)
		}
		if ver.LT(newestVersion) {
			log.Warn(fmt.Sprintf(
				"The newest release tag is '%v', which is newer than '%v'", newestTag, tag))
		}
	}

	// Get the current branch to mention it in the prompt.
	currentBranch, err := git.CurrentBranch()
	if err != nil {
		return err
	}

	// Ask the user to confirm.
	confirmed, err := prompt.Confirm(
		fmt.Sprintf("Tag the tip of branch '%v' as release %v?", currentBranch, tag))
	if err != nil {
		return err
	}
	if !confirmed {
		return prompt.ErrCanceled
	}
	fmt.Println()

	// Create the tag.
	task = fmt.Sprintf("Create tag '%v'", tag)
	log.Run(task)
	if err := git.Tag(tag); err != nil {
		return errs.NewError(task, err)
	}
	chain.PushTask(task, action.ActionFunc(func() error {
		return git.DeleteTag(tag)
	}))

	// Push the tag in case -push is set.
	if flagPush {
		task = fmt.Sprintf("Push tag '%v' to remote '%v'", tag, remoteName)
		log.Run(task)
		if err := git.Push(remoteName, tag); err != nil {
			return errs.NewError(task, err)
		}
	}

	return nil
}
