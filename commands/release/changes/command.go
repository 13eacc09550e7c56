package changesCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/tnozicka/doozer/app"
	"github.com/tnozicka/doozer/app/appflags"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/log"
	"github.com/tnozicka/doozer/releases"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "changes [-porcelain]",
	Short:     "list the commits that belong to the next release",
	Long: `
  List the commits created since the previous release, i.e. exactly
  the commits that the next 'doozer version bump' will mention in
  the release preparation commit message.

  The 'porcelain' flag will make the output more script-friendly,
  e.g. it will suppress all the progress and warning messages.
	`,
	Action: run,
}

var (
	flagPorcelain bool
)

func init() {
	// Register flags.
	Command.Flags.BoolVar(&flagPorcelain, "porcelain", flagPorcelain,
		"enable script-friendly output")

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	if flagPorcelain {
		log.Disable()
	}

	if err := runMain(); err != nil {
		errs.Fatal(err)
	}
}

func runMain() error {
	// Collect the commits since the previous release.
	task := "Collect the commits since the previous release"
	log.Run(task)
	commits, tagFound, err := releases.ListNewCommits()
	if err != nil {
		return err
	}
	if !tagFound {
		log.Warn("No release tag found for the current version, listing the whole branch history")
	}

	// Print the commits, one line per commit.
	for _, commit := range commits {
		fmt.Println(commit.OnelineString())
	}
	return nil
}
