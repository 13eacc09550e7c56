package versionCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/tnozicka/doozer/app"
	"github.com/tnozicka/doozer/app/appflags"
	"github.com/tnozicka/doozer/commands/version/bump"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/version"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "version",
	Short:     "print the current project version",
	Long: `
  Print the project version string as stored in the version file.

  To check the version of doozer itself, use -version.

  There are also some subcommands available. Check them out.
	`,
	Action: func(cmd *gocli.Command, args []string) {
		if len(args) != 0 {
			cmd.Usage()
			os.Exit(2)
		}

		app.InitOrDie()

		ver, err := version.Get()
		if err != nil {
			errs.Fatal(err)
		}

		fmt.Println(ver)
	},
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(bumpCmd.Command)
}
