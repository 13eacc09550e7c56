package releaseCmd

import (
	// Internal
	"github.com/tnozicka/doozer/app/appflags"
	"github.com/tnozicka/doozer/commands/release/changes"
	"github.com/tnozicka/doozer/commands/release/tag"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "release",
	Short:     "various release-related actions",
	Long: `
  Perform various release-related actions. See the subcommands.
	`,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(changesCmd.Command)
	Command.MustRegisterSubcommand(tagCmd.Command)
}
