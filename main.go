package main

import (
	// Stdlib
	"os"

	// Internal
	"github.com/tnozicka/doozer/commands/release"
	"github.com/tnozicka/doozer/commands/version"

	// Vendor
	"gopkg.in/tchap/gocli.v2"
)

const version = "0.9.0"

func main() {
	// Initialise the application.
	doozer := gocli.NewApp("doozer")
	doozer.UsageLine = "doozer SUBCMD [SUBCMD_OPTION ...]"
	doozer.Short = "release version management utility"
	doozer.Version = version
	doozer.Long = `
  doozer takes care of the release chores around the project version file:
  it can print the current version, bump the version and commit the change
  together with a generated changelog, and tag released versions.

  See the subcommands.`

	// Register subcommands.
	doozer.MustRegisterSubcommand(releaseCmd.Command)
	doozer.MustRegisterSubcommand(versionCmd.Command)

	// Run the application.
	doozer.Run(os.Args[1:])
}
