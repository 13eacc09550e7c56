package appflags

import (
	// Stdlib
	"flag"

	// Internal
	flags "github.com/tnozicka/doozer/flag"
	"github.com/tnozicka/doozer/log"
)

var (
	FlagLog *flags.StringEnumFlag = flags.NewStringEnumFlag(
		log.LevelStrings(), log.MustLevelToString(log.Info))
)

func RegisterGlobalFlags(flags *flag.FlagSet) {
	flags.Var(FlagLog, "log", "set logging verbosity; {trace|debug|verbose|info|off}")
}
