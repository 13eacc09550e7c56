package log

import (
	// Stdlib
	"fmt"
	"io"
	"os"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
	"github.com/shiena/ansicolor"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var levelStrings = []string{"trace", "debug", "verbose", "info", "off"}

func LevelStrings() []string {
	strs := make([]string, len(levelStrings))
	copy(strs, levelStrings)
	return strs
}

func MustLevelToString(level Level) string {
	if int(level) >= len(levelStrings) {
		panic(fmt.Sprintf("unknown log level: %v", uint32(level)))
	}
	return levelStrings[level]
}

func MustStringToLevel(levelString string) Level {
	for i, str := range levelStrings {
		if str == levelString {
			return Level(i)
		}
	}
	panic("unknown log level string: " + levelString)
}

var v = uint32(Info)

func SetV(level Level) {
	atomic.StoreUint32(&v, uint32(level))
}

func V(level Level) Logger {
	if Level(atomic.LoadUint32(&v)) > level {
		return Logger(false)
	}
	return Logger(true)
}

// Disable turns all logging off. Useful for porcelain output modes.
func Disable() {
	SetV(Off)
}

// stderr interprets ANSI escape sequences so that the colored output
// works on Windows as well.
var stderr io.Writer = ansicolor.NewAnsiColorWriter(os.Stderr)

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func (l Logger) log(v ...interface{}) {
	if l {
		fmt.Fprint(stderr, v...)
	}
}

func (l Logger) logf(format string, v ...interface{}) {
	if l {
		fmt.Fprintf(stderr, format, v...)
	}
}

func (l Logger) logln(v ...interface{}) {
	if l {
		fmt.Fprintln(stderr, v...)
	}
}

func (l Logger) Run(msg string) {
	l.logf("[RUN]      %v\n", msg)
}

func (l Logger) Warn(msg string) {
	l.logf("%v %v\n", yellow("[WARN]    "), msg)
}

func (l Logger) Fail(msg string) {
	l.logf("%v %v\n", red("[FAIL]    "), msg)
}

// Log prints the given message without any prefix attached.
func (l Logger) Log(msg string) {
	l.logln(msg)
}

func (l Logger) Rollback(msg string) {
	l.logf("[ROLLBACK] %v\n", msg)
}

func (l Logger) Print(v ...interface{}) {
	l.log(v...)
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.logf(format, v...)
}

func (l Logger) Println(v ...interface{}) {
	l.logln(v...)
}

func (l Logger) Fatal(v ...interface{}) {
	fmt.Fprint(stderr, v...)
	os.Exit(1)
}

func (l Logger) Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(stderr, format, v...)
	os.Exit(1)
}

func (l Logger) Fatalln(v ...interface{}) {
	fmt.Fprintln(stderr, v...)
	os.Exit(1)
}

func Run(msg string) {
	V(Info).Run(msg)
}

func Warn(msg string) {
	V(Info).Warn(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func Log(msg string) {
	V(Info).Log(msg)
}

func Rollback(msg string) {
	V(Info).Rollback(msg)
}

func Print(v ...interface{}) {
	V(Info).Print(v...)
}

func Printf(format string, v ...interface{}) {
	V(Info).Printf(format, v...)
}

func Println(v ...interface{}) {
	V(Info).Println(v...)
}

func Fatal(v ...interface{}) {
	V(Info).Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	V(Info).Fatalf(format, v...)
}

func Fatalln(v ...interface{}) {
	V(Info).Fatalln(v...)
}
