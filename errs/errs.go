package errs

import (
	// Internal
	"github.com/tnozicka/doozer/log"
)

// Err annotates the underlying error with the task that failed
// and optionally a hint on how to fix the problem.
//
// Errors can be chained by wrapping an Err in another Err,
// in which case the whole task trail is printed on Log or Fatal.
type Err struct {
	task string
	err  error
	hint string
}

func NewError(task string, err error) *Err {
	return NewErrorWithHint(task, err, "")
}

func NewErrorWithHint(task string, err error, hint string) *Err {
	return &Err{task, err, hint}
}

func (err *Err) Error() string {
	return err.err.Error()
}

func (err *Err) Task() string {
	return err.task
}

func (err *Err) Hint() string {
	return err.hint
}

// RootCause returns the error at the bottom of the error chain.
func RootCause(err error) error {
	for {
		ex, ok := err.(*Err)
		if !ok {
			return err
		}
		err = ex.err
	}
}

// Log prints the task trail for the given error, the outermost task first,
// together with the hints that are attached to the chain.
// The original error is returned so that Log can be used in return statements.
func Log(err error) error {
	logger := log.V(log.Info)
	logChain(logger, err)
	return err
}

func logChain(logger log.Logger, err error) {
	ex, ok := err.(*Err)
	if !ok {
		return
	}
	if ex.task != "" {
		logger.Fail(ex.task)
	}
	if ex.hint != "" {
		logger.Print(ex.hint)
	}
	logChain(logger, ex.err)
}

// Fatal prints the error using Log and terminates the process
// with a non-zero exit status.
func Fatal(err error) {
	Log(err)
	logger := log.V(log.Info)
	if cause := RootCause(err); cause != nil {
		logger.Fatalln("\nError: " + cause.Error())
	}
	logger.Fatalln("\nError: task failed")
}
