package action

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/log"
)

var ErrRollbackFailed = errs.NewError(
	"Roll back the release changes", errors.New("failed to roll back changes"))

// RollbackOnError is equivalent to RollbackTaskOnError(err, "", action).
func RollbackOnError(err *error, action Action) {
	RollbackTaskOnError(err, "", action)
}

// RollbackTaskOnError wraps a single action in an ActionChain
// so that it is rolled back in case *err is set.
func RollbackTaskOnError(err *error, task string, action Action) {
	chain := NewActionChain()
	chain.PushTask(task, action)
	chain.RollbackOnError(err)
}

type actionRecord struct {
	task   string
	action Action
}

// ActionChain collects the rollback actions of the release steps
// that have finished so far. Rolling the chain back undoes the steps
// in the reverse order, announcing each task as it is being undone.
type ActionChain struct {
	actions []*actionRecord
}

func NewActionChain() *ActionChain {
	return &ActionChain{}
}

func (chain *ActionChain) Push(action Action) {
	chain.PushTask("", action)
}

func (chain *ActionChain) PushTask(task string, action Action) {
	if action != nil {
		chain.actions = append(chain.actions, &actionRecord{task, action})
	}
}

func (chain *ActionChain) Rollback() error {
	var ex error
	for i := range chain.actions {
		act := chain.actions[len(chain.actions)-1-i]

		if task := act.task; task != "" {
			log.Rollback(task)
		}

		// Keep going even when an action fails, the remaining
		// steps still deserve the chance to be undone.
		if err := act.action.Rollback(); err != nil {
			errs.Log(err)
			ex = ErrRollbackFailed
		}
	}
	return ex
}

// RollbackOnError is supposed to be called using defer:
//
//     defer chain.RollbackOnError(&err)
//
// A pointer is being passed in since the args are bound at the time
// the defer statement is encountered, while the error to check is only
// assigned later, when the deferred call actually runs.
func (chain *ActionChain) RollbackOnError(err *error) {
	if *err != nil {
		chain.Rollback()
	}
}
