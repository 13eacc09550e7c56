// Package action provides the rollback primitives that the release
// commands use to undo already-finished steps when a later step fails.
package action

// Action represents a finished step that knows how to undo itself.
type Action interface {
	Rollback() error
}

type ActionFunc func() error

func (action ActionFunc) Rollback() error {
	return action()
}

// Noop can be returned by functions that sometimes have nothing to undo.
var Noop = ActionFunc(func() error { return nil })
