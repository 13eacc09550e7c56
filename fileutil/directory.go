package fileutil

import (
	// Stdlib
	"errors"
	"fmt"
	"os"

	// Internal
	"github.com/tnozicka/doozer/action"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/log"
)

// EnsureDirectoryExists creates the given directory unless it exists already.
// It is used to make sure the version file can be written even when its
// directory is not committed yet.
//
// The returned action removes the directory again, it is a noop in case
// the directory was already there.
func EnsureDirectoryExists(path string) (action.Action, error) {
	task := fmt.Sprintf("Check whether '%v' exists and is a directory", path)
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errs.NewError(task, err)
		}
	} else {
		if !info.IsDir() {
			return nil, errs.NewError(task, errors.New("not a directory: "+path))
		}
		// Nothing to do, nothing to undo.
		return action.Noop, nil
	}

	createTask := fmt.Sprintf("Create directory '%v'", path)
	log.Run(createTask)
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, errs.NewError(createTask, err)
	}

	return action.ActionFunc(func() error {
		log.Rollback(createTask)
		task := fmt.Sprintf("Remove directory '%v'", path)
		if err := os.RemoveAll(path); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}
