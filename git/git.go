package git

import (
	// Stdlib
	"bytes"
	"fmt"

	// Internal
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/git/gitutil"
	"github.com/tnozicka/doozer/shell"
)

func Add(args ...string) error {
	_, err := RunCommand("add", args...)
	return err
}

// CommitChanges creates a commit using the given message verbatim.
func CommitChanges(message string) error {
	_, err := RunCommand("commit", "-m", message)
	return err
}

func Tag(args ...string) error {
	_, err := RunCommand("tag", args...)
	return err
}

func DeleteTag(tag string) error {
	return Tag("-d", tag)
}

func Push(remote string, refspecs ...string) error {
	argsList := make([]string, 1, 1+len(refspecs))
	argsList[0] = remote
	argsList = append(argsList, refspecs...)
	_, err := RunCommand("push", argsList...)
	return err
}

// RefExistsStrict requires the whole ref path to be specified,
// e.g. refs/tags/v1.0.0.
func RefExistsStrict(ref string) (exists bool, err error) {
	task := fmt.Sprintf("Check whether ref '%v' exists", ref)
	_, stderr, err := shell.Run("git", "--no-pager", "show-ref", "--verify", "--quiet", ref)
	if err != nil {
		if stderr.Len() != 0 {
			// Non-empty error output means that there was an error.
			return false, errs.NewErrorWithHint(task, err, stderr.String())
		}
		// Otherwise the ref does not exist.
		return false, nil
	}
	// No error means that the ref exists.
	return true, nil
}

func TagExists(tag string) (exists bool, err error) {
	return RefExistsStrict("refs/tags/" + tag)
}

// EnsureCleanWorkingTree makes sure there are no uncommitted changes
// in the repository, the staged ones included. Untracked files are ignored.
//
// ErrDirtyRepository is returned as the cause in case the tree is not clean,
// with the porcelain status attached as the hint.
func EnsureCleanWorkingTree() error {
	task := "Make sure the working tree is clean"
	stdout, err := RunCommand("status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return errs.NewError(task, err)
	}
	if stdout.Len() != 0 {
		return errs.NewErrorWithHint(task, ErrDirtyRepository, stdout.String())
	}
	return nil
}

func CurrentBranch() (branch string, err error) {
	return gitutil.CurrentBranch()
}

func RepositoryRootAbsolutePath() (path string, err error) {
	return gitutil.RepositoryRootAbsolutePath()
}

func RelativePath(pathFromRoot string) (relativePath string, err error) {
	return gitutil.RelativePath(pathFromRoot)
}

func Run(args ...string) (stdout *bytes.Buffer, err error) {
	return gitutil.Run(args...)
}

func RunCommand(command string, args ...string) (stdout *bytes.Buffer, err error) {
	return gitutil.RunCommand(command, args...)
}
