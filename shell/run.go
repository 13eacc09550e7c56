package shell

import (
	// Stdlib
	"bytes"
	"os/exec"
)

// Run executes the given command, waits for it to finish and returns
// what the command printed to its standard and error outputs.
func Run(command string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)

	cmd := exec.Command(command, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()

	return stdout, stderr, err
}
