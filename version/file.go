package version

import (
	// Stdlib
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	// Internal
	"github.com/tnozicka/doozer/config"
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/fileutil"
	"github.com/tnozicka/doozer/git/gitutil"
)

// FileRelativePath returns the version file path
// relative to the repository root.
func FileRelativePath() (string, error) {
	conf, err := config.Load()
	if err != nil {
		return "", err
	}
	return conf.VersionFile, nil
}

func fileAbsolutePath() (string, error) {
	relativePath, err := FileRelativePath()
	if err != nil {
		return "", err
	}
	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, relativePath), nil
}

// Get reads the project version from the version file.
func Get() (*Version, error) {
	path, err := fileAbsolutePath()
	if err != nil {
		return nil, err
	}

	// Read the version file.
	task := fmt.Sprintf("Read version file '%v'", path)
	content, err := ioutil.ReadFile(path)
	if err != nil {
		hint := `
Make sure the version file exists and is readable.
The path can be set using the version_file key in ` + config.LocalConfigFilename + `.

`
		return nil, errs.NewErrorWithHint(task, err, hint)
	}

	// Parse the content and return the version.
	task = fmt.Sprintf("Parse version file '%v'", path)
	ver, err := Parse(strings.TrimSpace(string(content)))
	if err != nil {
		hint := `
The version file must contain a single line holding the version string,
which is a dot-separated sequence of non-negative integers, e.g. 4.12.7.

`
		return nil, errs.NewErrorWithHint(task, err, hint)
	}
	return ver, nil
}

// Set overwrites the version file with the given version.
// The file content is exactly the version string followed by a newline.
func Set(ver *Version) error {
	path, err := fileAbsolutePath()
	if err != nil {
		return err
	}

	if _, err := fileutil.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	task := fmt.Sprintf("Write version file '%v'", path)
	if err := ioutil.WriteFile(path, []byte(ver.String()+"\n"), 0644); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
