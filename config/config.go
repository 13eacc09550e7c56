package config

import (
	// Stdlib
	"io/ioutil"
	"os"
	"path/filepath"

	// Internal
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/git/gitutil"

	// Vendor
	"gopkg.in/yaml.v2"
)

const (
	// LocalConfigFilename is the filename of the configuration file
	// that represents project-specific doozer configuration.
	//
	// This file is expected to be placed in the repository root.
	LocalConfigFilename = ".doozer.yml"

	// DefaultVersionFile is the version file path that is used
	// when the configuration file does not say otherwise.
	DefaultVersionFile = "doozerlib/VERSION"

	// DefaultRemoteName is the git remote that release tags are pushed to
	// when the configuration file does not say otherwise.
	DefaultRemoteName = "origin"
)

// Config represents the project-specific doozer configuration.
//
// All the keys are optional, the configuration file itself is optional
// as well. A missing file simply means the defaults are used.
type Config struct {
	VersionFile string `yaml:"version_file"`
	RemoteName  string `yaml:"remote"`
}

var configCache *Config

// Load returns the project configuration as read from LocalConfigFilename
// in the repository root, filling in the defaults for the missing keys.
//
// The configuration is cached, the file is read at most once per process.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	config := &Config{}

	content, err := readLocalConfig()
	if err != nil {
		return nil, err
	}
	if content != nil {
		task := "Unmarshal the local configuration file"
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, errs.NewErrorWithHint(
				task, err, "Make sure "+LocalConfigFilename+" is valid YAML\n")
		}
	}

	if config.VersionFile == "" {
		config.VersionFile = DefaultVersionFile
	}
	if config.RemoteName == "" {
		config.RemoteName = DefaultRemoteName
	}

	configCache = config
	return config, nil
}

func readLocalConfig() (content []byte, err error) {
	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, LocalConfigFilename)

	task := "Read the local configuration file"
	content, err = ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// The configuration file is optional.
			return nil, nil
		}
		return nil, errs.NewError(task, err)
	}
	return content, nil
}
