package config

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Opts *Options

func GetConfig() (*Options, error) {
	GetDefaultOptions()

	dataDir, err := checkDataDir(Opts.Data)
	if err != nil {
		return nil, err
	}
	Opts.Data = dataDir

	return Opts, nil
}

// checkDataDir resolves the data directory to an absolute path and makes
// sure it exists. An empty directory means ~/.tomelist.
func checkDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		currentUser, err := user.Current()
		if err != nil {
			return "", errors.Wrap(err, "unable to get current user")
		}
		if currentUser.HomeDir == "" {
			return "", errors.New("unable to get home directory")
		}
		dataDir = filepath.Join(currentUser.HomeDir, ".tomelist")
	}

	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		absDir, err := filepath.Abs(dataDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", errors.Wrapf(err, "unable to create data folder %s", dataDir)
		}
	}
	return dataDir, nil
}

func ParseFile(file string) (*Options, error) {
	// Check if file exists
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}
	if Opts == nil {
		GetDefaultOptions()
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(Opts); err != nil {
		return nil, err
	}
	return Opts, nil
}

// LibraryPath is the resolved location of the persisted library file.
func (o *Options) LibraryPath() string {
	if filepath.IsAbs(o.LibraryFile) {
		return o.LibraryFile
	}
	return filepath.Join(o.Data, o.LibraryFile)
}

// LogPath is the resolved location of the log file.
func (o *Options) LogPath() string {
	if filepath.IsAbs(o.LogFile) {
		return o.LogFile
	}
	return filepath.Join(o.Data, o.LogFile)
}
