// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/draftd/chain"
	"github.com/bitmark-inc/draftd/configuration"
	"github.com/bitmark-inc/draftd/publish"
	"github.com/bitmark-inc/draftd/rpc/listeners"
	"github.com/bitmark-inc/draftd/util"
	"github.com/bitmark-inc/logger"
)

// defaults, relative names are resolved against the data directory
const (
	defaultLevelDBDirectory      = "data"
	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"

	defaultLogDirectory = "log"
	defaultLogFile      = "draftd.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024

	defaultRPCClients = 10
)

// DatabaseType - location of the LevelDB database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// data_directory has no default: "." means the directory holding the
// configuration file
func defaultConfiguration() *Configuration {
	return &Configuration{
		Chain: chain.Bitmark,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
		},
		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
		},
		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// getConfiguration - read, validate and resolve the configuration file,
// creating the database and log directories
func getConfiguration(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}
	if "" == options.Database.Name {
		options.Database.Name = chain.DefaultDatabase(options.Chain)
	}

	if err := options.resolveDataDirectory(filepath.Dir(configurationFileName)); nil != err {
		return nil, err
	}
	if err := options.resolvePaths(); nil != err {
		return nil, err
	}

	if err := util.MakeDirectories(options.Database.Directory, options.Logging.Directory); nil != err {
		return nil, err
	}
	return options, nil
}

// the data directory must already exist
func (options *Configuration) resolveDataDirectory(configurationDirectory string) error {
	switch options.DataDirectory {
	case "", "~":
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = configurationDirectory
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	info, err := os.Stat(options.DataDirectory)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}
	return nil
}

// make every path absolute under the data directory
//
// database and log file names must be plain names, the database
// name is placed in the database directory
func (options *Configuration) resolvePaths() error {
	for _, f := range []*string{
		&options.Database.Directory,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	} {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	for _, name := range []string{options.Database.Name, options.Logging.File} {
		if "." != filepath.Dir(name) {
			return fmt.Errorf("Files: %q is not plain name", name)
		}
	}
	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)

	return nil
}
