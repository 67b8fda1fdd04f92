// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/draftd/contract"
	"github.com/bitmark-inc/draftd/host"
	"github.com/bitmark-inc/draftd/mode"
	"github.com/bitmark-inc/draftd/publish"
	"github.com/bitmark-inc/draftd/rpc"
	"github.com/bitmark-inc/draftd/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

var flags = []getoptions.Option{
	{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
	{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
	{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
	{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
}

func main() {
	defer exitwithstatus.Handler()

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	switch {
	case len(options["version"]) > 0:
		processSetupCommand(program, []string{"version"})
		return
	case len(options["help"]) > 0:
		processSetupCommand(program, []string{"help"})
		return
	}

	// key and certificate generation run before any configuration exists
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: exactly one config-file option is required, %d were given", program, len(options["config-file"]))
	}

	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: configuration: %q  error: %s", program, configurationFile, err)
	}

	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Infof("starting version: %s", version)
	log.Debugf("configuration: %v", theConfiguration)

	if "" != theConfiguration.PidFile {
		if err := createPidFile(theConfiguration.PidFile); nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		defer os.Remove(theConfiguration.PidFile)
	}

	// requests are refused until the mode becomes Normal
	if err = mode.Initialise(theConfiguration.Chain); nil != err {
		fatal(log, "mode", err)
	}
	defer mode.Finalise()

	log.Infof("chain: %s  database: %q", mode.ChainName(), theConfiguration.Database.Name)

	if err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite); nil != err {
		fatal(log, "storage", err)
	}
	defer storage.Finalise()

	theContract := contract.New(host.NewExecutor())

	if len(arguments) > 0 {
		mode.Set(mode.Normal)
		handled := processDataCommand(log, arguments, theContract)
		mode.Set(mode.Stopped)
		if handled {
			return
		}
	}

	log.Debugf("publishing: %#v", theConfiguration.Publishing)
	if err = publish.Initialise(&theConfiguration.Publishing, theConfiguration.Chain); nil != err {
		fatal(log, "publish", err)
	}
	defer publish.Finalise()

	log.Debugf("client rpc: %#v  https rpc: %#v", theConfiguration.ClientRPC.Listen, theConfiguration.HttpsRPC.Listen)
	if err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, theContract); nil != err {
		fatal(log, "rpc", err)
	}
	defer rpc.Finalise()

	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	mode.Set(mode.Normal)

	quiet := len(options["quiet"]) > 0
	sig := waitForSignal(quiet)

	// stop accepting before the deferred finalisers tear down services
	mode.Set(mode.Stopping)
	log.Infof("received signal: %v  shutting down…", sig)
	if !quiet {
		fmt.Printf("\nreceived signal: %v\nshutting down…\n", sig)
	}
}

// fatal - log and exit when a service cannot start
func fatal(log *logger.L, service string, err error) {
	log.Criticalf("%s initialise error: %s", service, err)
	exitwithstatus.Message("%s initialise error: %s", service, err)
}

// createPidFile - exclusive create so a second daemon cannot share the data directory
func createPidFile(pidFile string) error {
	f, err := os.OpenFile(pidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
	if nil != err {
		if os.IsExist(err) {
			return fmt.Errorf("another instance is already running, PID file: %q exists", pidFile)
		}
		return fmt.Errorf("PID file: %q creation failed, error: %s", pidFile, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%d\n", os.Getpid())
	return err
}

func waitForSignal(quiet bool) os.Signal {
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	return <-ch
}
