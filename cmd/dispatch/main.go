// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Command dispatch is the charm's entrypoint. Juju runs it for every hook
// with the hook described by the JUJU_* environment.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"
	"github.com/juju/utils/v4"

	"github.com/canonical/charm-software-inventory-exporter/charm"
	"github.com/canonical/charm-software-inventory-exporter/charm/hooks"
	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
	"github.com/canonical/charm-software-inventory-exporter/internal/exporter"
	"github.com/canonical/charm-software-inventory-exporter/internal/lifecycle"
	"github.com/canonical/charm-software-inventory-exporter/service/snap"
)

var logger = loggo.GetLogger("software-inventory-exporter.cmd.dispatch")

const (
	// exitErr is returned when a hook fails, so Juju marks the unit in error.
	exitErr = 1
	// exitUsage is returned when dispatch is invoked with bad arguments.
	exitUsage = 2

	jujuLogWriter = "juju-log"
)

func main() {
	os.Exit(Main(os.Args, os.Getenv, utils.RunCommand, os.Stderr))
}

// RunCommandFunc runs hook tools and the snap client.
type RunCommandFunc func(command string, args ...string) (string, error)

// Main runs the hook described by args and the environment, returning the
// process exit code.
func Main(args []string, getenv hookcontext.GetenvFunc, runCommand RunCommandFunc, stderr io.Writer) int {
	c := &dispatchCommand{
		getenv:     getenv,
		runCommand: runCommand,
		stderr:     stderr,
	}
	if err := c.Init(args); err != nil {
		fmt.Fprintf(stderr, "ERROR %v\n", err)
		return exitUsage
	}
	defer func() { _, _ = loggo.RemoveWriter(jujuLogWriter) }()
	if err := c.Run(); err != nil {
		logger.Errorf("hook %q failed: %s", c.hookName, errors.ErrorStack(err))
		return exitErr
	}
	return 0
}

type dispatchCommand struct {
	getenv     hookcontext.GetenvFunc
	runCommand RunCommandFunc
	stderr     io.Writer

	hookOverride string
	charmDir     string
	logLevel     string
	toolsDir     string

	argv0    string
	hookName string
}

func (c *dispatchCommand) setFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.hookOverride, "hook", "", "run the named hook instead of the one Juju dispatched")
	f.StringVar(&c.charmDir, "charm-dir", "", "charm directory, defaults to JUJU_CHARM_DIR")
	f.StringVar(&c.logLevel, "log-level", "INFO", "log level to use (TRACE/DEBUG/INFO/etc)")
	f.StringVar(&c.toolsDir, "tools-dir", "", "directory holding the hook tools, defaults to PATH lookup")
}

// Init parses the command line.
func (c *dispatchCommand) Init(args []string) error {
	if len(args) == 0 {
		return errors.New("no arguments")
	}
	c.argv0 = args[0]
	f := gnuflag.NewFlagSet(filepath.Base(args[0]), gnuflag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.setFlags(f)
	if err := f.Parse(true, args[1:]); err != nil {
		return errors.Trace(err)
	}
	if extra := f.Args(); len(extra) > 0 {
		return errors.Errorf("unrecognized args: %q", extra)
	}
	if _, ok := loggo.ParseLevel(c.logLevel); !ok {
		return errors.NotValidf("log level %q", c.logLevel)
	}
	return nil
}

// Run dispatches the hook to the charm.
func (c *dispatchCommand) Run() error {
	if err := c.setupLogging(); err != nil {
		return errors.Trace(err)
	}
	env, err := hookcontext.EnvironmentFromGetenv(c.getenv)
	if err != nil {
		return errors.Trace(err)
	}
	c.hookName = c.resolveHookName(env)

	ctx, err := hookcontext.New(hookcontext.Config{
		Environment: env,
		ToolsDir:    c.toolsDir,
		RunCommand:  hookcontext.RunCommandFunc(c.runCommand),
	})
	if err != nil {
		return errors.Trace(err)
	}
	if err := loggo.RegisterWriter(jujuLogWriter, hookcontext.NewLogWriter(ctx)); err != nil {
		return errors.Trace(err)
	}

	charmDir := c.charmDir
	if charmDir == "" {
		charmDir = env.CharmDir
	}
	meta, err := readMeta(charmDir)
	if err != nil {
		return errors.Trace(err)
	}
	hook, err := hooks.Parse(c.hookName, meta.RelationNames())
	if errors.Is(err, errors.NotSupported) {
		logger.Debugf("%s has no handler for %s", meta.Name, c.hookName)
		return nil
	} else if err != nil {
		return errors.Trace(err)
	}

	exporterSnap, err := snap.New(snap.Config{
		Name:       exporter.SnapName,
		RunCommand: snap.RunCommandFunc(c.runCommand),
		Logger:     loggo.GetLogger("software-inventory-exporter.snap"),
	})
	if err != nil {
		return errors.Trace(err)
	}
	var snapResource string
	if _, ok := meta.Resources[exporter.ResourceName]; ok {
		snapResource = exporter.ResourceName
	} else {
		logger.Debugf("%s declares no %s resource", meta.Name, exporter.ResourceName)
	}
	ch, err := lifecycle.NewCharm(lifecycle.Config{
		Context: ctx,
		Snap:    exporterSnap,
		Publisher: &configPublisher{
			ctx:    ctx,
			logger: loggo.GetLogger("software-inventory-exporter.relation"),
		},
		Logger:       loggo.GetLogger("software-inventory-exporter.charm"),
		SnapResource: snapResource,
	})
	if err != nil {
		return errors.Trace(err)
	}
	logger.Infof("running %s for %s", hook, env.UnitName)
	return errors.Trace(ch.Dispatch(hook, env.RelationID))
}

// resolveHookName prefers the --hook flag, then the dispatch path, then
// the name the binary was invoked as (hooks/<name> symlinks).
func (c *dispatchCommand) resolveHookName(env hookcontext.Environment) string {
	if c.hookOverride != "" {
		return c.hookOverride
	}
	if env.HookName != "" {
		return env.HookName
	}
	return filepath.Base(c.argv0)
}

func (c *dispatchCommand) setupLogging() error {
	level, _ := loggo.ParseLevel(c.logLevel)
	writer := loggo.NewSimpleWriter(c.stderr, logFormatter)
	if _, err := loggo.ReplaceDefaultWriter(writer); err != nil {
		return errors.Trace(err)
	}
	return loggo.ConfigureLoggers(fmt.Sprintf("<root>=%s", level.String()))
}

func logFormatter(entry loggo.Entry) string {
	ts := entry.Timestamp.In(time.UTC).Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s %s %s %s", ts, entry.Level, entry.Module, entry.Message)
}

func readMeta(charmDir string) (*charm.Meta, error) {
	path := filepath.Join(charmDir, "metadata.yaml")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading charm metadata")
	}
	defer f.Close()
	meta, err := charm.ReadMeta(f)
	return meta, errors.Annotatef(err, "parsing %s", path)
}
