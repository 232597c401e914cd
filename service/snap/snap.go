// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package snap manages a single snap and its services through the snap
// command line client.
package snap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/utils/v4"
	"github.com/kballard/go-shellquote"
)

const (
	// Command is a path to the snap binary, or to one that can be detected by os.Exec
	Command = "snap"

	// DefaultLogLines is the number of log lines fetched by Logs when no
	// explicit count is requested.
	DefaultLogLines = 20
)

var (
	// snapNameRe is derived from https://github.com/snapcore/snapcraft/blob/a2ef08109d86259a0748446f41bce5205d00a922/schema/snapcraft.yaml#L81-106
	// but does not test for "--"
	snapNameRe = regexp.MustCompile("^[a-z0-9][a-z0-9-]{0,39}[^-]$")
)

// RunCommandFunc runs the named command and returns its combined output.
type RunCommandFunc func(command string, args ...string) (string, error)

// Logger represents the methods used to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
}

// InstallOptions describes how a snap is installed.
type InstallOptions struct {
	// Channel is the store channel, used only for store installs.
	Channel string

	// Classic installs the snap with --classic confinement.
	Classic bool

	// Dangerous allows installing an unsigned local snap file.
	Dangerous bool
}

func (o InstallOptions) args() []string {
	var args []string
	if o.Channel != "" {
		args = append(args, "--channel="+o.Channel)
	}
	if o.Classic {
		args = append(args, "--classic")
	}
	if o.Dangerous {
		args = append(args, "--dangerous")
	}
	return args
}

// ServiceStatus is the state of one service (app daemon) of a snap as
// reported by `snap services`.
type ServiceStatus struct {
	Enabled bool
	Active  bool
}

// Config holds the dependencies of a Snap.
type Config struct {
	// Name is the name of the snap, e.g. software-inventory-exporter.
	Name string

	// Executable is the snap client, defaults to Command.
	Executable string

	// RunCommand runs the snap client, defaults to utils.RunCommand.
	RunCommand RunCommandFunc

	Logger Logger
}

// Validate returns an error if the config cannot drive a Snap.
func (config Config) Validate() error {
	if config.Name == "" {
		return errors.NotValidf("empty Name")
	}
	if !snapNameRe.MatchString(config.Name) {
		return errors.NotValidf("snap name %q", config.Name)
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Snap is a handle on a single snap, installed or not.
type Snap struct {
	name       string
	executable string
	runCommand RunCommandFunc
	logger     Logger
}

// New returns a Snap backed by config.
func New(config Config) (*Snap, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	s := &Snap{
		name:       config.Name,
		executable: config.Executable,
		runCommand: config.RunCommand,
		logger:     config.Logger,
	}
	if s.executable == "" {
		s.executable = Command
	}
	if s.runCommand == nil {
		s.runCommand = utils.RunCommand
	}
	return s, nil
}

// Name returns the snap's name.
func (s *Snap) Name() string {
	return s.name
}

// UnitName returns the systemd unit snapd generates for the named app of
// this snap.
func (s *Snap) UnitName(app string) string {
	return fmt.Sprintf("snap.%s.%s.service", s.name, app)
}

// InstallLocal installs the snap from a file on disk.
func (s *Snap) InstallLocal(path string, opts InstallOptions) error {
	if path == "" {
		return errors.NotValidf("empty snap path")
	}
	opts.Channel = ""
	args := append([]string{"install"}, opts.args()...)
	args = append(args, path)
	s.logger.Infof("installing %s from local file %s", s.name, path)
	out, err := s.runCommand(s.executable, args...)
	if err != nil {
		return errors.Annotatef(err, "installing %s from %s, output: %v", s.name, path, out)
	}
	return nil
}

// EnsureLatest makes sure the snap is installed from the store and at the
// latest revision of its channel. An installed snap is refreshed, a missing
// one installed.
func (s *Snap) EnsureLatest(opts InstallOptions) error {
	opts.Dangerous = false
	installed, err := s.Installed()
	if err != nil {
		return errors.Trace(err)
	}
	verb := "install"
	if installed {
		verb = "refresh"
	}
	args := append([]string{verb}, opts.args()...)
	args = append(args, s.name)
	s.logger.Infof("running snap %s for %s", verb, s.name)
	out, err := s.runCommand(s.executable, args...)
	if err != nil {
		return errors.Annotatef(err, "snap %s %s, output: %v", verb, s.name, out)
	}
	return nil
}

// Installed returns true if snapd knows about the snap.
func (s *Snap) Installed() (bool, error) {
	out, err := s.runCommand(s.executable, "list", s.name)
	if err == nil {
		return true, nil
	}
	if strings.Contains(out, "no matching snaps installed") {
		return false, nil
	}
	return false, errors.Annotatef(err, "listing snap %s, output: %v", s.name, out)
}

// Restart restarts all services of the snap, or starts them if they are not
// currently running.
func (s *Snap) Restart() error {
	return s.execThenExpect([]string{"restart", s.name}, "Restarted.")
}

// Services returns the status of every service of the snap, keyed by app
// name. For example, this output from `snap services juju-db`
//
//	Service                                Startup  Current   Notes
//	juju-db.daemon                         enabled  inactive  -
//
// returns
//
//	{"daemon": {Enabled: true, Active: false}}
func (s *Snap) Services() (map[string]ServiceStatus, error) {
	out, err := s.runCommand(s.executable, "services", s.name)
	if err != nil {
		return nil, errors.Annotatef(err, "listing services of %s, output: %v", s.name, out)
	}
	services := make(map[string]ServiceStatus)
	prefix := s.name + "."
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		app := strings.TrimPrefix(fields[0], prefix)
		services[app] = ServiceStatus{
			Enabled: fields[1] == "enabled",
			Active:  fields[2] == "active",
		}
	}
	return services, nil
}

// ServiceActive returns whether the named app of the snap is active. An app
// the snap does not report is not active.
func (s *Snap) ServiceActive(app string) (bool, error) {
	services, err := s.Services()
	if err != nil {
		return false, errors.Trace(err)
	}
	return services[app].Active, nil
}

// Logs returns the last lines of the snap's service logs. A non-positive
// count falls back to DefaultLogLines.
func (s *Snap) Logs(lines int) (string, error) {
	if lines <= 0 {
		lines = DefaultLogLines
	}
	out, err := s.runCommand(s.executable, "logs", fmt.Sprintf("-n=%d", lines), s.name)
	if err != nil {
		return "", errors.Annotatef(err, "fetching logs of %s, output: %v", s.name, out)
	}
	return out, nil
}

// execThenExpect calls `snap <commandArgs>...` and then checks
// output against expectation and snap's exit code. When there's a
// mismatch or non-0 exit code, execThenExpect returns an error.
func (s *Snap) execThenExpect(commandArgs []string, expectation string) error {
	command := shellquote.Join(append([]string{s.executable}, commandArgs...)...)
	s.logger.Debugf("running %s", command)
	out, err := s.runCommand(s.executable, commandArgs...)
	if err != nil {
		return errors.Annotatef(err, "%s, output: %v", command, out)
	}
	if !strings.Contains(out, expectation) {
		return errors.Errorf(`expected "%s", got "%s"`, expectation, out)
	}
	return nil
}
