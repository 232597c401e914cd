// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
)

const servicesActive = `Service                                                  Startup  Current  Notes
software-inventory-exporter.software-inventory-exporter  enabled  active   -
`

type mainSuite struct {
	testing.IsolationSuite

	stub    *testing.Stub
	env     map[string]string
	outputs map[string]string
	errs    map[string]error
	stderr  *bytes.Buffer
}

var _ = gc.Suite(&mainSuite{})

func (s *mainSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.stub = &testing.Stub{}
	s.stderr = &bytes.Buffer{}
	s.errs = make(map[string]error)
	s.outputs = map[string]string{
		"config-get --format=json --all":            `{"bind_address": "0.0.0.0", "port": 8675}`,
		"snap services software-inventory-exporter": servicesActive,
	}

	metadata, err := os.ReadFile("../../metadata.yaml")
	c.Assert(err, jc.ErrorIsNil)
	charmDir := c.MkDir()
	err = os.WriteFile(filepath.Join(charmDir, "metadata.yaml"), metadata, 0644)
	c.Assert(err, jc.ErrorIsNil)

	s.env = map[string]string{
		"JUJU_UNIT_NAME":  "software-inventory-exporter/0",
		"JUJU_MODEL_NAME": "lma",
		"JUJU_CHARM_DIR":  charmDir,
	}
}

func (s *mainSuite) getenv(key string) string {
	return s.env[key]
}

func (s *mainSuite) runCommand(command string, args ...string) (string, error) {
	callArgs := make([]interface{}, len(args))
	for i, arg := range args {
		callArgs[i] = arg
	}
	s.stub.AddCall(command, callArgs...)
	line := strings.Join(append([]string{command}, args...), " ")
	return s.outputs[line], s.errs[line]
}

func (s *mainSuite) run(args ...string) int {
	return Main(append([]string{"dispatch"}, args...), s.getenv, s.runCommand, s.stderr)
}

// callsTo returns the arguments of every call to the named command.
func (s *mainSuite) callsTo(name string) [][]interface{} {
	var result [][]interface{}
	for _, call := range s.stub.Calls() {
		if call.FuncName == name {
			result = append(result, call.Args)
		}
	}
	return result
}

func (s *mainSuite) TestUpdateStatus(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/update-status"

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("status-set"), jc.DeepEquals, [][]interface{}{
		{"active", "Unit is ready."},
	})
}

func (s *mainSuite) TestHookNameFromEnvironment(c *gc.C) {
	s.env["JUJU_HOOK_NAME"] = "update-status"

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("status-set"), gc.HasLen, 1)
}

func (s *mainSuite) TestHookFlagOverrides(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/start"

	code := s.run("--hook", "update-status")
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("status-set"), gc.HasLen, 1)
}

func (s *mainSuite) TestRelationJoinedFromArgv0(c *gc.C) {
	s.env["JUJU_RELATION_ID"] = "software-inventory:3"
	s.env["JUJU_REMOTE_UNIT"] = "collector/0"
	hostname, err := os.Hostname()
	c.Assert(err, jc.ErrorIsNil)

	code := Main([]string{"/var/lib/juju/agents/unit-x-0/charm/hooks/software-inventory-relation-joined"},
		s.getenv, s.runCommand, s.stderr)
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("relation-set"), jc.DeepEquals, [][]interface{}{
		{"-r", "software-inventory:3", "hostname=" + hostname, "model=lma", "port=8675"},
	})
}

func (s *mainSuite) TestIgnoredHook(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/start"

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("status-set"), gc.HasLen, 0)
	c.Assert(s.callsTo("snap"), gc.HasLen, 0)
}

func (s *mainSuite) TestUnknownHook(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/collect-metrics"

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("config-get"), gc.HasLen, 0)
}

func (s *mainSuite) TestHookFailureExitsNonZero(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/update-status"
	s.outputs["snap services software-inventory-exporter"] = "error: snap not installed"
	s.errs["snap services software-inventory-exporter"] = errors.New("exit status 1")

	code := s.run()
	c.Assert(code, gc.Equals, 1)
	c.Assert(s.stderr.String(), jc.Contains, `hook "update-status" failed`)
	c.Assert(s.callsTo("status-set"), gc.HasLen, 0)
}

func (s *mainSuite) TestUpdateStatusHostnameBindAddress(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/update-status"
	s.outputs["config-get --format=json --all"] = `{"bind_address": "localhost", "port": 8675}`

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("status-set"), jc.DeepEquals, [][]interface{}{
		{"active", "Unit is ready."},
	})
	c.Assert(s.callsTo("config-get"), gc.HasLen, 0)
}

func (s *mainSuite) TestUpdateStatusIgnoresBadConfig(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/update-status"
	s.outputs["config-get --format=json --all"] = `{"bind_address": "0.0.0.0", "port": 9100.5}`

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("status-set"), gc.HasLen, 1)
}

func (s *mainSuite) TestRelationJoinedHostnameBindAddress(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/software-inventory-relation-joined"
	s.env["JUJU_RELATION_ID"] = "software-inventory:3"
	s.env["JUJU_REMOTE_UNIT"] = "collector/0"
	s.outputs["config-get --format=json --all"] = `{"bind_address": "localhost", "port": 9100}`
	hostname, err := os.Hostname()
	c.Assert(err, jc.ErrorIsNil)

	code := s.run()
	c.Assert(code, gc.Equals, 0, gc.Commentf("stderr: %s", s.stderr))
	c.Assert(s.callsTo("relation-set"), jc.DeepEquals, [][]interface{}{
		{"-r", "software-inventory:3", "hostname=" + hostname, "model=lma", "port=9100"},
	})
}

func (s *mainSuite) TestRelationJoinedFractionalPort(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/software-inventory-relation-joined"
	s.env["JUJU_RELATION_ID"] = "software-inventory:3"
	s.env["JUJU_REMOTE_UNIT"] = "collector/0"
	s.outputs["config-get --format=json --all"] = `{"bind_address": "0.0.0.0", "port": 9100.5}`

	code := s.run()
	c.Assert(code, gc.Equals, 1)
	c.Assert(s.stderr.String(), jc.Contains, "charm config: port: expected int, got float64(9100.5)")
	c.Assert(s.callsTo("relation-set"), gc.HasLen, 0)
}

func (s *mainSuite) TestInstallReadsDeclaredResource(c *gc.C) {
	s.env["JUJU_DISPATCH_PATH"] = "hooks/install"
	s.outputs["snap list software-inventory-exporter"] = "error: snapd unavailable"
	s.errs["snap list software-inventory-exporter"] = errors.New("exit status 1")

	code := s.run()
	c.Assert(code, gc.Equals, 1)
	c.Assert(s.callsTo("resource-get"), jc.DeepEquals, [][]interface{}{
		{"exporter-snap"},
	})
}

func (s *mainSuite) TestInstallWithoutDeclaredResource(c *gc.C) {
	metadata := "name: software-inventory-exporter\nsummary: s\ndescription: d\n"
	err := os.WriteFile(filepath.Join(s.env["JUJU_CHARM_DIR"], "metadata.yaml"), []byte(metadata), 0644)
	c.Assert(err, jc.ErrorIsNil)
	s.env["JUJU_DISPATCH_PATH"] = "hooks/install"
	s.outputs["snap list software-inventory-exporter"] = "error: snapd unavailable"
	s.errs["snap list software-inventory-exporter"] = errors.New("exit status 1")

	code := s.run()
	c.Assert(code, gc.Equals, 1)
	c.Assert(s.callsTo("resource-get"), gc.HasLen, 0)
	c.Assert(s.callsTo("snap"), jc.DeepEquals, [][]interface{}{
		{"list", "software-inventory-exporter"},
	})
}

func (s *mainSuite) TestMissingEnvironment(c *gc.C) {
	delete(s.env, "JUJU_UNIT_NAME")

	code := s.run("--hook", "update-status")
	c.Assert(code, gc.Equals, 1)
	c.Assert(s.stderr.String(), jc.Contains, "JUJU_UNIT_NAME not set")
	s.stub.CheckNoCalls(c)
}

func (s *mainSuite) TestBadArgs(c *gc.C) {
	c.Assert(s.run("--no-such-flag"), gc.Equals, 2)
	c.Assert(s.run("extra"), gc.Equals, 2)
	c.Assert(s.run("--log-level", "LOUD"), gc.Equals, 2)
	s.stub.CheckNoCalls(c)
}
