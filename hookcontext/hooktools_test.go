// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookcontext_test

import (
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/charm-software-inventory-exporter/core/status"
	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
)

type hookToolsSuite struct {
	testing.IsolationSuite

	stub    *testing.Stub
	outputs map[string]string
}

var _ = gc.Suite(&hookToolsSuite{})

func (s *hookToolsSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.stub = &testing.Stub{}
	s.outputs = make(map[string]string)
}

// runCommand returns the canned output keyed by the full command line.
func (s *hookToolsSuite) runCommand(command string, args ...string) (string, error) {
	callArgs := make([]interface{}, len(args))
	for i, arg := range args {
		callArgs[i] = arg
	}
	s.stub.AddCall(command, callArgs...)
	line := strings.Join(append([]string{command}, args...), " ")
	return s.outputs[line], s.stub.NextErr()
}

func (s *hookToolsSuite) newContext(c *gc.C) *hookcontext.JujuContext {
	ctx, err := hookcontext.New(hookcontext.Config{
		Environment: hookcontext.Environment{
			UnitName:  "software-inventory-exporter/0",
			ModelName: "lma",
		},
		RunCommand: s.runCommand,
	})
	c.Assert(err, jc.ErrorIsNil)
	return ctx
}

func (s *hookToolsSuite) TestNewValidatesEnvironment(c *gc.C) {
	_, err := hookcontext.New(hookcontext.Config{})
	c.Assert(err, gc.ErrorMatches, "JUJU_UNIT_NAME not set")
}

func (s *hookToolsSuite) TestIdentity(c *gc.C) {
	ctx := s.newContext(c)
	c.Assert(ctx.UnitName(), gc.Equals, "software-inventory-exporter/0")
	c.Assert(ctx.ModelName(), gc.Equals, "lma")
	s.stub.CheckNoCalls(c)
}

func (s *hookToolsSuite) TestConfigSettings(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["config-get --format=json --all"] = `{"bind_address": "0.0.0.0", "port": 8675}`

	settings, err := ctx.ConfigSettings()
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(settings, jc.DeepEquals, map[string]interface{}{
		"bind_address": "0.0.0.0",
		"port":         float64(8675),
	})
}

func (s *hookToolsSuite) TestConfigSettingsBadJSON(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["config-get --format=json --all"] = `{bind_address`

	_, err := ctx.ConfigSettings()
	c.Assert(err, gc.ErrorMatches, "decoding config-get output: .*")
}

func (s *hookToolsSuite) TestRelations(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["relation-ids --format=json software-inventory"] = `["software-inventory:3", "software-inventory:7"]`

	relations, err := ctx.Relations("software-inventory")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(relations, gc.HasLen, 2)
	c.Assert(relations[0].Id(), gc.Equals, "software-inventory:3")
	c.Assert(relations[1].Id(), gc.Equals, "software-inventory:7")
	c.Assert(relations[1].Name(), gc.Equals, "software-inventory")
}

func (s *hookToolsSuite) TestRelationsNone(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["relation-ids --format=json software-inventory"] = "[]\n"

	relations, err := ctx.Relations("software-inventory")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(relations, gc.HasLen, 0)
}

func (s *hookToolsSuite) TestRelationsError(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["relation-ids --format=json software-inventory"] = "ERROR no relation"
	s.stub.SetErrors(errors.New("exit status 2"))

	_, err := ctx.Relations("software-inventory")
	c.Assert(err, gc.ErrorMatches, `listing "software-inventory" relations: relation-ids failed: ERROR no relation: exit status 2`)
}

func (s *hookToolsSuite) TestRelationBadId(c *gc.C) {
	ctx := s.newContext(c)
	_, err := ctx.Relation("7")
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
}

func (s *hookToolsSuite) TestRemoteUnits(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["relation-list --format=json -r software-inventory:3"] = `["collector/0", "collector/1"]`

	rel, err := ctx.Relation("software-inventory:3")
	c.Assert(err, jc.ErrorIsNil)
	units, err := rel.RemoteUnits()
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(units, jc.DeepEquals, []string{"collector/0", "collector/1"})
}

func (s *hookToolsSuite) TestReadUnitData(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["relation-get --format=json -r software-inventory:3 - collector/0"] =
		`{"hostname": "juju-1", "ingress-address": "10.0.0.5", "port": "8675"}`

	rel, err := ctx.Relation("software-inventory:3")
	c.Assert(err, jc.ErrorIsNil)
	settings, err := rel.ReadUnitData("collector/0")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(settings, jc.DeepEquals, hookcontext.Settings{
		"hostname":        "juju-1",
		"ingress-address": "10.0.0.5",
		"port":            "8675",
	})
}

func (s *hookToolsSuite) TestWriteLocalUnitData(c *gc.C) {
	ctx := s.newContext(c)

	rel, err := ctx.Relation("software-inventory:3")
	c.Assert(err, jc.ErrorIsNil)
	err = rel.WriteLocalUnitData(hookcontext.Settings{
		"port":     "8675",
		"hostname": "juju-1",
		"model":    "lma",
	})
	c.Assert(err, jc.ErrorIsNil)
	s.stub.CheckCall(c, 0, "relation-set", "-r", "software-inventory:3",
		"hostname=juju-1", "model=lma", "port=8675")
}

func (s *hookToolsSuite) TestWriteLocalUnitDataBadKey(c *gc.C) {
	ctx := s.newContext(c)

	rel, err := ctx.Relation("software-inventory:3")
	c.Assert(err, jc.ErrorIsNil)
	err = rel.WriteLocalUnitData(hookcontext.Settings{"a=b": "c"})
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
	s.stub.CheckNoCalls(c)
}

func (s *hookToolsSuite) TestWriteLocalUnitDataError(c *gc.C) {
	ctx := s.newContext(c)
	s.stub.SetErrors(errors.New("exit status 1"))

	rel, err := ctx.Relation("software-inventory:3")
	c.Assert(err, jc.ErrorIsNil)
	err = rel.WriteLocalUnitData(hookcontext.Settings{"port": "8675"})
	c.Assert(err, gc.ErrorMatches, `writing software-inventory-exporter/0 data in relation software-inventory:3: .*exit status 1`)
}

func (s *hookToolsSuite) TestResourcePath(c *gc.C) {
	ctx := s.newContext(c)
	s.outputs["resource-get exporter-snap"] = "/var/lib/juju/agents/unit-x-0/resources/exporter-snap/exporter.snap\n"

	path, err := ctx.ResourcePath("exporter-snap")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(path, gc.Equals, "/var/lib/juju/agents/unit-x-0/resources/exporter-snap/exporter.snap")
}

func (s *hookToolsSuite) TestResourcePathNotAttached(c *gc.C) {
	ctx := s.newContext(c)
	s.stub.SetErrors(errors.New("exit status 1"))

	_, err := ctx.ResourcePath("exporter-snap")
	c.Assert(err, jc.Satisfies, errors.IsNotFound)
}

func (s *hookToolsSuite) TestSetUnitStatus(c *gc.C) {
	ctx := s.newContext(c)

	err := ctx.SetUnitStatus(status.StatusInfo{Status: status.Blocked, Message: status.MessageNotRunning})
	c.Assert(err, jc.ErrorIsNil)
	s.stub.CheckCall(c, 0, "status-set", "blocked", "Exporter service is not running.")

	err = ctx.SetUnitStatus(status.StatusInfo{Status: "error"})
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
	s.stub.CheckCallNames(c, "status-set")
}

func (s *hookToolsSuite) TestToolsDir(c *gc.C) {
	ctx, err := hookcontext.New(hookcontext.Config{
		Environment: hookcontext.Environment{
			UnitName:  "software-inventory-exporter/0",
			ModelName: "lma",
		},
		ToolsDir:   "/var/lib/juju/tools/unit-software-inventory-exporter-0",
		RunCommand: s.runCommand,
	})
	c.Assert(err, jc.ErrorIsNil)

	err = ctx.Log("INFO", "hello")
	c.Assert(err, jc.ErrorIsNil)
	s.stub.CheckCall(c, 0, "/var/lib/juju/tools/unit-software-inventory-exporter-0/juju-log", "--log-level", "INFO", "hello")
}

func (s *hookToolsSuite) TestLogWriter(c *gc.C) {
	ctx := s.newContext(c)
	writer := hookcontext.NewLogWriter(ctx)

	writer.Write(loggo.Entry{Level: loggo.WARNING, Module: "software-inventory-exporter.charm", Message: "careful"})
	writer.Write(loggo.Entry{Level: loggo.CRITICAL, Message: "boom"})

	s.stub.CheckCalls(c, []testing.StubCall{
		{FuncName: "juju-log", Args: []interface{}{"--log-level", "WARNING", "software-inventory-exporter.charm: careful"}},
		{FuncName: "juju-log", Args: []interface{}{"--log-level", "ERROR", "boom"}},
	})
}
