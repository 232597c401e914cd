// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookcontext_test

import (
	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
)

type environmentSuite struct{}

var _ = gc.Suite(&environmentSuite{})

func getenv(vars map[string]string) hookcontext.GetenvFunc {
	return func(name string) string {
		return vars[name]
	}
}

func (s *environmentSuite) TestEnvironmentFromGetenv(c *gc.C) {
	env, err := hookcontext.EnvironmentFromGetenv(getenv(map[string]string{
		"JUJU_UNIT_NAME":     "software-inventory-exporter/0",
		"JUJU_MODEL_NAME":    "lma",
		"JUJU_CHARM_DIR":     "/var/lib/juju/agents/unit-software-inventory-exporter-0/charm",
		"JUJU_DISPATCH_PATH": "hooks/software-inventory-relation-joined",
		"JUJU_RELATION_ID":   "software-inventory:4",
		"JUJU_REMOTE_UNIT":   "collector/1",
		"JUJU_REMOTE_APP":    "collector",
	}))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(env, jc.DeepEquals, hookcontext.Environment{
		UnitName:     "software-inventory-exporter/0",
		ModelName:    "lma",
		CharmDir:     "/var/lib/juju/agents/unit-software-inventory-exporter-0/charm",
		HookName:     "software-inventory-relation-joined",
		RelationID:   "software-inventory:4",
		RemoteUnit:   "collector/1",
		RemoteApp:    "collector",
		DispatchPath: "hooks/software-inventory-relation-joined",
	})
}

func (s *environmentSuite) TestHookNameFallback(c *gc.C) {
	env, err := hookcontext.EnvironmentFromGetenv(getenv(map[string]string{
		"JUJU_UNIT_NAME":  "exporter/3",
		"JUJU_MODEL_NAME": "default",
		"JUJU_HOOK_NAME":  "update-status",
		"CHARM_DIR":       "/charm",
	}))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(env.HookName, gc.Equals, "update-status")
	c.Assert(env.CharmDir, gc.Equals, "/charm")
}

func (s *environmentSuite) TestHookNameFromDispatchPath(c *gc.C) {
	for path, expected := range map[string]string{
		"hooks/install":          "install",
		"./hooks/config-changed": "config-changed",
		"actions/do-something":   "",
		"install":                "",
		"":                       "",
	} {
		c.Check(hookcontext.HookNameFromDispatchPath(path), gc.Equals, expected, gc.Commentf("path %q", path))
	}
}

func (s *environmentSuite) TestValidate(c *gc.C) {
	_, err := hookcontext.EnvironmentFromGetenv(getenv(nil))
	c.Assert(err, gc.ErrorMatches, "JUJU_UNIT_NAME not set")

	_, err = hookcontext.EnvironmentFromGetenv(getenv(map[string]string{
		"JUJU_UNIT_NAME": "exporter",
	}))
	c.Assert(err, jc.Satisfies, errors.IsNotValid)

	_, err = hookcontext.EnvironmentFromGetenv(getenv(map[string]string{
		"JUJU_UNIT_NAME": "exporter/0",
	}))
	c.Assert(err, gc.ErrorMatches, "JUJU_MODEL_NAME not set")

	_, err = hookcontext.EnvironmentFromGetenv(getenv(map[string]string{
		"JUJU_UNIT_NAME":   "exporter/0",
		"JUJU_MODEL_NAME":  "default",
		"JUJU_REMOTE_UNIT": "not a unit",
	}))
	c.Assert(err, gc.ErrorMatches, `remote unit name "not a unit" not valid`)

	_, err = hookcontext.EnvironmentFromGetenv(getenv(map[string]string{
		"JUJU_UNIT_NAME":   "exporter/0",
		"JUJU_MODEL_NAME":  "default",
		"JUJU_RELATION_ID": "7",
	}))
	c.Assert(err, gc.ErrorMatches, `relation id "7" not valid`)
}
