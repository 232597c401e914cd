// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookcontext

import (
	"path/filepath"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/names/v5"
)

// Environment holds the values Juju passes to a dispatched hook through
// environment variables.
type Environment struct {
	UnitName     string
	ModelName    string
	CharmDir     string
	HookName     string
	RelationID   string
	RemoteUnit   string
	RemoteApp    string
	DispatchPath string
}

// GetenvFunc looks up an environment variable.
type GetenvFunc func(string) string

// EnvironmentFromGetenv reads the hook environment. The hook name comes
// from JUJU_DISPATCH_PATH (e.g. hooks/install), falling back to
// JUJU_HOOK_NAME.
func EnvironmentFromGetenv(getenv GetenvFunc) (Environment, error) {
	env := Environment{
		UnitName:     getenv("JUJU_UNIT_NAME"),
		ModelName:    getenv("JUJU_MODEL_NAME"),
		CharmDir:     getenv("JUJU_CHARM_DIR"),
		RelationID:   getenv("JUJU_RELATION_ID"),
		RemoteUnit:   getenv("JUJU_REMOTE_UNIT"),
		RemoteApp:    getenv("JUJU_REMOTE_APP"),
		DispatchPath: getenv("JUJU_DISPATCH_PATH"),
	}
	if env.CharmDir == "" {
		env.CharmDir = getenv("CHARM_DIR")
	}
	env.HookName = HookNameFromDispatchPath(env.DispatchPath)
	if env.HookName == "" {
		env.HookName = getenv("JUJU_HOOK_NAME")
	}
	if err := env.Validate(); err != nil {
		return Environment{}, errors.Trace(err)
	}
	return env, nil
}

// HookNameFromDispatchPath returns the hook name encoded in a dispatch path,
// or the empty string for actions and unknown paths.
func HookNameFromDispatchPath(path string) string {
	dir, name := filepath.Split(filepath.Clean(path))
	if filepath.Base(filepath.Clean(dir)) != "hooks" {
		return ""
	}
	return name
}

// Validate returns an error if the environment does not describe a hook
// run by a unit agent.
func (env Environment) Validate() error {
	if env.UnitName == "" {
		return errors.Errorf("JUJU_UNIT_NAME not set")
	}
	if !names.IsValidUnit(env.UnitName) {
		return errors.NotValidf("unit name %q", env.UnitName)
	}
	if env.ModelName == "" {
		return errors.Errorf("JUJU_MODEL_NAME not set")
	}
	if env.RemoteUnit != "" && !names.IsValidUnit(env.RemoteUnit) {
		return errors.NotValidf("remote unit name %q", env.RemoteUnit)
	}
	if env.RelationID != "" && !strings.Contains(env.RelationID, ":") {
		return errors.NotValidf("relation id %q", env.RelationID)
	}
	return nil
}
