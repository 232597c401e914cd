// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hookcontext

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/utils/v4"

	"github.com/canonical/charm-software-inventory-exporter/core/status"
)

// RunCommandFunc runs the named command and returns its combined output.
type RunCommandFunc func(command string, args ...string) (string, error)

// Config holds the dependencies of a hook tool backed Context.
type Config struct {
	Environment Environment

	// ToolsDir, if set, is prepended to the hook tool names. Juju puts the
	// tools on the hook's PATH so it is normally empty.
	ToolsDir string

	// RunCommand runs a hook tool, defaults to utils.RunCommand.
	RunCommand RunCommandFunc
}

// Validate returns an error if config cannot drive a Context.
func (config Config) Validate() error {
	return errors.Trace(config.Environment.Validate())
}

// JujuContext is a Context that talks to the unit agent through the hook
// tools (config-get, relation-get, relation-set, ...).
type JujuContext struct {
	env        Environment
	toolsDir   string
	runCommand RunCommandFunc
}

var _ Context = (*JujuContext)(nil)

// New returns a Context backed by the hook tools.
func New(config Config) (*JujuContext, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	ctx := &JujuContext{
		env:        config.Environment,
		toolsDir:   config.ToolsDir,
		runCommand: config.RunCommand,
	}
	if ctx.runCommand == nil {
		ctx.runCommand = utils.RunCommand
	}
	return ctx, nil
}

// UnitName is part of the Context interface.
func (ctx *JujuContext) UnitName() string {
	return ctx.env.UnitName
}

// ModelName is part of the Context interface.
func (ctx *JujuContext) ModelName() string {
	return ctx.env.ModelName
}

// ConfigSettings is part of the Context interface.
func (ctx *JujuContext) ConfigSettings() (map[string]interface{}, error) {
	var settings map[string]interface{}
	if err := ctx.runJSON(&settings, "config-get", "--format=json", "--all"); err != nil {
		return nil, errors.Trace(err)
	}
	if settings == nil {
		settings = make(map[string]interface{})
	}
	return settings, nil
}

// Relations is part of the Context interface.
func (ctx *JujuContext) Relations(name string) ([]Relation, error) {
	var ids []string
	if err := ctx.runJSON(&ids, "relation-ids", "--format=json", name); err != nil {
		return nil, errors.Annotatef(err, "listing %q relations", name)
	}
	relations := make([]Relation, 0, len(ids))
	for _, id := range ids {
		rel, err := ctx.Relation(id)
		if err != nil {
			return nil, errors.Trace(err)
		}
		relations = append(relations, rel)
	}
	return relations, nil
}

// Relation is part of the Context interface.
func (ctx *JujuContext) Relation(id string) (Relation, error) {
	name, _, ok := strings.Cut(id, ":")
	if !ok || name == "" {
		return nil, errors.NotValidf("relation id %q", id)
	}
	return &relation{ctx: ctx, id: id, name: name}, nil
}

// ResourcePath is part of the Context interface. A resource that has not
// been uploaded or cannot be fetched is reported as NotFound.
func (ctx *JujuContext) ResourcePath(name string) (string, error) {
	out, err := ctx.run("resource-get", name)
	if err != nil {
		return "", errors.NewNotFound(err, fmt.Sprintf("resource %q", name))
	}
	return strings.TrimSpace(out), nil
}

// SetUnitStatus is part of the status.StatusSetter interface.
func (ctx *JujuContext) SetUnitStatus(info status.StatusInfo) error {
	if err := info.Validate(); err != nil {
		return errors.Trace(err)
	}
	_, err := ctx.run("status-set", info.Status.String(), info.Message)
	return errors.Trace(err)
}

// Log sends a message to the unit's log through juju-log.
func (ctx *JujuContext) Log(level, message string) error {
	_, err := ctx.run("juju-log", "--log-level", level, message)
	return errors.Trace(err)
}

func (ctx *JujuContext) tool(name string) string {
	if ctx.toolsDir == "" {
		return name
	}
	return filepath.Join(ctx.toolsDir, name)
}

func (ctx *JujuContext) run(tool string, args ...string) (string, error) {
	out, err := ctx.runCommand(ctx.tool(tool), args...)
	if err != nil {
		return out, errors.Annotatef(err, "%s failed: %s", tool, strings.TrimSpace(out))
	}
	return out, nil
}

func (ctx *JujuContext) runJSON(result interface{}, tool string, args ...string) error {
	out, err := ctx.run(tool, args...)
	if err != nil {
		return errors.Trace(err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(out), result); err != nil {
		return errors.Annotatef(err, "decoding %s output", tool)
	}
	return nil
}

type relation struct {
	ctx  *JujuContext
	id   string
	name string
}

// Id is part of the Relation interface.
func (r *relation) Id() string {
	return r.id
}

// Name is part of the Relation interface.
func (r *relation) Name() string {
	return r.name
}

// RemoteUnits is part of the Relation interface.
func (r *relation) RemoteUnits() ([]string, error) {
	var units []string
	if err := r.ctx.runJSON(&units, "relation-list", "--format=json", "-r", r.id); err != nil {
		return nil, errors.Annotatef(err, "listing units of relation %s", r.id)
	}
	return units, nil
}

// ReadUnitData is part of the Relation interface.
func (r *relation) ReadUnitData(unit string) (Settings, error) {
	var settings Settings
	if err := r.ctx.runJSON(&settings, "relation-get", "--format=json", "-r", r.id, "-", unit); err != nil {
		return nil, errors.Annotatef(err, "reading %s data in relation %s", unit, r.id)
	}
	if settings == nil {
		settings = make(Settings)
	}
	return settings, nil
}

// WriteLocalUnitData is part of the Relation interface.
func (r *relation) WriteLocalUnitData(settings Settings) error {
	if len(settings) == 0 {
		return nil
	}
	keys := make([]string, 0, len(settings))
	for k := range settings {
		if k == "" || strings.Contains(k, "=") {
			return errors.NotValidf("relation setting key %q", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := []string{"-r", r.id}
	for _, k := range keys {
		args = append(args, k+"="+settings[k])
	}
	_, err := r.ctx.run("relation-set", args...)
	return errors.Annotatef(err, "writing %s data in relation %s", r.ctx.UnitName(), r.id)
}
