// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package testing provides an in-memory hookcontext.Context for tests.
package testing

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/juju/testing"

	"github.com/canonical/charm-software-inventory-exporter/core/status"
	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
)

// Relation holds the state of one relation as seen by the local unit.
type Relation struct {
	Id       string
	Name     string
	UnitName string

	// LocalSettings is the local unit's data bucket.
	LocalSettings hookcontext.Settings

	units    []string
	settings map[string]hookcontext.Settings
}

// SetRelated adds the remote unit to the relation, or replaces its
// settings if it is already related.
func (r *Relation) SetRelated(unit string, settings hookcontext.Settings) {
	if r.settings == nil {
		r.settings = make(map[string]hookcontext.Settings)
	}
	if _, ok := r.settings[unit]; !ok {
		r.units = append(r.units, unit)
	}
	copied := make(hookcontext.Settings, len(settings))
	for k, v := range settings {
		copied[k] = v
	}
	r.settings[unit] = copied
}

// Context is a test double for hookcontext.Context.
type Context struct {
	stub *testing.Stub

	Unit      string
	Model     string
	Config    map[string]interface{}
	Resources map[string]string

	relations []*Relation
	nextId    int
	statuses  []status.StatusInfo
}

var _ hookcontext.Context = (*Context)(nil)

// NewContext returns a Context for the given unit and model which records
// calls on stub.
func NewContext(stub *testing.Stub, unit, model string) *Context {
	return &Context{
		stub:      stub,
		Unit:      unit,
		Model:     model,
		Config:    make(map[string]interface{}),
		Resources: make(map[string]string),
	}
}

// AddRelation establishes a new relation on the named endpoint.
func (c *Context) AddRelation(name string) *Relation {
	rel := &Relation{
		Id:            fmt.Sprintf("%s:%d", name, c.nextId),
		Name:          name,
		UnitName:      c.Unit,
		LocalSettings: make(hookcontext.Settings),
	}
	c.nextId++
	c.relations = append(c.relations, rel)
	return rel
}

// Statuses returns every status set on the unit, oldest first.
func (c *Context) Statuses() []status.StatusInfo {
	return append([]status.StatusInfo(nil), c.statuses...)
}

// UnitStatus returns the last status set on the unit.
func (c *Context) UnitStatus() status.StatusInfo {
	if len(c.statuses) == 0 {
		return status.StatusInfo{}
	}
	return c.statuses[len(c.statuses)-1]
}

// UnitName implements hookcontext.Context.
func (c *Context) UnitName() string {
	return c.Unit
}

// ModelName implements hookcontext.Context.
func (c *Context) ModelName() string {
	return c.Model
}

// ConfigSettings implements hookcontext.Context.
func (c *Context) ConfigSettings() (map[string]interface{}, error) {
	c.stub.AddCall("ConfigSettings")
	if err := c.stub.NextErr(); err != nil {
		return nil, err
	}
	settings := make(map[string]interface{}, len(c.Config))
	for k, v := range c.Config {
		settings[k] = v
	}
	return settings, nil
}

// Relations implements hookcontext.Context.
func (c *Context) Relations(name string) ([]hookcontext.Relation, error) {
	c.stub.AddCall("Relations", name)
	if err := c.stub.NextErr(); err != nil {
		return nil, err
	}
	var result []hookcontext.Relation
	for _, rel := range c.relations {
		if rel.Name == name {
			result = append(result, &ContextRelation{stub: c.stub, info: rel})
		}
	}
	return result, nil
}

// Relation implements hookcontext.Context.
func (c *Context) Relation(id string) (hookcontext.Relation, error) {
	c.stub.AddCall("Relation", id)
	if err := c.stub.NextErr(); err != nil {
		return nil, err
	}
	for _, rel := range c.relations {
		if rel.Id == id {
			return &ContextRelation{stub: c.stub, info: rel}, nil
		}
	}
	return nil, errors.NotFoundf("relation %q", id)
}

// ResourcePath implements hookcontext.Context.
func (c *Context) ResourcePath(name string) (string, error) {
	c.stub.AddCall("ResourcePath", name)
	if err := c.stub.NextErr(); err != nil {
		return "", err
	}
	path, ok := c.Resources[name]
	if !ok {
		return "", errors.NotFoundf("resource %q", name)
	}
	return path, nil
}

// SetUnitStatus implements status.StatusSetter.
func (c *Context) SetUnitStatus(info status.StatusInfo) error {
	c.stub.AddCall("SetUnitStatus", info)
	if err := c.stub.NextErr(); err != nil {
		return err
	}
	if err := info.Validate(); err != nil {
		return errors.Trace(err)
	}
	c.statuses = append(c.statuses, info)
	return nil
}

// ContextRelation is a test double for hookcontext.Relation.
type ContextRelation struct {
	stub *testing.Stub
	info *Relation
}

// Id implements hookcontext.Relation.
func (r *ContextRelation) Id() string {
	return r.info.Id
}

// Name implements hookcontext.Relation.
func (r *ContextRelation) Name() string {
	return r.info.Name
}

// RemoteUnits implements hookcontext.Relation.
func (r *ContextRelation) RemoteUnits() ([]string, error) {
	r.stub.AddCall("RemoteUnits", r.info.Id)
	if err := r.stub.NextErr(); err != nil {
		return nil, err
	}
	return append([]string(nil), r.info.units...), nil
}

// ReadUnitData implements hookcontext.Relation.
func (r *ContextRelation) ReadUnitData(unit string) (hookcontext.Settings, error) {
	r.stub.AddCall("ReadUnitData", r.info.Id, unit)
	if err := r.stub.NextErr(); err != nil {
		return nil, err
	}
	source := r.info.settings[unit]
	if unit == r.info.UnitName {
		source = r.info.LocalSettings
	} else if source == nil {
		return nil, errors.NotFoundf("unit %q in relation %q", unit, r.info.Id)
	}
	settings := make(hookcontext.Settings, len(source))
	for k, v := range source {
		settings[k] = v
	}
	return settings, nil
}

// WriteLocalUnitData implements hookcontext.Relation.
func (r *ContextRelation) WriteLocalUnitData(settings hookcontext.Settings) error {
	r.stub.AddCall("WriteLocalUnitData", r.info.Id, settings)
	if err := r.stub.NextErr(); err != nil {
		return err
	}
	if r.info.LocalSettings == nil {
		r.info.LocalSettings = make(hookcontext.Settings)
	}
	for k, v := range settings {
		r.info.LocalSettings[k] = v
	}
	return nil
}
