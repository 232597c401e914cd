// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hookcontext exposes the parts of a Juju hook execution context
// that the charm needs: unit identity, charm config, relation data,
// resources and workload status.
package hookcontext

import (
	"github.com/canonical/charm-software-inventory-exporter/core/status"
)

// Settings is the key/value data bucket a unit holds in a relation.
type Settings map[string]string

// Context is the hook execution context of the local unit.
type Context interface {
	// UnitName returns the name of the local unit, e.g. exporter/0.
	UnitName() string

	// ModelName returns the name of the model the unit is deployed in.
	ModelName() string

	// ConfigSettings returns the raw charm config.
	ConfigSettings() (map[string]interface{}, error)

	// Relations returns every relation established on the named endpoint,
	// in the order the controller reports them.
	Relations(name string) ([]Relation, error)

	// Relation returns the relation with the given id.
	Relation(id string) (Relation, error)

	// ResourcePath fetches the named resource and returns its local path.
	ResourcePath(name string) (string, error)

	status.StatusSetter
}

// Relation is a single established relation, seen from the local unit.
type Relation interface {
	// Id returns the relation id, e.g. software-inventory:3.
	Id() string

	// Name returns the local endpoint name of the relation.
	Name() string

	// RemoteUnits returns the remote units currently in the relation.
	RemoteUnits() ([]string, error)

	// ReadUnitData returns the data bucket of the named unit.
	ReadUnitData(unit string) (Settings, error)

	// WriteLocalUnitData merges settings into the local unit's bucket.
	WriteLocalUnitData(settings Settings) error
}
