// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hooks defines the hook kinds a charm can be dispatched for.
package hooks

import (
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// Kind enumerates the different kinds of hooks that exist.
type Kind string

const (
	// None of these hooks are ever associated with a relation; each of them
	// represents a change to the state of the unit as a whole.
	Install       Kind = "install"
	Start         Kind = "start"
	ConfigChanged Kind = "config-changed"
	UpgradeCharm  Kind = "upgrade-charm"
	UpdateStatus  Kind = "update-status"
	LeaderElected Kind = "leader-elected"
	Stop          Kind = "stop"
	Remove        Kind = "remove"

	// These hooks require an associated relation, and the name of the relation
	// unit whose change triggered the hook. The hook file names that these
	// kinds represent will be prefixed by the relation name; for example,
	// "db-relation-joined".
	RelationCreated  Kind = "relation-created"
	RelationJoined   Kind = "relation-joined"
	RelationChanged  Kind = "relation-changed"
	RelationDeparted Kind = "relation-departed"
	RelationBroken   Kind = "relation-broken"
)

var unitHooks = []Kind{
	Install,
	Start,
	ConfigChanged,
	UpgradeCharm,
	UpdateStatus,
	LeaderElected,
	Stop,
	Remove,
}

var relationHooks = []Kind{
	RelationCreated,
	RelationJoined,
	RelationChanged,
	RelationDeparted,
	RelationBroken,
}

// UnitHooks returns all known unit hook kinds.
func UnitHooks() []Kind {
	return append([]Kind(nil), unitHooks...)
}

// RelationHooks returns all known relation hook kinds.
func RelationHooks() []Kind {
	return append([]Kind(nil), relationHooks...)
}

// IsRelation returns whether the Kind represents a relation hook.
func (kind Kind) IsRelation() bool {
	for _, k := range relationHooks {
		if k == kind {
			return true
		}
	}
	return false
}

// Info identifies a hook to dispatch.
type Info struct {
	Kind Kind

	// RelationName is the endpoint name of a relation hook.
	RelationName string
}

// String returns the hook's file name.
func (info Info) String() string {
	if info.Kind.IsRelation() {
		return info.RelationName + "-" + string(info.Kind)
	}
	return string(info.Kind)
}

// Parse resolves a hook file name into an Info. Relation hooks are only
// recognised for the given endpoint names. Names that do not match any
// hook the charm handles return a NotSupported error.
func Parse(name string, relationNames []string) (Info, error) {
	if name == "" {
		return Info{}, errors.NotValidf("empty hook name")
	}
	for _, kind := range unitHooks {
		if name == string(kind) {
			return Info{Kind: kind}, nil
		}
	}
	endpoints := set.NewStrings(relationNames...)
	for _, kind := range relationHooks {
		suffix := "-" + string(kind)
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		endpoint := strings.TrimSuffix(name, suffix)
		if !endpoints.Contains(endpoint) {
			return Info{}, errors.NotSupportedf("hook %q for unknown endpoint %q", name, endpoint)
		}
		return Info{Kind: kind, RelationName: endpoint}, nil
	}
	return Info{}, errors.NotSupportedf("hook %q", name)
}
