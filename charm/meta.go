// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package charm

import (
	"io"

	"github.com/juju/errors"
	"github.com/juju/schema"
	"gopkg.in/yaml.v3"
)

const (
	ScopeGlobal    = "global"
	ScopeContainer = "container"
)

// Relation represents a single relation defined in the charm
// metadata.yaml file.
type Relation struct {
	Interface string
	Optional  bool
	Limit     int
	Scope     string
}

// Resource is a resource declared in metadata.yaml.
type Resource struct {
	Type        string
	Filename    string
	Description string
}

// Meta represents the content of a charm's metadata.yaml file that the
// charm itself cares about.
type Meta struct {
	Name        string
	Summary     string
	Description string
	Provides    map[string]Relation
	Requires    map[string]Relation
	Peers       map[string]Relation
	Resources   map[string]Resource
	Subordinate bool
}

// ReadMeta reads the content of a metadata.yaml file and returns
// its representation.
func ReadMeta(r io.Reader) (*Meta, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Annotate(err, "metadata")
	}
	v, err := charmSchema.Coerce(raw, nil)
	if err != nil {
		return nil, errors.Annotate(err, "metadata")
	}
	m := v.(map[string]interface{})
	meta := &Meta{
		Name:        m["name"].(string),
		Summary:     m["summary"].(string),
		Description: m["description"].(string),
		Provides:    parseRelations(m["provides"]),
		Requires:    parseRelations(m["requires"]),
		Peers:       parseRelations(m["peers"]),
		Resources:   parseResources(m["resources"]),
	}
	if subordinate, ok := m["subordinate"].(bool); ok && subordinate {
		// Subordinate charms must have at least one relation that
		// has container scope, otherwise they can't relate to the
		// principal.
		valid := false
		for _, relationData := range meta.Requires {
			if relationData.Scope == ScopeContainer {
				valid = true
				break
			}
		}
		if !valid {
			return nil, errors.Errorf("subordinate charm %q lacks requires relation with container scope", meta.Name)
		}
		meta.Subordinate = true
	}
	return meta, nil
}

// RelationNames returns the names of every endpoint the charm declares.
func (m *Meta) RelationNames() []string {
	var result []string
	for _, rels := range []map[string]Relation{m.Provides, m.Requires, m.Peers} {
		for name := range rels {
			result = append(result, name)
		}
	}
	return result
}

func parseRelations(relations interface{}) map[string]Relation {
	if relations == nil {
		return nil
	}
	result := make(map[string]Relation)
	for name, rel := range relations.(map[string]interface{}) {
		relMap := rel.(map[string]interface{})
		relation := Relation{
			Interface: relMap["interface"].(string),
			Optional:  relMap["optional"].(bool),
		}
		if scope, ok := relMap["scope"].(string); ok {
			relation.Scope = scope
		}
		if limit, ok := relMap["limit"].(int64); ok {
			// Schema defaults to int64, but we know
			// the int range should be more than enough.
			relation.Limit = int(limit)
		}
		result[name] = relation
	}
	return result
}

func parseResources(resources interface{}) map[string]Resource {
	if resources == nil {
		return nil
	}
	result := make(map[string]Resource)
	for name, res := range resources.(map[string]interface{}) {
		resMap := res.(map[string]interface{})
		resource := Resource{
			Type: resMap["type"].(string),
		}
		if filename, ok := resMap["filename"].(string); ok {
			resource.Filename = filename
		}
		if description, ok := resMap["description"].(string); ok {
			resource.Description = description
		}
		result[name] = resource
	}
	return result
}

// Schema coercer that expands the interface shorthand notation.
// A consistent format is easier to work with than considering the
// potential difference everywhere.
//
// Supports the following variants::
//
//	provides:
//	  server: riak
//	  admin: http
//	  foobar:
//	    interface: blah
//
//	provides:
//	  server:
//	    interface: mysql
//	    limit:
//	    optional: false
//
// In all input cases, the output is the fully specified interface
// representation as seen in the mysql interface description above.
func ifaceExpander(limit interface{}) schema.Checker {
	return ifaceExpC{limit}
}

type ifaceExpC struct {
	limit interface{}
}

var (
	stringC = schema.String()
	mapC    = schema.StringMap(schema.Any())
)

func (c ifaceExpC) Coerce(v interface{}, path []string) (interface{}, error) {
	s, err := stringC.Coerce(v, path)
	if err == nil {
		return ifaceSchema.Coerce(map[string]interface{}{
			"interface": s,
			"limit":     c.limit,
			"optional":  false,
			"scope":     ScopeGlobal,
		}, path)
	}

	// Optional values are context-sensitive and/or have
	// defaults, which is different than what KeyDict can
	// readily support. So just do it here first, then
	// coerce to the real schema.
	v, err = mapC.Coerce(v, path)
	if err != nil {
		return nil, err
	}
	m := v.(map[string]interface{})
	if _, ok := m["limit"]; !ok {
		m["limit"] = c.limit
	}
	if _, ok := m["optional"]; !ok {
		m["optional"] = false
	}
	if _, ok := m["scope"]; !ok {
		m["scope"] = ScopeGlobal
	}
	return ifaceSchema.Coerce(m, path)
}

var ifaceSchema = schema.FieldMap(
	schema.Fields{
		"interface": schema.String(),
		"limit":     schema.OneOf(schema.Const(nil), schema.Int()),
		"scope":     schema.OneOf(schema.Const(ScopeGlobal), schema.Const(ScopeContainer)),
		"optional":  schema.Bool(),
	},
	schema.Defaults{
		"scope": schema.Omit,
	},
)

var resourceSchema = schema.FieldMap(
	schema.Fields{
		"type":        schema.OneOf(schema.Const("file"), schema.Const("oci-image")),
		"filename":    schema.String(),
		"description": schema.String(),
	},
	schema.Defaults{
		"type":        "file",
		"filename":    schema.Omit,
		"description": schema.Omit,
	},
)

var charmSchema = schema.FieldMap(
	schema.Fields{
		"name":        schema.String(),
		"summary":     schema.String(),
		"description": schema.String(),
		"peers":       schema.StringMap(ifaceExpander(1)),
		"provides":    schema.StringMap(ifaceExpander(nil)),
		"requires":    schema.StringMap(ifaceExpander(1)),
		"resources":   schema.StringMap(resourceSchema),
		"subordinate": schema.Bool(),
	},
	schema.Defaults{
		"summary":     "",
		"description": "",
		"provides":    schema.Omit,
		"requires":    schema.Omit,
		"peers":       schema.Omit,
		"resources":   schema.Omit,
		"subordinate": schema.Omit,
	},
)
