// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package lifecycle

import (
	"math"
	"strconv"

	"github.com/juju/errors"
	"github.com/juju/schema"

	"github.com/canonical/charm-software-inventory-exporter/internal/exporter"
)

const (
	DefaultBindAddress = "0.0.0.0"
	DefaultPort        = 8675
)

// CharmConfig is the charm's config.yaml, coerced. The bind address is
// passed to the exporter as given.
type CharmConfig struct {
	BindAddress string
	Port        int
}

// PortString returns the port as published over relation data.
func (cfg CharmConfig) PortString() string {
	return strconv.Itoa(cfg.Port)
}

// ExporterSettings returns the settings rendered into the exporter's
// config file.
func (cfg CharmConfig) ExporterSettings() exporter.Settings {
	return exporter.Settings{
		BindAddress: cfg.BindAddress,
		Port:        cfg.Port,
	}
}

var configSchema = schema.FieldMap(
	schema.Fields{
		"bind_address": schema.String(),
		"port":         schema.Int(),
	},
	schema.Defaults{
		"bind_address": DefaultBindAddress,
		"port":         int64(DefaultPort),
	},
)

// ParseCharmConfig coerces the output of config-get into a CharmConfig.
// The port may arrive as a JSON number or a numeric string; either must
// hold a whole number.
func ParseCharmConfig(settings map[string]interface{}) (CharmConfig, error) {
	// config-get reports unset options as null.
	attrs := make(map[string]interface{}, len(settings))
	for k, v := range settings {
		if v != nil {
			attrs[k] = v
		}
	}
	if port, ok := attrs["port"]; ok {
		attrs["port"] = normalisePort(port)
	}
	v, err := configSchema.Coerce(attrs, nil)
	if err != nil {
		return CharmConfig{}, errors.Annotate(err, "charm config")
	}
	m := v.(map[string]interface{})
	return CharmConfig{
		BindAddress: m["bind_address"].(string),
		Port:        int(m["port"].(int64)),
	}, nil
}

// normalisePort turns whole JSON numbers and integer strings into int64.
// Anything else is left for the schema to reject.
func normalisePort(v interface{}) interface{} {
	switch port := v.(type) {
	case float64:
		if port == math.Trunc(port) && !math.IsInf(port, 0) {
			return int64(port)
		}
	case string:
		if i, err := strconv.ParseInt(port, 10, 64); err == nil {
			return i
		}
	}
	return v
}
