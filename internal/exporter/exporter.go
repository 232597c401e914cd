// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package exporter describes the software-inventory-exporter snap and
// renders its configuration file.
package exporter

import (
	"os"

	"github.com/juju/errors"
	"github.com/juju/utils/v4"
	"gopkg.in/yaml.v3"
)

const (
	// SnapName is the name of the exporter snap in the store.
	SnapName = "software-inventory-exporter"

	// ServiceName is the snap app running the exporter daemon.
	ServiceName = "software-inventory-exporter"

	// ConfigPath is where the snap reads its configuration from.
	ConfigPath = "/var/snap/" + SnapName + "/current/config.yaml"

	// ResourceName is the charm resource holding a local build of the snap.
	ResourceName = "exporter-snap"
)

// Settings are the exporter's listening parameters.
type Settings struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
}

// Config is the document the exporter reads on start.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// RenderConfig returns the YAML document for settings.
func RenderConfig(settings Settings) ([]byte, error) {
	data, err := yaml.Marshal(Config{Settings: settings})
	return data, errors.Trace(err)
}

// WriteConfig replaces the file at path with the document for settings.
// The file is written next to its destination and renamed into place, so
// the exporter never reads a half written config.
func WriteConfig(path string, settings Settings) error {
	data, err := RenderConfig(settings)
	if err != nil {
		return errors.Trace(err)
	}
	if err := utils.AtomicWriteFile(path, data, 0644); err != nil {
		return errors.Annotatef(err, "writing exporter config %s", path)
	}
	return nil
}

// ReadConfig parses the config file at path.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Annotatef(err, "reading exporter config %s", path)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Annotatef(err, "parsing exporter config %s", path)
	}
	return config, nil
}
