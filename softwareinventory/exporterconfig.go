// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package softwareinventory

import (
	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
)

const (
	// DefaultRelationName is the endpoint name both sides use unless told
	// otherwise.
	DefaultRelationName = "software-inventory"

	// DefaultBoundAddress is the address the exporter listens on by default.
	DefaultBoundAddress = "0.0.0.0"

	// DefaultPort is the port the exporter listens on by default.
	DefaultPort = "8675"
)

// Relation data keys.
const (
	keyHostname       = "hostname"
	keyPort           = "port"
	keyModel          = "model"
	keyIngressAddress = "ingress-address"
	keyPrivateAddress = "private-address"
)

// ExporterConfig is where one exporter can be reached, as seen by a
// consumer. Values compare with ==.
type ExporterConfig struct {
	Hostname  string
	Port      string
	Model     string
	IngressIP string
}

// settings returns the keys a provider publishes. The ingress address is
// owned by Juju and never written.
func (c ExporterConfig) settings() hookcontext.Settings {
	return hookcontext.Settings{
		keyHostname: c.Hostname,
		keyPort:     c.Port,
		keyModel:    c.Model,
	}
}
