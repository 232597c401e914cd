// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package softwareinventory

import (
	"github.com/juju/errors"

	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
)

// ConsumerConfig holds the dependencies of a Consumer.
type ConsumerConfig struct {
	Context      RelationContext
	RelationName string
}

// Validate returns an error if config cannot drive a Consumer.
func (config ConsumerConfig) Validate() error {
	if config.Context == nil {
		return errors.NotValidf("nil Context")
	}
	return nil
}

// Consumer is the collector side of the software-inventory relation.
type Consumer struct {
	ctx          RelationContext
	relationName string
}

// NewConsumer returns a Consumer backed by config.
func NewConsumer(config ConsumerConfig) (*Consumer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	c := &Consumer{
		ctx:          config.Context,
		relationName: config.RelationName,
	}
	if c.relationName == "" {
		c.relationName = DefaultRelationName
	}
	return c, nil
}

// RelationName returns the endpoint the consumer reads from.
func (c *Consumer) RelationName() string {
	return c.relationName
}

// AllExporters returns the config of every exporter unit related on the
// consumer's endpoint, one per remote unit, in relation then unit order.
// A unit missing one of hostname, port or model fails the whole call with
// a NotFound error.
func (c *Consumer) AllExporters() ([]ExporterConfig, error) {
	relations, err := c.ctx.Relations(c.relationName)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var exporters []ExporterConfig
	for _, relation := range relations {
		units, err := relation.RemoteUnits()
		if err != nil {
			return nil, errors.Trace(err)
		}
		for _, unit := range units {
			data, err := relation.ReadUnitData(unit)
			if err != nil {
				return nil, errors.Trace(err)
			}
			exporter, err := exporterFromSettings(data)
			if err != nil {
				return nil, errors.Annotatef(err, "unit %s in relation %s", unit, relation.Id())
			}
			exporters = append(exporters, exporter)
		}
	}
	return exporters, nil
}

func exporterFromSettings(data hookcontext.Settings) (ExporterConfig, error) {
	var exporter ExporterConfig
	for _, required := range []struct {
		key   string
		field *string
	}{
		{keyHostname, &exporter.Hostname},
		{keyPort, &exporter.Port},
		{keyModel, &exporter.Model},
	} {
		value, ok := data[required.key]
		if !ok {
			return ExporterConfig{}, errors.NotFoundf("relation data key %q", required.key)
		}
		*required.field = value
	}
	exporter.IngressIP = data[keyIngressAddress]
	if exporter.IngressIP == "" {
		exporter.IngressIP = data[keyPrivateAddress]
	}
	return exporter, nil
}
