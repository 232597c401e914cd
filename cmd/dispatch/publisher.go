// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"github.com/juju/errors"

	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
	"github.com/canonical/charm-software-inventory-exporter/internal/lifecycle"
	"github.com/canonical/charm-software-inventory-exporter/softwareinventory"
)

// publisherContext is what the publisher needs from the hook context.
type publisherContext interface {
	softwareinventory.RelationContext
	ConfigSettings() (map[string]interface{}, error)
}

// configPublisher publishes over the software-inventory relation. The
// charm config is only read by hooks that publish from it.
type configPublisher struct {
	ctx      publisherContext
	hostname softwareinventory.HostnameFunc
	logger   softwareinventory.Logger
}

func (p *configPublisher) newProvider(port, boundAddress string) (*softwareinventory.Provider, error) {
	return softwareinventory.NewProvider(softwareinventory.ProviderConfig{
		Context:      p.ctx,
		RelationName: softwareinventory.DefaultRelationName,
		BoundAddress: boundAddress,
		Port:         port,
		Hostname:     p.hostname,
		Logger:       p.logger,
	})
}

// RelationName is part of the lifecycle.RelationPublisher interface.
func (p *configPublisher) RelationName() string {
	return softwareinventory.DefaultRelationName
}

// OnPeerJoined is part of the lifecycle.RelationPublisher interface.
func (p *configPublisher) OnPeerJoined(relation hookcontext.Relation) error {
	settings, err := p.ctx.ConfigSettings()
	if err != nil {
		return errors.Trace(err)
	}
	cfg, err := lifecycle.ParseCharmConfig(settings)
	if err != nil {
		return errors.Trace(err)
	}
	provider, err := p.newProvider(cfg.PortString(), cfg.BindAddress)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(provider.OnPeerJoined(relation))
}

// UpdateConsumers is part of the lifecycle.RelationPublisher interface.
func (p *configPublisher) UpdateConsumers(port, boundAddress string) error {
	provider, err := p.newProvider(port, boundAddress)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(provider.UpdateConsumers(port, boundAddress))
}
