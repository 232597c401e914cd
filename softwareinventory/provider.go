// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package softwareinventory

import (
	"os"
	"sync"

	"github.com/juju/errors"

	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
)

// RelationContext is the part of the hook context the relation library
// needs.
type RelationContext interface {
	ModelName() string
	Relations(name string) ([]hookcontext.Relation, error)
}

// HostnameFunc returns the hostname of the local machine.
type HostnameFunc func() (string, error)

// Logger represents the methods used to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
}

// ProviderConfig holds the dependencies and initial state of a Provider.
type ProviderConfig struct {
	Context      RelationContext
	RelationName string
	BoundAddress string
	Port         string

	// Hostname resolves the local hostname, defaults to os.Hostname.
	Hostname HostnameFunc

	Logger Logger
}

// Validate returns an error if config cannot drive a Provider.
func (config ProviderConfig) Validate() error {
	if config.Context == nil {
		return errors.NotValidf("nil Context")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Provider is the exporter side of the software-inventory relation.
type Provider struct {
	ctx          RelationContext
	relationName string
	hostname     HostnameFunc
	logger       Logger

	mu           sync.Mutex
	port         string
	boundAddress string
}

// NewProvider returns a Provider backed by config. Empty fields fall back
// to the package defaults.
func NewProvider(config ProviderConfig) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	p := &Provider{
		ctx:          config.Context,
		relationName: config.RelationName,
		hostname:     config.Hostname,
		logger:       config.Logger,
		port:         config.Port,
		boundAddress: config.BoundAddress,
	}
	if p.relationName == "" {
		p.relationName = DefaultRelationName
	}
	if p.port == "" {
		p.port = DefaultPort
	}
	if p.boundAddress == "" {
		p.boundAddress = DefaultBoundAddress
	}
	if p.hostname == nil {
		p.hostname = os.Hostname
	}
	return p, nil
}

// RelationName returns the endpoint the provider publishes on.
func (p *Provider) RelationName() string {
	return p.relationName
}

// Port returns the port the exporter listens on.
func (p *Provider) Port() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.port
}

// BoundAddress returns the address the exporter listens on.
func (p *Provider) BoundAddress() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.boundAddress
}

// OnPeerJoined publishes the exporter's current config into a relation a
// consumer unit has just joined.
func (p *Provider) OnPeerJoined(relation hookcontext.Relation) error {
	return errors.Trace(p.updateRelationData(relation, p.Port()))
}

// UpdateConsumers records the new port and address, then republishes to
// every relation on the provider's endpoint. Publishing is per relation;
// Juju shows the local unit's bucket to every remote unit of the relation.
func (p *Provider) UpdateConsumers(port, boundAddress string) error {
	p.mu.Lock()
	p.port = port
	p.boundAddress = boundAddress
	p.mu.Unlock()

	relations, err := p.ctx.Relations(p.relationName)
	if err != nil {
		return errors.Trace(err)
	}
	for _, relation := range relations {
		if err := p.updateRelationData(relation, port); err != nil {
			return errors.Trace(err)
		}
	}
	p.logger.Debugf("published port %s to %d %q relation(s)", port, len(relations), p.relationName)
	return nil
}

func (p *Provider) updateRelationData(relation hookcontext.Relation, port string) error {
	host, err := p.hostname()
	if err != nil {
		return errors.Annotate(err, "resolving hostname")
	}
	data := ExporterConfig{
		Hostname: host,
		Port:     port,
		Model:    p.ctx.ModelName(),
	}
	p.logger.Infof("updating relation %s with hostname %s, port %s", relation.Id(), host, port)
	return errors.Trace(relation.WriteLocalUnitData(data.settings()))
}
