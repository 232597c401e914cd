// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package lifecycle drives the exporter snap through the charm's hooks:
// installing it, rendering its config, keeping related collectors up to
// date and reporting the unit's workload status.
package lifecycle

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"

	"github.com/canonical/charm-software-inventory-exporter/charm/hooks"
	"github.com/canonical/charm-software-inventory-exporter/core/status"
	"github.com/canonical/charm-software-inventory-exporter/hookcontext"
	"github.com/canonical/charm-software-inventory-exporter/internal/exporter"
	"github.com/canonical/charm-software-inventory-exporter/service/snap"
)

// LogLines is the number of service log lines reported when the exporter
// is found not running.
const LogLines = 20

// InstallTrigger says which hook asked for the snap to be installed.
type InstallTrigger string

const (
	FreshInstall InstallTrigger = "install"
	Upgrade      InstallTrigger = "upgrade"
)

// Context is the part of the hook context the charm needs.
type Context interface {
	ConfigSettings() (map[string]interface{}, error)
	Relation(id string) (hookcontext.Relation, error)
	ResourcePath(name string) (string, error)
	status.StatusSetter
}

// SnapManager installs and controls the exporter snap.
type SnapManager interface {
	InstallLocal(path string, opts snap.InstallOptions) error
	EnsureLatest(opts snap.InstallOptions) error
	Restart() error
	ServiceActive(app string) (bool, error)
	Logs(lines int) (string, error)
	UnitName(app string) string
}

// RelationPublisher publishes the exporter's address to related
// collectors.
type RelationPublisher interface {
	RelationName() string
	OnPeerJoined(relation hookcontext.Relation) error
	UpdateConsumers(port, boundAddress string) error
}

// Logger represents the methods used to log information.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}

// Config holds the dependencies of a Charm.
type Config struct {
	Context   Context
	Snap      SnapManager
	Publisher RelationPublisher
	Logger    Logger

	// ExporterConfigPath is where the exporter config is rendered,
	// defaults to exporter.ConfigPath.
	ExporterConfigPath string

	// SnapResource names the charm resource holding a local build of the
	// snap. When empty the snap always comes from the store.
	SnapResource string
}

// Validate returns an error if the config cannot drive a Charm.
func (config Config) Validate() error {
	if config.Context == nil {
		return errors.NotValidf("nil Context")
	}
	if config.Snap == nil {
		return errors.NotValidf("nil Snap")
	}
	if config.Publisher == nil {
		return errors.NotValidf("nil Publisher")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Charm handles the hooks of the software-inventory-exporter charm.
type Charm struct {
	ctx          Context
	snap         SnapManager
	publisher    RelationPublisher
	logger       Logger
	configPath   string
	snapResource string
}

// NewCharm returns a Charm backed by config.
func NewCharm(config Config) (*Charm, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	c := &Charm{
		ctx:          config.Context,
		snap:         config.Snap,
		publisher:    config.Publisher,
		logger:       config.Logger,
		configPath:   config.ExporterConfigPath,
		snapResource: config.SnapResource,
	}
	if c.configPath == "" {
		c.configPath = exporter.ConfigPath
	}
	return c, nil
}

// Dispatch runs the handler for the given hook. relationID identifies the
// relation of a relation hook. Hooks the charm does not care about are
// a no-op.
func (c *Charm) Dispatch(hook hooks.Info, relationID string) error {
	c.logger.Debugf("dispatching hook %s", hook)
	switch {
	case hook.Kind == hooks.Install:
		return errors.Trace(c.Install(FreshInstall))
	case hook.Kind == hooks.UpgradeCharm:
		return errors.Trace(c.Install(Upgrade))
	case hook.Kind == hooks.ConfigChanged:
		return errors.Trace(c.OnConfigChanged())
	case hook.Kind == hooks.UpdateStatus:
		return errors.Trace(c.OnUpdateStatus())
	case hook.Kind == hooks.RelationJoined && hook.RelationName == c.publisher.RelationName():
		relation, err := c.ctx.Relation(relationID)
		if err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(c.publisher.OnPeerJoined(relation))
	}
	c.logger.Debugf("nothing to do for hook %s", hook)
	return nil
}

// Install installs the exporter snap, from the exporter-snap resource if
// one is attached and from the store otherwise, then configures and
// restarts it and reports the unit's status.
func (c *Charm) Install(trigger InstallTrigger) error {
	c.logger.Infof("installing exporter snap on %s", trigger)
	if err := c.ctx.SetUnitStatus(status.StatusInfo{
		Status:  status.Maintenance,
		Message: status.MessageInstallingSnap,
	}); err != nil {
		return errors.Trace(err)
	}
	path, err := c.snapResourcePath()
	if err != nil {
		return errors.Trace(err)
	}
	if path != "" {
		err = c.snap.InstallLocal(path, snap.InstallOptions{Classic: true, Dangerous: true})
	} else {
		err = c.snap.EnsureLatest(snap.InstallOptions{Classic: true})
	}
	if err != nil {
		return errors.Trace(err)
	}
	if err := c.Reconfigure(); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.AssessStatus())
}

// snapResourcePath returns the path of the attached snap resource, or ""
// when it is not declared, missing or empty.
func (c *Charm) snapResourcePath() (string, error) {
	if c.snapResource == "" {
		return "", nil
	}
	path, err := c.ctx.ResourcePath(c.snapResource)
	if errors.Is(err, errors.NotFound) {
		c.logger.Debugf("resource %s not attached", c.snapResource)
		return "", nil
	} else if err != nil {
		return "", errors.Trace(err)
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", errors.Annotatef(err, "checking resource %s", c.snapResource)
	}
	if info.Size() == 0 {
		c.logger.Debugf("resource %s is empty", c.snapResource)
		return "", nil
	}
	c.logger.Debugf("using resource %s at %s (%s)", c.snapResource, path, humanize.IBytes(uint64(info.Size())))
	return path, nil
}

// Reconfigure renders the exporter config from the current charm config
// and restarts the exporter.
func (c *Charm) Reconfigure() error {
	cfg, err := c.charmConfig()
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.reconfigure(cfg))
}

func (c *Charm) reconfigure(cfg CharmConfig) error {
	if err := exporter.WriteConfig(c.configPath, cfg.ExporterSettings()); err != nil {
		return errors.Trace(err)
	}
	c.logger.Infof("exporter configured to listen on %s:%d", cfg.BindAddress, cfg.Port)
	return errors.Trace(c.snap.Restart())
}

// OnConfigChanged applies a new charm config: the exporter is reconfigured
// and restarted before related collectors are told about the new address.
func (c *Charm) OnConfigChanged() error {
	cfg, err := c.charmConfig()
	if err != nil {
		return errors.Trace(err)
	}
	if err := c.reconfigure(cfg); err != nil {
		return errors.Trace(err)
	}
	if err := c.publisher.UpdateConsumers(cfg.PortString(), cfg.BindAddress); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.AssessStatus())
}

// OnUpdateStatus reports the exporter's health.
func (c *Charm) OnUpdateStatus() error {
	return errors.Trace(c.AssessStatus())
}

// AssessStatus sets the unit active when the exporter service runs and
// blocked otherwise, logging the service's latest logs.
func (c *Charm) AssessStatus() error {
	active, err := c.snap.ServiceActive(exporter.ServiceName)
	if err != nil {
		return errors.Trace(err)
	}
	if active {
		return errors.Trace(c.ctx.SetUnitStatus(status.StatusInfo{
			Status:  status.Active,
			Message: status.MessageReady,
		}))
	}
	if err := c.ctx.SetUnitStatus(status.StatusInfo{
		Status:  status.Blocked,
		Message: status.MessageNotRunning,
	}); err != nil {
		return errors.Trace(err)
	}
	logs, err := c.snap.Logs(LogLines)
	if err != nil {
		return errors.Trace(err)
	}
	c.logger.Errorf("Exporter service %s is not running. Latest logs from the service:\n%s",
		c.snap.UnitName(exporter.ServiceName), logs)
	return nil
}

func (c *Charm) charmConfig() (CharmConfig, error) {
	settings, err := c.ctx.ConfigSettings()
	if err != nil {
		return CharmConfig{}, errors.Trace(err)
	}
	cfg, err := ParseCharmConfig(settings)
	return cfg, errors.Trace(err)
}
