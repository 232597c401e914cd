// Copyright 2023 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

import (
	"github.com/juju/errors"
)

// Status represents the workload status of a unit as reported to Juju
// through the status-set hook tool.
type Status string

// String returns a string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// StatusInfo holds a Status and associated information.
type StatusInfo struct {
	Status  Status
	Message string
}

// StatusSetter represents a type whose status can be set.
type StatusSetter interface {
	SetUnitStatus(StatusInfo) error
}

const (
	// Maintenance means the charm is installing or reconfiguring the
	// workload and it is not serving yet.
	Maintenance Status = "maintenance"

	// Waiting means the unit depends on something outside its control,
	// such as a related application.
	Waiting Status = "waiting"

	// Blocked means an operator has to step in, e.g. the exporter service
	// does not run.
	Blocked Status = "blocked"

	// Active means the workload is up and serving.
	Active Status = "active"
)

const (
	MessageReady          = "Unit is ready."
	MessageNotRunning     = "Exporter service is not running."
	MessageInstallingSnap = "Installing exporter snap."
)

// ValidWorkloadStatus reports whether a charm may set status on its unit.
func ValidWorkloadStatus(status Status) bool {
	switch status {
	case
		Blocked,
		Maintenance,
		Waiting,
		Active:
		return true
	default:
		return false
	}
}

// Validate returns an error if the status cannot be set by a charm.
func (info StatusInfo) Validate() error {
	if !ValidWorkloadStatus(info.Status) {
		return errors.NotValidf("workload status %q", info.Status)
	}
	return nil
}
