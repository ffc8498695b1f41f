package manifest

import (
	"errors"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

// Removal is the audit record written when a shipment is detached from an
// open manifest via the remanifest correction flow. The reason is mandatory;
// operations reviews these records when reconciling handover paperwork.
type Removal struct {
	id         kernel.UUID
	tenant     kernel.Tenant
	manifestID kernel.UUID
	shipmentID kernel.UUID
	reason     string
	removedAt  time.Time
}

// NewRemoval creates an audit record for one detached shipment.
func NewRemoval(
	tenant kernel.Tenant,
	manifestID kernel.UUID,
	shipmentID kernel.UUID,
	reason string,
) (Removal, error) {
	if strings.TrimSpace(reason) == "" {
		return Removal{}, errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(tenant.Validate(), manifestID.Validate(), shipmentID.Validate()); err != nil {
		return Removal{}, err
	}

	return Removal{
		id:         kernel.NewUUID(),
		tenant:     tenant,
		manifestID: manifestID,
		shipmentID: shipmentID,
		reason:     reason,
		removedAt:  time.Now().UTC(),
	}, nil
}

// RestoreRemoval reconstructs an audit record from persistence.
func RestoreRemoval(
	id kernel.UUID,
	tenant kernel.Tenant,
	manifestID kernel.UUID,
	shipmentID kernel.UUID,
	reason string,
	removedAt time.Time,
) (Removal, error) {
	r := Removal{
		id:         id,
		tenant:     tenant,
		manifestID: manifestID,
		shipmentID: shipmentID,
		reason:     reason,
		removedAt:  removedAt,
	}
	if err := r.Validate(); err != nil {
		return Removal{}, err
	}
	return r, nil
}

// ID returns the record identifier.
func (r Removal) ID() kernel.UUID { return r.id }

// Tenant returns the owning franchise context.
func (r Removal) Tenant() kernel.Tenant { return r.tenant }

// ManifestID returns the manifest the shipment was detached from.
func (r Removal) ManifestID() kernel.UUID { return r.manifestID }

// ShipmentID returns the detached shipment.
func (r Removal) ShipmentID() kernel.UUID { return r.shipmentID }

// Reason returns the operator-supplied explanation.
func (r Removal) Reason() string { return r.reason }

// RemovedAt returns when the detachment happened.
func (r Removal) RemovedAt() time.Time { return r.removedAt }

// Validate rejects incomplete records.
func (r Removal) Validate() error {
	if strings.TrimSpace(r.reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return errors.Join(
		r.id.Validate(), r.tenant.Validate(),
		r.manifestID.Validate(), r.shipmentID.Validate(),
	)
}
