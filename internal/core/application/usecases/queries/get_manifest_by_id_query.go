package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrGetManifestByIDQueryIsNotConstructed = errors.New(
	"GetManifestByIDQuery must be created via NewGetManifestByIDQuery constructor",
)

// GetManifestByIDQuery retrieves one manifest together with its member
// shipments.
type GetManifestByIDQuery struct {
	tenant     kernel.Tenant
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManifestByIDQuery creates a single-manifest query.
func NewGetManifestByIDQuery(tenant kernel.Tenant, manifestID kernel.UUID) (GetManifestByIDQuery, error) {
	if err := tenant.Validate(); err != nil {
		return GetManifestByIDQuery{}, err
	}
	if err := manifestID.Validate(); err != nil {
		return GetManifestByIDQuery{}, err
	}

	return GetManifestByIDQuery{
		tenant:     tenant,
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManifestByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestByIDQueryIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (q GetManifestByIDQuery) Tenant() kernel.Tenant { return q.tenant }

// ManifestID returns the requested manifest identifier.
func (q GetManifestByIDQuery) ManifestID() kernel.UUID { return q.manifestID }

// GetManifestByIDResponse is one manifest with its member shipment rows.
type GetManifestByIDResponse struct {
	Manifest  ManifestRow
	Shipments []ShipmentRow
}
