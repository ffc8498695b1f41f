package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves one shipment projection row.
type GetShipmentByIDQuery struct {
	tenant     kernel.Tenant
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a single-shipment query.
func NewGetShipmentByIDQuery(tenant kernel.Tenant, shipmentID kernel.UUID) (GetShipmentByIDQuery, error) {
	if err := tenant.Validate(); err != nil {
		return GetShipmentByIDQuery{}, err
	}
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentByIDQuery{}, err
	}

	return GetShipmentByIDQuery{
		tenant:     tenant,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (q GetShipmentByIDQuery) Tenant() kernel.Tenant { return q.tenant }

// ShipmentID returns the requested shipment identifier.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID { return q.shipmentID }
