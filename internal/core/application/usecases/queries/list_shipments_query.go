package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves a page of shipments, optionally filtered by
// status, source and a free-text search over consignment number, receiver
// name and receiver phone.
type ListShipmentsQuery struct {
	tenant     kernel.Tenant
	status     *shipment.Status
	source     *shipment.Source
	search     string
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a shipment list query. Nil filters mean
// "any"; an empty search string disables the text search.
func NewListShipmentsQuery(
	tenant kernel.Tenant,
	status *shipment.Status,
	source *shipment.Source,
	search string,
	pagination Pagination,
) (ListShipmentsQuery, error) {
	if err := tenant.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if source != nil {
		if err := source.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}

	return ListShipmentsQuery{
		tenant:     tenant,
		status:     status,
		source:     source,
		search:     search,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (q ListShipmentsQuery) Tenant() kernel.Tenant { return q.tenant }

// Status returns the status filter, or nil for any.
func (q ListShipmentsQuery) Status() *shipment.Status { return q.status }

// Source returns the source filter, or nil for any.
func (q ListShipmentsQuery) Source() *shipment.Source { return q.source }

// Search returns the free-text search term, possibly empty.
func (q ListShipmentsQuery) Search() string { return q.search }

// Pagination returns the normalized page window.
func (q ListShipmentsQuery) Pagination() Pagination { return q.pagination }

// ShipmentRow is one shipment projection row.
type ShipmentRow struct {
	ID            kernel.UUID
	CN            string
	ReceiverName  string
	ReceiverPhone string
	WeightKg      float64
	Pieces        int
	ServiceType   string
	Source        string
	TotalCharge   float64
	Status        string
	ManifestID    *kernel.UUID
}

// ListShipmentsResponse is a page of shipments plus the total match count.
type ListShipmentsResponse struct {
	Shipments []ShipmentRow
	Total     int64
}
