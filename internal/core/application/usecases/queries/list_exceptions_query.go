package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/guard"
)

var ErrListExceptionsQueryIsNotConstructed = errors.New(
	"ListExceptionsQuery must be created via NewListExceptionsQuery constructor",
)

// ListExceptionsQuery retrieves a page of shipment exceptions, optionally
// filtered by workflow status.
type ListExceptionsQuery struct {
	tenant     kernel.Tenant
	status     *exception.Status
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewListExceptionsQuery creates an exception list query.
func NewListExceptionsQuery(
	tenant kernel.Tenant,
	status *exception.Status,
	pagination Pagination,
) (ListExceptionsQuery, error) {
	if err := tenant.Validate(); err != nil {
		return ListExceptionsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListExceptionsQuery{}, err
		}
	}

	return ListExceptionsQuery{
		tenant:     tenant,
		status:     status,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListExceptionsQuery) Validate() error {
	return q.guard.Validate(ErrListExceptionsQueryIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (q ListExceptionsQuery) Tenant() kernel.Tenant { return q.tenant }

// Status returns the status filter, or nil for any.
func (q ListExceptionsQuery) Status() *exception.Status { return q.status }

// Pagination returns the normalized page window.
func (q ListExceptionsQuery) Pagination() Pagination { return q.pagination }

// ExceptionRow is one exception projection row, joined with the parent
// shipment's consignment number for display.
type ExceptionRow struct {
	ID                kernel.UUID
	ShipmentID        kernel.UUID
	ShipmentCN        string
	ExceptionType     string
	Description       string
	Status            string
	ResolutionNotes   string
	NewShipmentStatus *string
	CreatedAt         time.Time
}

// ListExceptionsResponse is a page of exceptions plus the total match count.
type ListExceptionsResponse struct {
	Exceptions []ExceptionRow
	Total      int64
}
