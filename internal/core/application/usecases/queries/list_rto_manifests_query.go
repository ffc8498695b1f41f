package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/pkg/guard"
)

var ErrListRTOManifestsQueryIsNotConstructed = errors.New(
	"ListRTOManifestsQuery must be created via NewListRTOManifestsQuery constructor",
)

// ListRTOManifestsQuery retrieves a page of return batches, optionally
// filtered by status.
type ListRTOManifestsQuery struct {
	tenant     kernel.Tenant
	status     *rto.Status
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewListRTOManifestsQuery creates an RTO list query.
func NewListRTOManifestsQuery(
	tenant kernel.Tenant,
	status *rto.Status,
	pagination Pagination,
) (ListRTOManifestsQuery, error) {
	if err := tenant.Validate(); err != nil {
		return ListRTOManifestsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListRTOManifestsQuery{}, err
		}
	}

	return ListRTOManifestsQuery{
		tenant:     tenant,
		status:     status,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRTOManifestsQuery) Validate() error {
	return q.guard.Validate(ErrListRTOManifestsQueryIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (q ListRTOManifestsQuery) Tenant() kernel.Tenant { return q.tenant }

// Status returns the status filter, or nil for any.
func (q ListRTOManifestsQuery) Status() *rto.Status { return q.status }

// Pagination returns the normalized page window.
func (q ListRTOManifestsQuery) Pagination() Pagination { return q.pagination }

// RTOManifestRow is one return batch projection row.
type RTOManifestRow struct {
	ID             kernel.UUID
	Number         string
	Reason         string
	OriginHubID    kernel.UUID
	ReturnHubID    kernel.UUID
	Notes          string
	Status         string
	ShipmentsCount int
}

// ListRTOManifestsResponse is a page of return batches plus the total
// match count.
type ListRTOManifestsResponse struct {
	Manifests []RTOManifestRow
	Total     int64
}
