package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/pkg/guard"
)

var ErrGetManifestsQueryIsNotConstructed = errors.New(
	"GetManifestsQuery must be created via NewGetManifestsQuery constructor",
)

// GetManifestsQuery retrieves a page of manifests, optionally filtered by
// status, origin hub and courier company.
type GetManifestsQuery struct {
	tenant           kernel.Tenant
	status           *manifest.Status
	originHubID      *kernel.UUID
	courierCompanyID *kernel.UUID
	pagination       Pagination

	guard guard.ConstructorGuard
}

// NewGetManifestsQuery creates a manifest list query. Nil filters mean "any".
func NewGetManifestsQuery(
	tenant kernel.Tenant,
	status *manifest.Status,
	originHubID *kernel.UUID,
	courierCompanyID *kernel.UUID,
	pagination Pagination,
) (GetManifestsQuery, error) {
	if err := tenant.Validate(); err != nil {
		return GetManifestsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetManifestsQuery{}, err
		}
	}
	if originHubID != nil {
		if err := originHubID.Validate(); err != nil {
			return GetManifestsQuery{}, err
		}
	}
	if courierCompanyID != nil {
		if err := courierCompanyID.Validate(); err != nil {
			return GetManifestsQuery{}, err
		}
	}

	return GetManifestsQuery{
		tenant:           tenant,
		status:           status,
		originHubID:      originHubID,
		courierCompanyID: courierCompanyID,
		pagination:       pagination,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManifestsQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestsQueryIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (q GetManifestsQuery) Tenant() kernel.Tenant { return q.tenant }

// Status returns the status filter, or nil for any.
func (q GetManifestsQuery) Status() *manifest.Status { return q.status }

// OriginHubID returns the origin hub filter, or nil for any.
func (q GetManifestsQuery) OriginHubID() *kernel.UUID { return q.originHubID }

// CourierCompanyID returns the courier filter, or nil for any.
func (q GetManifestsQuery) CourierCompanyID() *kernel.UUID { return q.courierCompanyID }

// Pagination returns the normalized page window.
func (q GetManifestsQuery) Pagination() Pagination { return q.pagination }

// ManifestRow is one manifest projection row.
type ManifestRow struct {
	ID               kernel.UUID
	Number           string
	CourierCompanyID kernel.UUID
	OriginHubID      kernel.UUID
	Status           string
	TotalShipments   int
	TotalWeightKg    float64
}

// GetManifestsResponse is a page of manifests plus the total match count.
type GetManifestsResponse struct {
	Manifests []ManifestRow
	Total     int64
}
