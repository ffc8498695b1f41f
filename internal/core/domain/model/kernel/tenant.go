package kernel

// Tenant identifies the franchise on whose behalf an operation runs. Every
// shipment, manifest, scan, exception and RTO record belongs to exactly one
// tenant, and every repository call is parameterized by it. The value is
// extracted from the authenticated request by the HTTP layer and threaded
// explicitly through commands and queries; it is never ambient state.
type Tenant struct {
	franchiseID UUID
}

// NewTenant creates a tenant context from a franchise identifier.
func NewTenant(franchiseID UUID) (Tenant, error) {
	if err := franchiseID.Validate(); err != nil {
		return Tenant{}, err
	}
	return Tenant{franchiseID: franchiseID}, nil
}

// FranchiseID returns the owning franchise identifier.
func (t Tenant) FranchiseID() UUID {
	return t.franchiseID
}

// IsEqual reports whether two tenant contexts refer to the same franchise.
func (t Tenant) IsEqual(other Tenant) bool {
	return t.franchiseID.IsEqual(other.franchiseID)
}

// Validate returns an error for the zero value.
func (t Tenant) Validate() error {
	return t.franchiseID.Validate()
}
