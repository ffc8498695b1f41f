package manifest

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

// ErrManifestIsNotConstructed is returned when a Manifest instance was not
// created through NewManifest or RestoreManifest.
var ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest or RestoreManifest")

// Manifest is the aggregate root for one batch handover of shipments to a
// courier company from an origin hub.
//
// Invariants:
//   - totalShipments and totalWeight always equal the live sum over the
//     current member set; AddShipment/RemoveShipment are the only mutators
//     and are called inside the same transaction as membership changes
//   - membership changes are only legal while status is OPEN
type Manifest struct {
	id               kernel.UUID
	tenant           kernel.Tenant
	number           string
	courierCompanyID kernel.UUID
	originHubID      kernel.UUID
	status           Status
	totalShipments   int
	totalWeightKg    float64
	isConstructed    bool
}

// NewManifest creates an empty OPEN manifest with a generated manifest
// number. Members are added one by one inside the creating transaction.
func NewManifest(
	id kernel.UUID,
	tenant kernel.Tenant,
	courierCompanyID kernel.UUID,
	originHubID kernel.UUID,
) (*Manifest, error) {
	number, err := newManifestNumber("MAN")
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		number:        number,
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTenant(tenant),
		m.setCourierCompanyID(courierCompanyID),
		m.setOriginHubID(originHubID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a manifest from persistence.
func RestoreManifest(
	id kernel.UUID,
	tenant kernel.Tenant,
	number string,
	courierCompanyID kernel.UUID,
	originHubID kernel.UUID,
	status Status,
	totalShipments int,
	totalWeightKg float64,
) (*Manifest, error) {
	m := &Manifest{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTenant(tenant),
		m.setNumber(number),
		m.setCourierCompanyID(courierCompanyID),
		m.setOriginHubID(originHubID),
		m.setStatus(status),
		m.setTotals(totalShipments, totalWeightKg),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the instance came from a constructor.
func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

// ID returns the manifest's surrogate identifier.
func (m *Manifest) ID() kernel.UUID { return m.id }

// Tenant returns the owning franchise context.
func (m *Manifest) Tenant() kernel.Tenant { return m.tenant }

// Number returns the generated manifest number.
func (m *Manifest) Number() string { return m.number }

// CourierCompanyID returns the courier the batch is handed to.
func (m *Manifest) CourierCompanyID() kernel.UUID { return m.courierCompanyID }

// OriginHubID returns the hub the batch departs from.
func (m *Manifest) OriginHubID() kernel.UUID { return m.originHubID }

// Status returns the current manifest status.
func (m *Manifest) Status() Status { return m.status }

// TotalShipments returns the derived member count.
func (m *Manifest) TotalShipments() int { return m.totalShipments }

// TotalWeightKg returns the derived member weight sum.
func (m *Manifest) TotalWeightKg() float64 { return m.totalWeightKg }

// IsOpen reports whether membership changes are currently legal.
func (m *Manifest) IsOpen() bool {
	return m.status == Open
}

// AddShipment accounts one member shipment into the aggregates. Fails with
// ConflictError unless the manifest is OPEN.
func (m *Manifest) AddShipment(weightKg float64) error {
	if !m.IsOpen() {
		return errs.NewConflictError(fmt.Sprintf(
			"manifest %s is %s, members can only change while OPEN", m.number, m.status))
	}
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	m.totalShipments++
	m.totalWeightKg += weightKg
	return nil
}

// RemoveShipment removes one member shipment from the aggregates. Fails with
// ConflictError unless the manifest is OPEN or the counters would go
// negative.
func (m *Manifest) RemoveShipment(weightKg float64) error {
	if !m.IsOpen() {
		return errs.NewConflictError(fmt.Sprintf(
			"manifest %s is %s, members can only change while OPEN", m.number, m.status))
	}
	if m.totalShipments == 0 || m.totalWeightKg < weightKg {
		return errs.NewConflictError(fmt.Sprintf(
			"manifest %s aggregates would go negative", m.number))
	}

	m.totalShipments--
	m.totalWeightKg -= weightKg
	return nil
}

// Close freezes the manifest for handover: OPEN -> CLOSED. Member shipment
// statuses are untouched; physical movement is recorded by hub scans.
func (m *Manifest) Close() error {
	if m.status != Open {
		return errs.NewConflictError(fmt.Sprintf(
			"manifest %s is %s, only OPEN manifests can be closed", m.number, m.status))
	}
	m.status = Closed
	return nil
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	m.tenant = tenant
	return nil
}

func (m *Manifest) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("manifest_number")
	}
	m.number = number
	return nil
}

func (m *Manifest) setCourierCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier_company_id", err)
	}
	m.courierCompanyID = id
	return nil
}

func (m *Manifest) setOriginHubID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin_hub_id", err)
	}
	m.originHubID = id
	return nil
}

func (m *Manifest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

func (m *Manifest) setTotals(totalShipments int, totalWeightKg float64) error {
	if totalShipments < 0 || totalWeightKg < 0 {
		return errs.NewValueIsInvalidError("manifest totals")
	}
	m.totalShipments = totalShipments
	m.totalWeightKg = totalWeightKg
	return nil
}

// newManifestNumber builds a handover number like MAN-20260831-483920.
func newManifestNumber(prefix string) (string, error) {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('-')
	sb.WriteString(time.Now().UTC().Format("20060102"))
	sb.WriteByte('-')
	for range 6 {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generating manifest number: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
