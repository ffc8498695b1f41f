package rto

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

// ErrRTOManifestIsNotConstructed is returned when a Manifest instance was
// not created through NewManifest or RestoreManifest.
var ErrRTOManifestIsNotConstructed = errors.New("RTO Manifest must be created via NewManifest or RestoreManifest")

// Reason classifies why a batch is going back to origin. It mirrors the
// failure subset of the exception types.
type Reason int

const (
	ReasonUnknown Reason = iota
	DeliveryFailed
	AddressUnserviceable
	DamagedParcel
	CustomerRefused
	PaymentIssue
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		DeliveryFailed:       "DELIVERY_FAILED",
		AddressUnserviceable: "ADDRESS_UNSERVICEABLE",
		DamagedParcel:        "DAMAGED_PARCEL",
		CustomerRefused:      "CUSTOMER_REFUSED",
		PaymentIssue:         "PAYMENT_ISSUE",
	}
}

// ReasonFromString parses the wire representation of an RTO reason.
func ReasonFromString(s string) (Reason, error) {
	for r, name := range getReasonStrings() {
		if name == s {
			return r, nil
		}
	}
	return ReasonUnknown, errs.NewValueIsInvalidError("rto_reason")
}

// String returns the wire representation of the reason.
func (r Reason) String() string {
	if s, ok := getReasonStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects values outside the enumerated set.
func (r Reason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("rto_reason")
	}
	return nil
}

// Status is the lifecycle state of an RTO batch.
type Status int

const (
	StatusUnknown Status = iota

	// Initiated means the batch is assembled and waiting to move.
	Initiated

	// InTransit means the batch is physically moving back to origin.
	InTransit

	// Returned means the batch arrived back at the origin hub.
	Returned

	// Resolved is the terminal write-off/redelivery-decided state.
	Resolved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Initiated: "INITIATED",
		InTransit: "IN_TRANSIT",
		Returned:  "RETURNED",
		Resolved:  "RESOLVED",
	}
}

// StatusFromString parses the wire representation of an RTO status.
func StatusFromString(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("rto status")
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects values outside the enumerated set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("rto status")
	}
	return nil
}

// Manifest is the aggregate root for one return batch of failed-delivery
// shipments. Completion (RETURNED) confirms physical arrival back at origin;
// what happens to each member shipment afterwards is an explicit follow-on
// exception-resolution or status-update call, never automatic.
type Manifest struct {
	id             kernel.UUID
	tenant         kernel.Tenant
	number         string
	reason         Reason
	originHubID    kernel.UUID
	returnHubID    kernel.UUID
	notes          string
	status         Status
	shipmentsCount int
	isConstructed  bool
}

// NewManifest creates an INITIATED return batch with a generated number.
// Members are accounted one by one inside the creating transaction.
func NewManifest(
	id kernel.UUID,
	tenant kernel.Tenant,
	reason Reason,
	originHubID kernel.UUID,
	returnHubID kernel.UUID,
	notes string,
) (*Manifest, error) {
	number, err := newRTONumber()
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		number:        number,
		notes:         notes,
		status:        Initiated,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTenant(tenant),
		m.setReason(reason),
		m.setOriginHubID(originHubID),
		m.setReturnHubID(returnHubID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs an RTO batch from persistence.
func RestoreManifest(
	id kernel.UUID,
	tenant kernel.Tenant,
	number string,
	reason Reason,
	originHubID kernel.UUID,
	returnHubID kernel.UUID,
	notes string,
	status Status,
	shipmentsCount int,
) (*Manifest, error) {
	m := &Manifest{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTenant(tenant),
		m.setNumber(number),
		m.setReason(reason),
		m.setOriginHubID(originHubID),
		m.setReturnHubID(returnHubID),
		m.setStatus(status),
		m.setShipmentsCount(shipmentsCount),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the instance came from a constructor.
func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrRTOManifestIsNotConstructed
	}
	return nil
}

// ID returns the batch identifier.
func (m *Manifest) ID() kernel.UUID { return m.id }

// Tenant returns the owning franchise context.
func (m *Manifest) Tenant() kernel.Tenant { return m.tenant }

// Number returns the generated RTO manifest number.
func (m *Manifest) Number() string { return m.number }

// Reason returns the return reason.
func (m *Manifest) Reason() Reason { return m.reason }

// OriginHubID returns the hub the batch returns to.
func (m *Manifest) OriginHubID() kernel.UUID { return m.originHubID }

// ReturnHubID returns the hub the batch departs from.
func (m *Manifest) ReturnHubID() kernel.UUID { return m.returnHubID }

// Notes returns the free-text notes, possibly empty.
func (m *Manifest) Notes() string { return m.notes }

// Status returns the current batch status.
func (m *Manifest) Status() Status { return m.status }

// ShipmentsCount returns the member count.
func (m *Manifest) ShipmentsCount() int { return m.shipmentsCount }

// AddShipment accounts one member into the batch. Only legal while the
// batch is being assembled (INITIATED).
func (m *Manifest) AddShipment() error {
	if m.status != Initiated {
		return errs.NewConflictError(fmt.Sprintf(
			"rto manifest %s is %s, members can only be added while INITIATED", m.number, m.status))
	}
	m.shipmentsCount++
	return nil
}

// Complete confirms physical arrival back at origin: INITIATED -> RETURNED.
// Member shipment statuses are intentionally untouched.
func (m *Manifest) Complete() error {
	if m.status != Initiated {
		return errs.NewConflictError(fmt.Sprintf(
			"rto manifest %s is %s, only INITIATED batches can be completed", m.number, m.status))
	}
	m.status = Returned
	return nil
}

// Resolve closes the batch after the redeliver/write-off decision:
// RETURNED -> RESOLVED.
func (m *Manifest) Resolve() error {
	if m.status != Returned {
		return errs.NewConflictError(fmt.Sprintf(
			"rto manifest %s is %s, only RETURNED batches can be resolved", m.number, m.status))
	}
	m.status = Resolved
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
		return errs.NewValueIsRequiredError("rto_manifest_number")
	}
	m.number = number
	return nil
}

func (m *Manifest) setReason(reason Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	m.reason = reason
	return nil
}

func (m *Manifest) setOriginHubID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin_hub_id", err)
	}
	m.originHubID = id
	return nil
}

func (m *Manifest) setReturnHubID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("return_destination_hub_id", err)
	}
	m.returnHubID = id
	return nil
}

func (m *Manifest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	m.status = status
	return nil
}

func (m *Manifest) setShipmentsCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidError("shipments_count")
	}
	m.shipmentsCount = count
	return nil
}

// newRTONumber builds a return batch number like RTO-20260831-482913.
func newRTONumber() (string, error) {
	var sb strings.Builder
	sb.WriteString("RTO-")
	sb.WriteString(time.Now().UTC().Format("20060102"))
	sb.WriteByte('-')
	for range 6 {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generating rto manifest number: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
