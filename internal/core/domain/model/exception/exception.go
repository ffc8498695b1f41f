package exception

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"
)

// ErrExceptionIsNotConstructed is returned when an Exception instance was
// not created through NewException or RestoreException.
var ErrExceptionIsNotConstructed = errors.New("Exception must be created via NewException or RestoreException")

// Type classifies the problem blocking a shipment.
type Type int

const (
	TypeUnknown Type = iota
	WeightMismatch
	AddressUnserviceable
	DeliveryFailed
	DamagedParcel
	LostParcel
	CustomerRefused
	PaymentIssue
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		WeightMismatch:       "WEIGHT_MISMATCH",
		AddressUnserviceable: "ADDRESS_UNSERVICEABLE",
		DeliveryFailed:       "DELIVERY_FAILED",
		DamagedParcel:        "DAMAGED_PARCEL",
		LostParcel:           "LOST_PARCEL",
		CustomerRefused:      "CUSTOMER_REFUSED",
		PaymentIssue:         "PAYMENT_ISSUE",
	}
}

// TypeFromString parses the wire representation of an exception type.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("exception_type")
}

// String returns the wire representation of the exception type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects values outside the enumerated set.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidError("exception_type")
	}
	return nil
}

// Status is the workflow state of the exception record itself.
type Status int

const (
	StatusUnknown Status = iota
	Pending
	Resolved
	Escalated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "PENDING",
		Resolved:  "RESOLVED",
		Escalated: "ESCALATED",
	}
}

// StatusFromString parses the wire representation of an exception status.
func StatusFromString(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if name == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("exception status")
}

// String returns the wire representation of the exception status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects values outside the enumerated set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("exception status")
	}
	return nil
}

// Exception is a flagged problem attached to one shipment. While the parent
// shipment sits in EXCEPTION status, this record tracks the operator
// workflow: PENDING until someone supplies resolution notes and a verdict.
type Exception struct {
	id              kernel.UUID
	tenant          kernel.Tenant
	shipmentID      kernel.UUID
	exceptionType   Type
	description     string
	status          Status
	resolutionNotes string
	newStatus       *shipment.Status
	createdAt       time.Time
	isConstructed   bool
}

// NewException creates a PENDING exception for a shipment.
func NewException(
	tenant kernel.Tenant,
	shipmentID kernel.UUID,
	exceptionType Type,
	description string,
) (*Exception, error) {
	e := &Exception{
		id:            kernel.NewUUID(),
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setTenant(tenant),
		e.setShipmentID(shipmentID),
		e.setType(exceptionType),
		e.setDescription(description),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreException reconstructs an exception from persistence.
func RestoreException(
	id kernel.UUID,
	tenant kernel.Tenant,
	shipmentID kernel.UUID,
	exceptionType Type,
	description string,
	status Status,
	resolutionNotes string,
	newStatus *shipment.Status,
	createdAt time.Time,
) (*Exception, error) {
	e := &Exception{
		resolutionNotes: resolutionNotes,
		newStatus:       newStatus,
		createdAt:       createdAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setTenant(tenant),
		e.setShipmentID(shipmentID),
		e.setType(exceptionType),
		e.setDescription(description),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the instance came from a constructor.
func (e *Exception) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExceptionIsNotConstructed
	}
	return nil
}

// ID returns the exception identifier.
func (e *Exception) ID() kernel.UUID { return e.id }

// Tenant returns the owning franchise context.
func (e *Exception) Tenant() kernel.Tenant { return e.tenant }

// ShipmentID returns the parent shipment.
func (e *Exception) ShipmentID() kernel.UUID { return e.shipmentID }

// ExceptionType returns the problem classification.
func (e *Exception) ExceptionType() Type { return e.exceptionType }

// Description returns the free-text problem description.
func (e *Exception) Description() string { return e.description }

// Status returns the workflow state of this record.
func (e *Exception) Status() Status { return e.status }

// ResolutionNotes returns the operator's notes, empty while PENDING.
func (e *Exception) ResolutionNotes() string { return e.resolutionNotes }

// NewShipmentStatus returns the status applied to the parent shipment on
// resolution, nil while PENDING or when ESCALATED.
func (e *Exception) NewShipmentStatus() *shipment.Status { return e.newStatus }

// CreatedAt returns when the exception was raised.
func (e *Exception) CreatedAt() time.Time { return e.createdAt }

// Resolve closes the exception with mandatory notes and records the status
// the parent shipment re-enters the lifecycle with.
func (e *Exception) Resolve(notes string, newShipmentStatus shipment.Status) error {
	if e.status != Pending {
		return errs.NewConflictError(fmt.Sprintf(
			"exception %s is %s, only PENDING exceptions can be resolved", e.id, e.status))
	}
	if strings.TrimSpace(notes) == "" {
		return errs.NewValueIsRequiredError("resolution_notes")
	}

	e.status = Resolved
	e.resolutionNotes = notes
	e.newStatus = &newShipmentStatus
	return nil
}

// Escalate marks the exception for higher-level attention. The parent
// shipment stays in EXCEPTION status.
func (e *Exception) Escalate(notes string) error {
	if e.status != Pending {
		return errs.NewConflictError(fmt.Sprintf(
			"exception %s is %s, only PENDING exceptions can be escalated", e.id, e.status))
	}
	if strings.TrimSpace(notes) == "" {
		return errs.NewValueIsRequiredError("resolution_notes")
	}

	e.status = Escalated
	e.resolutionNotes = notes
	return nil
}

func (e *Exception) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Exception) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	e.tenant = tenant
	return nil
}

func (e *Exception) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipment_id", err)
	}
	e.shipmentID = id
	return nil
}

func (e *Exception) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.exceptionType = t
	return nil
}

func (e *Exception) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	e.description = description
	return nil
}

func (e *Exception) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
