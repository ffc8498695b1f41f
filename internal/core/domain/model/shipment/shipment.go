package shipment

import (
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the aggregate root for one parcel moving through the network.
// Its status field is the single source of truth for "where is this parcel
// in its lifecycle"; every other component (manifesting, scans, exceptions,
// RTO) mutates the shipment only through the methods below, all of which
// consult the central state machine in status.go.
//
// Invariants:
//   - consignment number is assigned at creation and never changes
//   - weight is in (0, MaxWeightKg]
//   - a shipment belongs to at most one manifest at a time, and only a
//     CREATED shipment can be added to one
//   - only a CREATED shipment may be deleted
type Shipment struct {
	id           kernel.UUID
	tenant       kernel.Tenant
	cn           ConsignmentNumber
	sender       Party
	receiver     Party
	weightKg     float64
	dimensions   Dimensions
	pieces       int
	declared     float64
	serviceType  ServiceType
	source       Source
	totalCharge  float64
	status       Status
	manifestID   *kernel.UUID
	isConstructed bool
}

// NewShipment creates a shipment in CREATED status with a freshly generated
// consignment number. All field validation happens here; a non-nil error
// names the first offending field.
func NewShipment(
	id kernel.UUID,
	tenant kernel.Tenant,
	sender Party,
	receiver Party,
	weightKg float64,
	dimensions Dimensions,
	pieces int,
	declaredValue float64,
	serviceType ServiceType,
	source Source,
	totalCharge float64,
) (*Shipment, error) {
	cn, err := NewConsignmentNumber()
	if err != nil {
		return nil, err
	}

	s := &Shipment{
		cn:            cn,
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTenant(tenant),
		s.setParties(sender, receiver),
		s.setWeight(weightKg),
		s.setDimensions(dimensions),
		s.setPieces(pieces),
		s.setDeclaredValue(declaredValue),
		s.setServiceType(serviceType),
		s.setSource(source),
		s.setTotalCharge(totalCharge),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. Unlike
// NewShipment it accepts an existing consignment number, status and manifest
// membership, but still re-validates every invariant.
func RestoreShipment(
	id kernel.UUID,
	tenant kernel.Tenant,
	cn ConsignmentNumber,
	sender Party,
	receiver Party,
	weightKg float64,
	dimensions Dimensions,
	pieces int,
	declaredValue float64,
	serviceType ServiceType,
	source Source,
	totalCharge float64,
	status Status,
	manifestID *kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTenant(tenant),
		s.setCN(cn),
		s.setParties(sender, receiver),
		s.setWeight(weightKg),
		s.setDimensions(dimensions),
		s.setPieces(pieces),
		s.setDeclaredValue(declaredValue),
		s.setServiceType(serviceType),
		s.setSource(source),
		s.setTotalCharge(totalCharge),
		s.setStatus(status),
		s.setManifestID(manifestID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the instance came from a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's surrogate identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// Tenant returns the owning franchise context.
func (s *Shipment) Tenant() kernel.Tenant { return s.tenant }

// CN returns the consignment number.
func (s *Shipment) CN() ConsignmentNumber { return s.cn }

// Sender returns the sender party.
func (s *Shipment) Sender() Party { return s.sender }

// Receiver returns the receiver party.
func (s *Shipment) Receiver() Party { return s.receiver }

// WeightKg returns the declared weight in kilograms.
func (s *Shipment) WeightKg() float64 { return s.weightKg }

// Dimensions returns the declared parcel dimensions.
func (s *Shipment) Dimensions() Dimensions { return s.dimensions }

// Pieces returns the piece count.
func (s *Shipment) Pieces() int { return s.pieces }

// DeclaredValue returns the declared value of the contents.
func (s *Shipment) DeclaredValue() float64 { return s.declared }

// ServiceType returns the booked service level.
func (s *Shipment) ServiceType() ServiceType { return s.serviceType }

// Source returns how the shipment entered the system.
func (s *Shipment) Source() Source { return s.source }

// TotalCharge returns the billed amount.
func (s *Shipment) TotalCharge() float64 { return s.totalCharge }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// ManifestID returns the current manifest membership, nil if unmanifested.
func (s *Shipment) ManifestID() *kernel.UUID { return s.manifestID }

// IsDeletable reports whether the shipment may be deleted. Only CREATED
// shipments qualify; anything further along is referenced by manifests or
// scan events.
func (s *Shipment) IsDeletable() bool {
	return s.status == Created
}

// AddToManifest moves the shipment into an open manifest, transitioning
// CREATED -> MANIFESTED. Fails with InvalidTransitionError for any other
// starting status.
func (s *Shipment) AddToManifest(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	newStatus, err := s.status.TransitionTo(Manifested)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.manifestID = &manifestID
	return nil
}

// DetachFromManifest removes the shipment from its current manifest without
// touching its status. Used by the remanifest correction flow.
func (s *Shipment) DetachFromManifest() error {
	if s.manifestID == nil {
		return errs.NewConflictError(
			fmt.Sprintf("shipment %s is not part of a manifest", s.cn))
	}
	s.manifestID = nil
	return nil
}

// MarkInTransit records arrival at a hub: MANIFESTED -> IN_TRANSIT for the
// first in-scan, IN_TRANSIT -> IN_TRANSIT for subsequent hubs.
func (s *Shipment) MarkInTransit() error {
	newStatus, err := s.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// MarkOutForDelivery records departure from the final hub toward the
// receiver: IN_TRANSIT -> OUT_FOR_DELIVERY.
func (s *Shipment) MarkOutForDelivery() error {
	newStatus, err := s.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// MarkException blocks normal progression: any non-terminal status ->
// EXCEPTION. Manifest membership stays intact; the exception workflow owns
// the parcel from here.
func (s *Shipment) MarkException() error {
	newStatus, err := s.status.TransitionTo(Exception)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// ResolveExceptionTo re-enters the lifecycle after exception resolution.
// Target must be CREATED, RTO or DELIVERED. Resolving back to CREATED also
// detaches the shipment from its manifest so it can be manifested again.
func (s *Shipment) ResolveExceptionTo(target Status) error {
	if s.status != Exception {
		return errs.NewInvalidTransitionError(s.status.String(), target.String())
	}
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	if newStatus == Created {
		s.manifestID = nil
	}
	return nil
}

// StartReturn moves the shipment into an RTO batch: EXCEPTION -> RTO.
func (s *Shipment) StartReturn() error {
	if s.status != Exception {
		return errs.NewConflictError(fmt.Sprintf(
			"shipment %s is %s, not failure-eligible for RTO", s.cn, s.status))
	}
	s.status = ReturnToOrigin
	return nil
}

// TransitionTo is the administrative status override. It permits exactly the
// documented state machine edges and nothing else.
func (s *Shipment) TransitionTo(target Status) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}
	s.status = newStatus
	if newStatus == Created {
		s.manifestID = nil
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	s.tenant = tenant
	return nil
}

func (s *Shipment) setCN(cn ConsignmentNumber) error {
	if err := cn.Validate(); err != nil {
		return err
	}
	s.cn = cn
	return nil
}

func (s *Shipment) setParties(sender, receiver Party) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("receiver", err)
	}
	s.sender = sender
	s.receiver = receiver
	return nil
}

func (s *Shipment) setWeight(weightKg float64) error {
	if weightKg <= 0 || weightKg > MaxWeightKg {
		return errs.NewValueIsOutOfRangeError("weight", weightKg, 0, MaxWeightKg)
	}
	s.weightKg = weightKg
	return nil
}

func (s *Shipment) setDimensions(d Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.dimensions = d
	return nil
}

func (s *Shipment) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}
	s.pieces = pieces
	return nil
}

func (s *Shipment) setDeclaredValue(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidError("declared_value")
	}
	s.declared = v
	return nil
}

func (s *Shipment) setServiceType(st ServiceType) error {
	if err := st.Validate(); err != nil {
		return err
	}
	s.serviceType = st
	return nil
}

func (s *Shipment) setSource(src Source) error {
	if err := src.Validate(); err != nil {
		return err
	}
	s.source = src
	return nil
}

func (s *Shipment) setTotalCharge(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidError("total_charge")
	}
	s.totalCharge = v
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setManifestID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	s.manifestID = id
	return nil
}
