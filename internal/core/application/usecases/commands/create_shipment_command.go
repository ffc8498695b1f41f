package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to book one parcel.
// Value objects arrive pre-validated from the boundary; the command re-checks
// them so a handler can never observe half-built input.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	tenant        kernel.Tenant
	sender        shipment.Party
	receiver      shipment.Party
	weightKg      float64
	dimensions    shipment.Dimensions
	pieces        int
	declaredValue float64
	serviceType   shipment.ServiceType
	source        shipment.Source
	totalCharge   float64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to book a new shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	tenant kernel.Tenant,
	sender shipment.Party,
	receiver shipment.Party,
	weightKg float64,
	dimensions shipment.Dimensions,
	pieces int,
	declaredValue float64,
	serviceType shipment.ServiceType,
	source shipment.Source,
	totalCharge float64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		weightKg:      weightKg,
		dimensions:    dimensions,
		pieces:        pieces,
		declaredValue: declaredValue,
		totalCharge:   totalCharge,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTenant(tenant),
		cmd.setParties(sender, receiver),
		cmd.setServiceType(serviceType),
		cmd.setSource(source),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier assigned to the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Tenant returns the franchise context of the caller.
func (c CreateShipmentCommand) Tenant() kernel.Tenant { return c.tenant }

// Sender returns the sender party details.
func (c CreateShipmentCommand) Sender() shipment.Party { return c.sender }

// Receiver returns the receiver party details.
func (c CreateShipmentCommand) Receiver() shipment.Party { return c.receiver }

// WeightKg returns the parcel weight in kilograms.
func (c CreateShipmentCommand) WeightKg() float64 { return c.weightKg }

// Dimensions returns the parcel dimensions.
func (c CreateShipmentCommand) Dimensions() shipment.Dimensions { return c.dimensions }

// Pieces returns the piece count.
func (c CreateShipmentCommand) Pieces() int { return c.pieces }

// DeclaredValue returns the declared value of the contents.
func (c CreateShipmentCommand) DeclaredValue() float64 { return c.declaredValue }

// ServiceType returns the booked service level.
func (c CreateShipmentCommand) ServiceType() shipment.ServiceType { return c.serviceType }

// Source returns how the booking entered the system.
func (c CreateShipmentCommand) Source() shipment.Source { return c.source }

// TotalCharge returns the charged amount.
func (c CreateShipmentCommand) TotalCharge() float64 { return c.totalCharge }

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *CreateShipmentCommand) setParties(sender, receiver shipment.Party) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("receiver", err)
	}
	c.sender = sender
	c.receiver = receiver
	return nil
}

func (c *CreateShipmentCommand) setServiceType(st shipment.ServiceType) error {
	if err := st.Validate(); err != nil {
		return err
	}
	c.serviceType = st
	return nil
}

func (c *CreateShipmentCommand) setSource(src shipment.Source) error {
	if err := src.Validate(); err != nil {
		return err
	}
	c.source = src
	return nil
}
