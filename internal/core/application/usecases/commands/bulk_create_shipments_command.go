package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrBulkCreateShipmentsCommandIsNotConstructed = errors.New(
	"BulkCreateShipmentsCommand must be created via NewBulkCreateShipmentsCommand constructor",
)

// BulkShipmentRow is one raw row of a bulk upload. Fields are primitives on
// purpose: per-row validation happens inside the handler so a bad row
// produces a report entry instead of failing the whole batch.
type BulkShipmentRow struct {
	SenderName      string
	SenderPhone     string
	SenderAddress   string
	SenderPincode   string
	SenderCity      string
	SenderState     string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	ReceiverPincode string
	ReceiverCity    string
	ReceiverState   string
	WeightKg        float64
	LengthCm        float64
	WidthCm         float64
	HeightCm        float64
	Pieces          int
	DeclaredValue   float64
	ServiceType     string
	TotalCharge     float64
}

// BulkCreateReport summarizes a bulk upload. Errors are human-readable
// strings prefixed with the failing row number.
type BulkCreateReport struct {
	TotalRows    int
	SuccessCount int
	ErrorCount   int
	Errors       []string
}

// BulkCreateShipmentsCommand represents a request to book many shipments
// from an uploaded file. One malformed row never blocks the rest.
type BulkCreateShipmentsCommand struct { //nolint:recvcheck //using for validation
	tenant kernel.Tenant
	rows   []BulkShipmentRow

	guard guard.ConstructorGuard
}

// NewBulkCreateShipmentsCommand creates a bulk booking command.
// The row set must be non-empty; row contents are not validated here.
func NewBulkCreateShipmentsCommand(tenant kernel.Tenant, rows []BulkShipmentRow) (BulkCreateShipmentsCommand, error) {
	cmd := BulkCreateShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenant(tenant),
		cmd.setRows(rows),
	); err != nil {
		return BulkCreateShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkCreateShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrBulkCreateShipmentsCommandIsNotConstructed)
}

// Tenant returns the franchise context of the caller.
func (c BulkCreateShipmentsCommand) Tenant() kernel.Tenant { return c.tenant }

// Rows returns the raw upload rows.
func (c BulkCreateShipmentsCommand) Rows() []BulkShipmentRow { return c.rows }

func (c *BulkCreateShipmentsCommand) setTenant(tenant kernel.Tenant) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	c.tenant = tenant
	return nil
}

func (c *BulkCreateShipmentsCommand) setRows(rows []BulkShipmentRow) error {
	if len(rows) == 0 {
		return errs.NewValueIsRequiredError("rows")
	}
	c.rows = rows
	return nil
}
