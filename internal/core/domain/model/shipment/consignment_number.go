package shipment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"courierhub/internal/pkg/errs"
)

const cnDigits = 12

// ConsignmentNumber is the human-readable, barcode-scannable identifier of a
// shipment ("CN" followed by twelve digits). It is globally unique and
// immutable once assigned; hub scan devices address shipments by it.
type ConsignmentNumber struct {
	value string
}

// NewConsignmentNumber generates a fresh consignment number. Uniqueness is
// ultimately enforced by the database constraint on the shipments table.
func NewConsignmentNumber() (ConsignmentNumber, error) {
	var sb strings.Builder
	sb.WriteString("CN")
	for range cnDigits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return ConsignmentNumber{}, fmt.Errorf("generating consignment number: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return ConsignmentNumber{value: sb.String()}, nil
}

// ConsignmentNumberFromString reconstructs a consignment number from its
// textual form, e.g. from a scan payload or persistence.
func ConsignmentNumberFromString(s string) (ConsignmentNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ConsignmentNumber{}, errs.NewValueIsRequiredError("shipment_cn")
	}
	return ConsignmentNumber{value: s}, nil
}

// String returns the textual form of the consignment number.
func (cn ConsignmentNumber) String() string {
	return cn.value
}

// IsEqual reports whether two consignment numbers are the same.
func (cn ConsignmentNumber) IsEqual(other ConsignmentNumber) bool {
	return cn.value == other.value
}

// Validate rejects the zero value.
func (cn ConsignmentNumber) Validate() error {
	if cn.value == "" {
		return errs.NewValueIsRequiredError("shipment_cn")
	}
	return nil
}
