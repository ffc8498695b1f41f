package manifest

import (
	"courierhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a manifest. A manifest accepts
// membership changes only while OPEN; CLOSED freezes the handover paperwork
// without touching member shipment statuses.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open accepts shipment additions and removals.
	Open

	// Closed is terminal for membership changes.
	Closed

	// PickupAssigned marks a closed manifest handed to a pickup vehicle.
	PickupAssigned

	// Cancelled marks a manifest voided before handover.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Open:           "OPEN",
		Closed:         "CLOSED",
		PickupAssigned: "PICKUP_ASSIGNED",
		Cancelled:      "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a manifest status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("manifest status")
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
		return errs.NewValueIsInvalidError("manifest status")
	}
	return nil
}
