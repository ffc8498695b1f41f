package shipment

import (
	"courierhub/internal/pkg/errs"
)

// MaxWeightKg is the heaviest parcel the network accepts.
const MaxWeightKg = 30.0

// ServiceType is the booked service level.
type ServiceType int

const (
	ServiceUnknown ServiceType = iota
	Express
	Standard
	Economy
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		Express:  "EXPRESS",
		Standard: "STANDARD",
		Economy:  "ECONOMY",
	}
}

// ServiceTypeFromString parses the wire representation of a service type.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for st, name := range getServiceTypeStrings() {
		if name == s {
			return st, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidError("service_type")
}

// String returns the wire representation of the service type.
func (st ServiceType) String() string {
	if s, ok := getServiceTypeStrings()[st]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects values outside the configured set.
func (st ServiceType) Validate() error {
	if _, ok := getServiceTypeStrings()[st]; !ok {
		return errs.NewValueIsInvalidError("service_type")
	}
	return nil
}

// Source records how a shipment entered the system.
type Source int

const (
	SourceUnknown Source = iota
	Manual
	Pickup
	WalkIn
	Bulk
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		Manual: "MANUAL",
		Pickup: "PICKUP",
		WalkIn: "WALKIN",
		Bulk:   "BULK",
	}
}

// SourceFromString parses the wire representation of a shipment source.
func SourceFromString(s string) (Source, error) {
	for src, name := range getSourceStrings() {
		if name == s {
			return src, nil
		}
	}
	return SourceUnknown, errs.NewValueIsInvalidError("shipment_source")
}

// String returns the wire representation of the source.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects values outside the enumerated set.
func (s Source) Validate() error {
	if _, ok := getSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("shipment_source")
	}
	return nil
}

// Dimensions are the declared parcel dimensions in centimeters.
// A zero value means "not declared" and is allowed.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Validate rejects negative dimensions.
func (d Dimensions) Validate() error {
	if d.LengthCm < 0 || d.WidthCm < 0 || d.HeightCm < 0 {
		return errs.NewValueIsInvalidError("dimensions")
	}
	return nil
}
