package shipment

import (
	"courierhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment. It is the single
// coordination point for every component in the system: manifesting, hub
// scans, exception handling and RTO all advance a shipment exclusively
// through the transitions encoded here.
//
// State machine:
//
//	CREATED ──> MANIFESTED ──> IN_TRANSIT ──┬──> IN_TRANSIT (next hub)
//	                                        └──> OUT_FOR_DELIVERY ──> DELIVERED
//	{CREATED..OUT_FOR_DELIVERY, RTO} ──> EXCEPTION
//	EXCEPTION ──> CREATED | RTO | DELIVERED   (on resolution)
//	RTO ──> CREATED | DELIVERED               (redelivery restart / write-off)
//
// DELIVERED is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status after booking; the only status in which
	// a shipment may be deleted or added to a manifest.
	Created

	// Manifested means the shipment belongs to an outbound manifest and is
	// awaiting its first hub in-scan.
	Manifested

	// InTransit means the shipment is moving through the hub network.
	InTransit

	// OutForDelivery means the shipment left its final hub for the receiver.
	OutForDelivery

	// Delivered is the terminal success state.
	Delivered

	// ReturnToOrigin means the shipment is part of an RTO batch heading back
	// to its origin hub.
	ReturnToOrigin

	// Exception means normal progression is blocked by a flagged problem.
	Exception
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		Manifested:     "MANIFESTED",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		ReturnToOrigin: "RTO",
		Exception:      "EXCEPTION",
	}
}

// transitions is the authoritative edge set of the lifecycle state machine.
// Every component consults it through CanTransitionTo/TransitionTo; no
// caller re-derives legal edges.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Created:        {Manifested, Exception},
		Manifested:     {InTransit, Exception},
		InTransit:      {InTransit, OutForDelivery, Exception},
		OutForDelivery: {Delivered, Exception},
		Exception:      {Created, ReturnToOrigin, Delivered},
		ReturnToOrigin: {Created, Delivered, Exception},
		Delivered:      nil,
	}
}

// StatusFromString parses the wire representation of a status ("CREATED",
// "IN_TRANSIT", ...). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		errs.NewValueIsInvalidError(s))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo reports whether target is a legal edge from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target exists, or an
// InvalidTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
