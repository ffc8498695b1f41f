// Package exception contains the ShipmentException aggregate: a flagged
// problem (weight mismatch, failed delivery, damage, ...) that blocks a
// shipment's normal progression until an operator resolves or escalates it.
// Resolution optionally re-routes the parent shipment to CREATED, RTO or
// DELIVERED through the central shipment state machine.
package exception
