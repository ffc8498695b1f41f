// Package shipment contains the Shipment aggregate and its value objects:
// consignment number, sender/receiver parties, service attributes and the
// lifecycle Status state machine. The status transition table in status.go
// is the single authority on legal lifecycle edges; manifesting, hub scans,
// exception handling and RTO all go through it.
package shipment
