// Package scan contains the immutable HubScanEvent record. Scan events are
// append-only; the ordering invariants (in before out, no double scans)
// are enforced by the hub scan command handlers together with the unique
// database constraint on (tenant, shipment, hub, type).
package scan
