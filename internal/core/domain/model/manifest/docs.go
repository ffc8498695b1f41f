// Package manifest contains the Manifest aggregate: a batch handover of
// shipments to one courier company from one origin hub. The aggregate owns
// the derived totals (shipment count and weight) and guarantees they equal
// the live member set as long as AddShipment/RemoveShipment run in the same
// transaction as the membership change. Removal is the audit record for the
// remanifest correction flow.
package manifest
