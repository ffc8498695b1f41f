// Package rto holds the return-to-origin batch aggregate. An RTO manifest
// groups failure-eligible shipments for the trip back to their origin hub
// and tracks only the batch lifecycle, not the member shipments' statuses.
package rto
