package http

import (
	"time"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/exception"
	"courierhub/internal/core/domain/model/manifest"
	"courierhub/internal/core/domain/model/rto"
	"courierhub/internal/core/domain/model/shipment"
)

// View types translate query rows and aggregates into JSON shapes. Query
// rows carry kernel identity types which do not marshal on their own.

type shipmentView struct {
	ID            string  `json:"id"`
	CN            string  `json:"cn"`
	ReceiverName  string  `json:"receiver_name"`
	ReceiverPhone string  `json:"receiver_phone"`
	WeightKg      float64 `json:"weight_kg"`
	Pieces        int     `json:"pieces"`
	ServiceType   string  `json:"service_type"`
	Source        string  `json:"source"`
	TotalCharge   float64 `json:"total_charge"`
	Status        string  `json:"status"`
	ManifestID    *string `json:"manifest_id,omitempty"`
}

func shipmentViewFromRow(row queries.ShipmentRow) shipmentView {
	view := shipmentView{
		ID:            row.ID.String(),
		CN:            row.CN,
		ReceiverName:  row.ReceiverName,
		ReceiverPhone: row.ReceiverPhone,
		WeightKg:      row.WeightKg,
		Pieces:        row.Pieces,
		ServiceType:   row.ServiceType,
		Source:        row.Source,
		TotalCharge:   row.TotalCharge,
		Status:        row.Status,
	}
	if row.ManifestID != nil {
		id := row.ManifestID.String()
		view.ManifestID = &id
	}
	return view
}

func shipmentViewFromAggregate(aggregate *shipment.Shipment) shipmentView {
	view := shipmentView{
		ID:            aggregate.ID().String(),
		CN:            aggregate.CN().String(),
		ReceiverName:  aggregate.Receiver().Name(),
		ReceiverPhone: aggregate.Receiver().Phone(),
		WeightKg:      aggregate.WeightKg(),
		Pieces:        aggregate.Pieces(),
		ServiceType:   aggregate.ServiceType().String(),
		Source:        aggregate.Source().String(),
		TotalCharge:   aggregate.TotalCharge(),
		Status:        aggregate.Status().String(),
	}
	if id := aggregate.ManifestID(); id != nil {
		s := id.String()
		view.ManifestID = &s
	}
	return view
}

type shipmentListView struct {
	Shipments []shipmentView `json:"shipments"`
	Total     int64          `json:"total"`
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
}

type manifestView struct {
	ID               string  `json:"id"`
	Number           string  `json:"number"`
	CourierCompanyID string  `json:"courier_company_id"`
	OriginHubID      string  `json:"origin_hub_id"`
	Status           string  `json:"status"`
	TotalShipments   int     `json:"total_shipments"`
	TotalWeightKg    float64 `json:"total_weight_kg"`
}

func manifestViewFromRow(row queries.ManifestRow) manifestView {
	return manifestView{
		ID:               row.ID.String(),
		Number:           row.Number,
		CourierCompanyID: row.CourierCompanyID.String(),
		OriginHubID:      row.OriginHubID.String(),
		Status:           row.Status,
		TotalShipments:   row.TotalShipments,
		TotalWeightKg:    row.TotalWeightKg,
	}
}

func manifestViewFromAggregate(aggregate *manifest.Manifest) manifestView {
	return manifestView{
		ID:               aggregate.ID().String(),
		Number:           aggregate.Number(),
		CourierCompanyID: aggregate.CourierCompanyID().String(),
		OriginHubID:      aggregate.OriginHubID().String(),
		Status:           aggregate.Status().String(),
		TotalShipments:   aggregate.TotalShipments(),
		TotalWeightKg:    aggregate.TotalWeightKg(),
	}
}

type manifestListView struct {
	Manifests []manifestView `json:"manifests"`
	Total     int64          `json:"total"`
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
}

type manifestDetailView struct {
	Manifest  manifestView   `json:"manifest"`
	Shipments []shipmentView `json:"shipments"`
}

type exceptionView struct {
	ID                string    `json:"id"`
	ShipmentID        string    `json:"shipment_id"`
	ShipmentCN        string    `json:"shipment_cn"`
	ExceptionType     string    `json:"exception_type"`
	Description       string    `json:"description"`
	Status            string    `json:"status"`
	ResolutionNotes   string    `json:"resolution_notes,omitempty"`
	NewShipmentStatus *string   `json:"new_shipment_status,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func exceptionViewFromRow(row queries.ExceptionRow) exceptionView {
	return exceptionView{
		ID:                row.ID.String(),
		ShipmentID:        row.ShipmentID.String(),
		ShipmentCN:        row.ShipmentCN,
		ExceptionType:     row.ExceptionType,
		Description:       row.Description,
		Status:            row.Status,
		ResolutionNotes:   row.ResolutionNotes,
		NewShipmentStatus: row.NewShipmentStatus,
		CreatedAt:         row.CreatedAt,
	}
}

func exceptionViewFromAggregate(record *exception.Exception) exceptionView {
	view := exceptionView{
		ID:              record.ID().String(),
		ShipmentID:      record.ShipmentID().String(),
		ExceptionType:   record.ExceptionType().String(),
		Description:     record.Description(),
		Status:          record.Status().String(),
		ResolutionNotes: record.ResolutionNotes(),
		CreatedAt:       record.CreatedAt(),
	}
	if s := record.NewShipmentStatus(); s != nil {
		str := s.String()
		view.NewShipmentStatus = &str
	}
	return view
}

type exceptionListView struct {
	Exceptions []exceptionView `json:"exceptions"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

type rtoManifestView struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	Reason         string `json:"rto_reason"`
	OriginHubID    string `json:"origin_hub_id"`
	ReturnHubID    string `json:"return_destination_hub_id"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status"`
	ShipmentsCount int    `json:"shipments_count"`
}

func rtoManifestViewFromRow(row queries.RTOManifestRow) rtoManifestView {
	return rtoManifestView{
		ID:             row.ID.String(),
		Number:         row.Number,
		Reason:         row.Reason,
		OriginHubID:    row.OriginHubID.String(),
		ReturnHubID:    row.ReturnHubID.String(),
		Notes:          row.Notes,
		Status:         row.Status,
		ShipmentsCount: row.ShipmentsCount,
	}
}

func rtoManifestViewFromAggregate(aggregate *rto.Manifest) rtoManifestView {
	return rtoManifestView{
		ID:             aggregate.ID().String(),
		Number:         aggregate.Number(),
		Reason:         aggregate.Reason().String(),
		OriginHubID:    aggregate.OriginHubID().String(),
		ReturnHubID:    aggregate.ReturnHubID().String(),
		Notes:          aggregate.Notes(),
		Status:         aggregate.Status().String(),
		ShipmentsCount: aggregate.ShipmentsCount(),
	}
}

type rtoManifestListView struct {
	Manifests []rtoManifestView `json:"rto_manifests"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

type bulkReportView struct {
	TotalRows    int      `json:"total_rows"`
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}

func bulkReportViewFromReport(report commands.BulkCreateReport) bulkReportView {
	errs := report.Errors
	if errs == nil {
		errs = []string{}
	}
	return bulkReportView{
		TotalRows:    report.TotalRows,
		SuccessCount: report.SuccessCount,
		ErrorCount:   report.ErrorCount,
		Errors:       errs,
	}
}
