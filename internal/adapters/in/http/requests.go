package http

// Request DTOs bound from JSON bodies. Struct tags carry the boundary
// validation (digit counts, weight cap); domain constructors re-check the
// same rules so the tags are a fast first gate, not the source of truth.

type partyRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,len=10,numeric"`
	Address string `json:"address" validate:"required"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
}

type dimensionsRequest struct {
	LengthCm float64 `json:"length_cm" validate:"gte=0"`
	WidthCm  float64 `json:"width_cm" validate:"gte=0"`
	HeightCm float64 `json:"height_cm" validate:"gte=0"`
}

type createShipmentRequest struct {
	Sender        partyRequest      `json:"sender" validate:"required"`
	Receiver      partyRequest      `json:"receiver" validate:"required"`
	WeightKg      float64           `json:"weight_kg" validate:"required,gt=0,lte=30"`
	Dimensions    dimensionsRequest `json:"dimensions"`
	Pieces        int               `json:"pieces" validate:"required,gte=1"`
	DeclaredValue float64           `json:"declared_value" validate:"gte=0"`
	ServiceType   string            `json:"service_type" validate:"required"`
	Source        string            `json:"source" validate:"omitempty"`
	TotalCharge   float64           `json:"total_charge" validate:"gte=0"`
}

type bulkShipmentRowRequest struct {
	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone"`
	SenderAddress string `json:"sender_address"`
	SenderPincode string `json:"sender_pincode"`
	SenderCity    string `json:"sender_city"`
	SenderState   string `json:"sender_state"`

	ReceiverName    string `json:"receiver_name"`
	ReceiverPhone   string `json:"receiver_phone"`
	ReceiverAddress string `json:"receiver_address"`
	ReceiverPincode string `json:"receiver_pincode"`
	ReceiverCity    string `json:"receiver_city"`
	ReceiverState   string `json:"receiver_state"`

	WeightKg      float64 `json:"weight_kg"`
	LengthCm      float64 `json:"length_cm"`
	WidthCm       float64 `json:"width_cm"`
	HeightCm      float64 `json:"height_cm"`
	Pieces        int     `json:"pieces"`
	DeclaredValue float64 `json:"declared_value"`
	ServiceType   string  `json:"service_type"`
	TotalCharge   float64 `json:"total_charge"`
}

type bulkUploadRequest struct {
	Rows []bulkShipmentRowRequest `json:"rows" validate:"required,min=1"`
}

type updateShipmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type raiseExceptionRequest struct {
	ExceptionType string `json:"exception_type" validate:"required"`
	Description   string `json:"description" validate:"required"`
}

type resolveExceptionRequest struct {
	Verdict         string  `json:"verdict" validate:"required,oneof=RESOLVED ESCALATED"`
	ResolutionNotes string  `json:"resolution_notes" validate:"required"`
	NewStatus       *string `json:"new_status"`
}

type createManifestRequest struct {
	CourierCompanyID string   `json:"courier_company_id" validate:"required,uuid"`
	OriginHubID      string   `json:"origin_hub_id" validate:"required,uuid"`
	ShipmentIDs      []string `json:"shipment_ids" validate:"required,min=1,dive,uuid"`
}

type remanifestRequest struct {
	ShipmentIDs []string `json:"shipment_ids" validate:"required,min=1,dive,uuid"`
	Reason      string   `json:"reason" validate:"required"`
}

type inScanRequest struct {
	ShipmentCN string `json:"shipment_cn" validate:"required"`
	HubID      string `json:"hub_id" validate:"required,uuid"`
	DeviceID   string `json:"device_id"`
}

type outScanRequest struct {
	ShipmentCN string  `json:"shipment_cn" validate:"required"`
	HubID      string  `json:"hub_id" validate:"required,uuid"`
	DeviceID   string  `json:"device_id"`
	NextHubID  *string `json:"next_hub_id" validate:"omitempty,uuid"`
	RouteCode  string  `json:"route_code"`
	VehicleID  string  `json:"vehicle_id"`
}

type initiateRTORequest struct {
	ShipmentIDs []string `json:"shipment_ids" validate:"required,min=1,dive,uuid"`
	Reason      string   `json:"rto_reason" validate:"required"`
	OriginHubID string   `json:"origin_hub_id" validate:"required,uuid"`
	ReturnHubID string   `json:"return_destination_hub_id" validate:"required,uuid"`
	Notes       string   `json:"notes"`
}
