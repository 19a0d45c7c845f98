package dto

// ExportResponse describes a finished invoice export.
type ExportResponse struct {
	OrderID  string `json:"orderId"`
	FileName string `json:"fileName"`
	Location string `json:"location"`
	Bytes    int    `json:"bytes"`
}

// ScheduleExportResponse confirms a scheduled export.
type ScheduleExportResponse struct {
	OrderID string `json:"orderId"`
	DelayMS int64  `json:"delayMs"`
}
