package domain

// StoreInfo is the shop header printed on invoices.
type StoreInfo struct {
	Name    string
	Address string
	Hotline string
}

// BankAccount is the beneficiary of transfer payments.
type BankAccount struct {
	BankID      string
	AccountNo   string
	AccountName string
	Template    string
}

// Invoice is the render-ready view of one order.
type Invoice struct {
	Store        StoreInfo
	Order        Order
	EmployeeName string
	PaymentQRURL string // Empty for cash orders
	PaymentQR    []byte // PNG bytes when the QR image could be fetched
}

// InvoiceFileName returns the export file name for an order.
func InvoiceFileName(orderID string) string {
	return "HoaDon_NhanBan_" + orderID + ".pdf"
}

// ExportResult describes a written invoice file.
type ExportResult struct {
	OrderID  string `json:"orderId"`
	FileName string `json:"fileName"`
	Location string `json:"location"`
	Size     int    `json:"size"`
}
