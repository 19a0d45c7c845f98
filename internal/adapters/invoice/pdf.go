// Package invoice renders order invoices as A5 PDF documents.
package invoice

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	"github.com/SscSPs/printshop_pos/internal/utils"
	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 5.0
	qrSize     = 32.0
)

// column widths on a 128mm printable A5 width
var colWidths = [5]float64{10, 56, 14, 22, 26}

// Renderer implements gateways.InvoiceRenderer with fpdf.
type Renderer struct {
	location *time.Location
	now      func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocation sets the zone invoice dates are printed in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithClock fixes the document creation date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{location: time.Local, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ gateways.InvoiceRenderer = (*Renderer)(nil)

// Render lays out the invoice and returns the PDF bytes.
func (r *Renderer) Render(ctx context.Context, inv domain.Invoice) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.SetCreationDate(r.now())
	pdf.SetTitle(Fold("Hóa đơn "+inv.Order.ID), false)
	pdf.AddPage()

	r.header(pdf, inv)
	r.customer(pdf, inv.Order)
	r.items(pdf, inv.Order)
	r.totals(pdf, inv.Order)
	r.payment(pdf, inv)
	r.footer(pdf, inv)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) header(pdf *fpdf.Fpdf, inv domain.Invoice) {
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 7, Fold(inv.Store.Name), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 8)
	if inv.Store.Address != "" {
		pdf.CellFormat(0, 4, Fold("Địa chỉ: "+inv.Store.Address), "", 1, "C", false, 0, "")
	}
	if inv.Store.Hotline != "" {
		pdf.CellFormat(0, 4, "Hotline: "+inv.Store.Hotline, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "B", 12)
	title := "HÓA ĐƠN BÁN HÀNG"
	if inv.Order.HasVAT {
		title = "HÓA ĐƠN GIÁ TRỊ GIA TĂNG"
	}
	pdf.CellFormat(0, 7, Fold(title), "", 1, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	created := inv.Order.CreatedAt.In(r.location).Format("02/01/2006 15:04")
	pdf.CellFormat(64, lineHeight, Fold("Mã đơn: ")+inv.Order.ID, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, Fold("Ngày: ")+created, "", 1, "R", false, 0, "")
	pdf.Ln(1)
}

func (r *Renderer) customer(pdf *fpdf.Fpdf, o domain.Order) {
	c := o.Customer
	pdf.SetFont(fontFamily, "", 9)
	line := func(label, value string) {
		if value == "" {
			return
		}
		pdf.CellFormat(0, lineHeight, Fold(label+": "+value), "", 1, "L", false, 0, "")
	}
	line("Khách hàng", c.Name)
	line("Số điện thoại", c.Phone)
	line("Địa chỉ", c.Address)
	line("Zalo/Facebook", c.SocialLink)
	if o.HasVAT {
		line("Tên đơn vị", c.CompanyName)
		line("Mã số thuế", c.TaxCode)
		line("Địa chỉ đơn vị", c.CompanyAddress)
		line("Người mua hàng", c.BuyerName)
	}
	pdf.Ln(2)
}

func (r *Renderer) items(pdf *fpdf.Fpdf, o domain.Order) {
	headers := [5]string{"STT", "Dịch vụ", "SL", "Đơn giá", "Thành tiền"}
	aligns := [5]string{"C", "L", "C", "R", "R"}

	pdf.SetFont(fontFamily, "B", 8)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, Fold(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 8)
	for _, it := range o.Items {
		service := Fold(it.Service)
		if it.Note != "" {
			service += " (" + Fold(it.Note) + ")"
		}
		cells := [5]string{
			fmt.Sprintf("%d", it.Position),
			truncate(pdf, service, colWidths[1]-2),
			fmt.Sprintf("%d", it.Quantity),
			utils.FormatThousands(it.UnitPrice),
			utils.FormatThousands(it.LineTotal()),
		}
		for i, v := range cells {
			pdf.CellFormat(colWidths[i], 6, v, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

func (r *Renderer) totals(pdf *fpdf.Fpdf, o domain.Order) {
	labelW := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3]
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, 9)
		pdf.CellFormat(labelW, lineHeight, Fold(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], lineHeight, Fold(value), "", 1, "R", false, 0, "")
	}
	row("Tạm tính:", utils.FormatVND(o.SubTotal), false)
	if o.HasVAT {
		row("VAT (8%):", utils.FormatVND(o.VAT), false)
	}
	row("TỔNG CỘNG:", utils.FormatVND(o.Total), true)
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 8)
	pdf.CellFormat(0, 4, Fold("Thanh toán: "+o.PaymentStatus.Label()+"  |  Công việc: "+o.WorkStatus.Label()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, Fold("Hình thức: "+o.PaymentMethod.Label()), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (r *Renderer) payment(pdf *fpdf.Fpdf, inv domain.Invoice) {
	if inv.PaymentQRURL == "" {
		return
	}
	pdf.SetFont(fontFamily, "B", 9)
	pdf.CellFormat(0, lineHeight, Fold("Quét mã để chuyển khoản"), "", 1, "C", false, 0, "")

	if len(inv.PaymentQR) > 0 {
		name := "qr-" + inv.Order.ID
		opts := fpdf.ImageOptions{ImageType: imageType(inv.PaymentQR), ReadDpi: false}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(inv.PaymentQR))
		if pdf.Ok() {
			pageW, _ := pdf.GetPageSize()
			pdf.ImageOptions(name, (pageW-qrSize)/2, pdf.GetY(), qrSize, qrSize, true, opts, 0, "")
			return
		}
		// An unreadable image falls back to printing the link.
		pdf.ClearError()
	}
	pdf.SetFont(fontFamily, "", 6)
	pdf.MultiCell(0, 3, inv.PaymentQRURL, "", "C", false)
}

func (r *Renderer) footer(pdf *fpdf.Fpdf, inv domain.Invoice) {
	pdf.Ln(3)
	pdf.SetFont(fontFamily, "", 8)
	if inv.EmployeeName != "" {
		pdf.CellFormat(0, 4, Fold("Nhân viên: "+inv.EmployeeName), "", 1, "R", false, 0, "")
	}
	pdf.SetFont(fontFamily, "I", 8)
	pdf.CellFormat(0, 5, Fold("Cảm ơn quý khách và hẹn gặp lại!"), "", 1, "C", false, 0, "")
}

// truncate shortens s with an ellipsis so it fits width.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func imageType(img []byte) string {
	switch {
	case bytes.HasPrefix(img, []byte("\x89PNG")):
		return "PNG"
	case bytes.HasPrefix(img, []byte("\xff\xd8")):
		return "JPG"
	case bytes.HasPrefix(img, []byte("GIF8")):
		return "GIF"
	default:
		return "PNG"
	}
}
