package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders and their invoices.
type orderHandler struct {
	orderService  portssvc.OrderSvcFacade
	exportService portssvc.ExportSvcFacade
	autoExport    bool
}

func newOrderHandler(orderSvc portssvc.OrderSvcFacade, exportSvc portssvc.ExportSvcFacade, autoExport bool) *orderHandler {
	return &orderHandler{
		orderService:  orderSvc,
		exportService: exportSvc,
		autoExport:    autoExport,
	}
}

// registerOrderRoutes registers routes related to orders.
// With autoExport set, every created order schedules its invoice export.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, exportService portssvc.ExportSvcFacade, autoExport bool) {
	h := newOrderHandler(orderService, exportService, autoExport)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PATCH("/:id/payment-status", h.updatePaymentStatus)
		orders.PATCH("/:id/work-status", h.updateWorkStatus)
		orders.PATCH("/:id/payment-method", h.updatePaymentMethod)
		orders.GET("/:id/payment-qr", h.paymentQR)
		orders.POST("/:id/export", h.exportInvoice)
		orders.POST("/:id/export/schedule", h.scheduleExport)
		orders.DELETE("/:id/export/schedule", h.cancelScheduledExport)
	}
}

// createOrder godoc
// @Summary Create a new order
// @Description Validates the order, assigns its id and totals, and stores it
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreateOrder", err)
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create order", slog.Int("item_count", len(req.Items)), slog.Bool("has_vat", req.HasVAT))

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to create order")
		return
	}

	logger = logger.With(slog.String("order_id", order.ID))
	logger.Info("Order created successfully", slog.String("total", order.Total.String()))

	if h.autoExport && h.exportService != nil {
		if _, err := h.exportService.ScheduleExport(c.Request.Context(), order.ID, actor); err != nil {
			logger.Warn("Failed to schedule invoice export", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Description Lists the caller's orders (every order for admins), most recent first
// @Tags orders
// @Produce  json
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to list orders")
		return
	}

	logger.Debug("Listed orders", slog.Int("count", len(orders)))
	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Order belongs to another employee"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updatePaymentStatus godoc
// @Summary Change the payment status of an order
// @Description An unknown id is not an error: the response reports applied=false
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   status body dto.UpdatePaymentStatusRequest true "New payment status"
// @Success 200 {object} dto.StatusUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/payment-status [patch]
func (h *orderHandler) updatePaymentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "UpdatePaymentStatus", err)
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	order, applied, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus, actor)
	h.respondStatusUpdate(c, logger, order, applied, err)
}

// updateWorkStatus godoc
// @Summary Change the work status of an order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   status body dto.UpdateWorkStatusRequest true "New work status"
// @Success 200 {object} dto.StatusUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/work-status [patch]
func (h *orderHandler) updateWorkStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	var req dto.UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "UpdateWorkStatus", err)
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	order, applied, err := h.orderService.UpdateWorkStatus(c.Request.Context(), c.Param("id"), req.WorkStatus, actor)
	h.respondStatusUpdate(c, logger, order, applied, err)
}

// updatePaymentMethod godoc
// @Summary Change the payment method of an order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   method body dto.UpdatePaymentMethodRequest true "New payment method"
// @Success 200 {object} dto.StatusUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/payment-method [patch]
func (h *orderHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "UpdatePaymentMethod", err)
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	order, applied, err := h.orderService.UpdatePaymentMethod(c.Request.Context(), c.Param("id"), req.PaymentMethod, actor)
	h.respondStatusUpdate(c, logger, order, applied, err)
}

func (h *orderHandler) respondStatusUpdate(c *gin.Context, logger *slog.Logger, order *domain.Order, applied bool, err error) {
	if err != nil {
		respondError(c, logger, err, "Failed to update order")
		return
	}
	resp := dto.StatusUpdateResponse{Applied: applied}
	if applied && order != nil {
		o := dto.ToOrderResponse(order)
		resp.Order = &o
		logger.Info("Order updated")
	} else {
		logger.Info("No order matched the update")
	}
	c.JSON(http.StatusOK, resp)
}

// paymentQR godoc
// @Summary Payment QR link
// @Description Returns the bank-transfer QR image URL for the order total. The URL is empty when no bank account is configured.
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.PaymentQRResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/payment-qr [get]
func (h *orderHandler) paymentQR(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	url, order, err := h.exportService.PaymentQRURL(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to build payment QR")
		return
	}
	c.JSON(http.StatusOK, dto.PaymentQRResponse{OrderID: order.ID, Amount: order.Total, URL: url})
}

// exportInvoice godoc
// @Summary Export the invoice PDF
// @Description Renders the invoice and writes it to the configured file store
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.ExportResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Another export is running"
// @Failure 502 {object} ErrorResponse "Renderer or file store failed"
// @Security BearerAuth
// @Router /orders/{id}/export [post]
func (h *orderHandler) exportInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	result, err := h.exportService.ExportInvoice(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to export invoice")
		return
	}

	logger.Info("Invoice exported", slog.String("location", result.Location))
	c.JSON(http.StatusOK, dto.ExportResponse{
		OrderID:  result.OrderID,
		FileName: result.FileName,
		Location: result.Location,
		Bytes:    result.Size,
	})
}

// scheduleExport godoc
// @Summary Schedule an invoice export
// @Description Exports the invoice once after a short delay, replacing any pending schedule for the order
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 202 {object} dto.ScheduleExportResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/export/schedule [post]
func (h *orderHandler) scheduleExport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	delay, err := h.exportService.ScheduleExport(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to schedule export")
		return
	}
	c.JSON(http.StatusAccepted, dto.ScheduleExportResponse{OrderID: c.Param("id"), DelayMS: delay.Milliseconds()})
}

// cancelScheduledExport godoc
// @Summary Cancel a scheduled export
// @Tags orders
// @Param   id path string true "Order ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Nothing was scheduled"
// @Security BearerAuth
// @Router /orders/{id}/export/schedule [delete]
func (h *orderHandler) cancelScheduledExport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("order_id", c.Param("id")))
	if _, ok := requireActor(c, logger); !ok {
		return
	}

	if !h.exportService.CancelScheduledExport(c.Param("id")) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No export scheduled"})
		return
	}
	logger.Info("Scheduled export cancelled")
	c.Status(http.StatusNoContent)
}
