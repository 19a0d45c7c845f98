package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

type assistantHandler struct {
	assistantService portssvc.AssistantSvc
}

func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvc) {
	h := &assistantHandler{assistantService: assistantService}
	rg.POST("/assistant/parse-order", h.parseOrder)
}

// parseOrder godoc
// @Summary Suggest order lines from free text
// @Description Always answers 200; the item list is empty when nothing could be understood
// @Tags assistant
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseOrderRequest true "Order text"
// @Success 200 {object} dto.ParseOrderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /assistant/parse-order [post]
func (h *assistantHandler) parseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "ParseOrder", err)
		return
	}

	items := h.assistantService.ParseItems(c.Request.Context(), req.Text)
	logger.Info("Parsed order text", slog.Int("item_count", len(items)))
	c.JSON(http.StatusOK, dto.ParseOrderResponse{Items: items})
}
