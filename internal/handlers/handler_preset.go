package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

type presetHandler struct {
	presetService portssvc.PresetSvcFacade
}

// registerPresetRoutes registers the price list routes.
func registerPresetRoutes(rg *gin.RouterGroup, presetService portssvc.PresetSvcFacade) {
	h := &presetHandler{presetService: presetService}

	presets := rg.Group("/presets")
	{
		presets.GET("", h.listPresets)
		presets.POST("", h.createPreset)
	}
}

// listPresets godoc
// @Summary List preset services
// @Tags presets
// @Produce  json
// @Success 200 {object} dto.ListPresetsResponse
// @Security BearerAuth
// @Router /presets [get]
func (h *presetHandler) listPresets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	presets, err := h.presetService.ListPresets(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list presets")
		return
	}
	c.JSON(http.StatusOK, dto.ListPresetsResponse{Presets: presets})
}

// createPreset godoc
// @Summary Add a preset service
// @Description Admin only
// @Tags presets
// @Accept  json
// @Produce  json
// @Param   preset body dto.CreatePresetRequest true "Preset details"
// @Success 201 {object} domain.PresetService
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Security BearerAuth
// @Router /presets [post]
func (h *presetHandler) createPreset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreatePreset", err)
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	preset, err := h.presetService.CreatePreset(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to create preset")
		return
	}

	logger.Info("Preset created", slog.String("preset_id", preset.ID))
	c.JSON(http.StatusCreated, preset)
}
