package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/utils/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type presetService struct {
	BaseService
	presetRepo portsrepo.PresetRepositoryFacade
	validate   *validator.Validate
}

func NewPresetService(repo portsrepo.PresetRepositoryFacade) portssvc.PresetSvcFacade {
	return &presetService{
		presetRepo: repo,
		validate:   validation.New(),
	}
}

var _ portssvc.PresetSvcFacade = (*presetService)(nil)

func (s *presetService) ListPresets(ctx context.Context) ([]domain.PresetService, error) {
	presets, err := s.presetRepo.ListPresets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list presets")
		return nil, err
	}
	return presets, nil
}

func (s *presetService) CreatePreset(ctx context.Context, req dto.CreatePresetRequest, actor domain.Actor) (*domain.PresetService, error) {
	if err := s.AuthorizeAdmin(ctx, actor); err != nil {
		return nil, err
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if err := validation.ToAppError(s.validate.Struct(req)); err != nil {
		return nil, err
	}

	preset := domain.PresetService{
		ID:           "preset-" + uuid.NewString(),
		Name:         req.Name,
		DefaultPrice: req.DefaultPrice,
		Category:     req.Category,
	}
	if err := s.presetRepo.AppendPreset(ctx, preset); err != nil {
		s.LogError(ctx, err, "Failed to save preset", slog.String("name", preset.Name))
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}
	s.LogInfo(ctx, "Preset added", slog.String("preset_id", preset.ID), slog.String("name", preset.Name))
	return &preset, nil
}
