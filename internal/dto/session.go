package dto

import (
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// LoginRequest identifies the employee starting a session.
type LoginRequest struct {
	EmployeeID string      `json:"employeeId" validate:"required"`
	Name       string      `json:"name" validate:"required"`
	Role       domain.Role `json:"role" validate:"required,oneof=admin staff"`
	PIN        string      `json:"pin"` // Required for admin
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Session   domain.Session `json:"session"`
}
