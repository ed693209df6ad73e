package api

import (
	"github.com/terraincognita07/phased/internal/services"
)

// createProfileRequest accepts last_period_date as YYYY-MM-DD instead of a timestamp.
type createProfileRequest struct {
	services.ProfileInput
	LastPeriodDate string `json:"last_period_date"`
	Password       string `json:"password"`
}

type updateProfileRequest struct {
	services.ProfileUpdate
	LastPeriodDate *string `json:"last_period_date,omitempty"`
	Password       string  `json:"password"`
}

type unlockRequest struct {
	Password string `json:"password"`
}

type unlockResponse struct {
	Token     string                  `json:"token"`
	ExpiresAt string                  `json:"expires_at"`
	Profile   services.ProfileSummary `json:"profile"`
}
