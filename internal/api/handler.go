package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/phased/internal/services"
	"github.com/terraincognita07/phased/internal/session"
	"go.uber.org/zap"
)

const (
	contextProfileIDKey = "profile_id"
	sessionTokenMaxAge  = 12 * time.Hour
	dateParamLayout     = "2006-01-02"
)

type Handler struct {
	profiles      *services.ProfileService
	logs          *services.DayLogService
	exports       *services.ExportService
	sessions      *session.Manager
	secretKey     []byte
	location      *time.Location
	log           *zap.SugaredLogger
	unlockLimiter *attemptLimiter
	now           func() time.Time
}

type HandlerDeps struct {
	Profiles  *services.ProfileService
	Logs      *services.DayLogService
	Exports   *services.ExportService
	Sessions  *session.Manager
	SecretKey string
	Location  *time.Location
	Log       *zap.SugaredLogger
}

func NewHandler(deps HandlerDeps) (*Handler, error) {
	if deps.Profiles == nil || deps.Logs == nil || deps.Exports == nil {
		return nil, errors.New("profile, log and export services are required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	if strings.TrimSpace(deps.SecretKey) == "" {
		return nil, errors.New("secret key is required")
	}

	location := deps.Location
	if location == nil {
		location = deps.Profiles.Location()
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Handler{
		profiles:      deps.Profiles,
		logs:          deps.Logs,
		exports:       deps.Exports,
		sessions:      deps.Sessions,
		secretKey:     []byte(deps.SecretKey),
		location:      location,
		log:           log,
		unlockLimiter: newAttemptLimiter(unlockAttemptsLimit, unlockAttemptsWindow),
		now:           time.Now,
	}, nil
}
