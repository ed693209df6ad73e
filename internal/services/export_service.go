package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/terraincognita07/phased/internal/models"
)

type ExportProfileReader interface {
	FindByID(profileID string) (models.Profile, bool, error)
}

type ExportLogReader interface {
	ListByProfile(profileID string) ([]models.DayLog, error)
}

type ExportDocument struct {
	Profile    models.Profile  `json:"profile"`
	Logs       []models.DayLog `json:"logs"`
	ExportedAt time.Time       `json:"exported_at"`
}

type ExportService struct {
	profiles ExportProfileReader
	logs     ExportLogReader
	now      func() time.Time
}

func NewExportService(profiles ExportProfileReader, logs ExportLogReader) *ExportService {
	return &ExportService{profiles: profiles, logs: logs, now: time.Now}
}

func (service *ExportService) BuildDocument(profileID string) (ExportDocument, error) {
	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return ExportDocument{}, fmt.Errorf("%w: load profile: %w", ErrStorage, err)
	}
	if !found {
		return ExportDocument{}, ErrProfileNotFound
	}

	logs, err := service.logs.ListByProfile(profileID)
	if err != nil {
		return ExportDocument{}, fmt.Errorf("%w: load logs: %w", ErrStorage, err)
	}
	if logs == nil {
		logs = []models.DayLog{}
	}

	return ExportDocument{
		Profile:    profile,
		Logs:       logs,
		ExportedAt: service.now().UTC(),
	}, nil
}

// ExportData renders the profile, its logs and the export time as indented JSON.
func (service *ExportService) ExportData(profileID string) ([]byte, error) {
	document, err := service.BuildDocument(profileID)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return payload, nil
}
