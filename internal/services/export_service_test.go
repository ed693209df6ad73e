package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExportDataIncludesProfileAndLogs(t *testing.T) {
	t.Parallel()

	store := newMemoryStoreStub()
	profiles := newTestProfileService(store)
	logs := NewDayLogService(store, store, nil, time.UTC, nil)
	profile, err := profiles.CreateProfile(validProfileInput(), testPassword)
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	for offset := 0; offset < 2; offset++ {
		if _, err := logs.SaveLog(profile.ID, validDayLog(profile.LastPeriodDate.AddDate(0, 0, offset))); err != nil {
			t.Fatalf("save log: %v", err)
		}
	}

	service := NewExportService(store, store)
	exportedAt := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return exportedAt }

	payload, err := service.ExportData(profile.ID)
	if err != nil {
		t.Fatalf("export data: %v", err)
	}
	if !strings.HasPrefix(string(payload), "{\n  \"profile\": {") {
		t.Fatalf("expected two-space indented document, got %q", string(payload)[:20])
	}

	var decoded struct {
		Profile    map[string]any   `json:"profile"`
		Logs       []map[string]any `json:"logs"`
		ExportedAt time.Time        `json:"exported_at"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if decoded.Profile["id"] != profile.ID {
		t.Fatalf("expected profile id %q, got %v", profile.ID, decoded.Profile["id"])
	}
	if decoded.Profile["encrypted_data"] == "" || decoded.Profile["encrypted_data"] == nil {
		t.Fatal("expected raw record with encrypted data in export")
	}
	if len(decoded.Logs) != 2 {
		t.Fatalf("expected two logs, got %d", len(decoded.Logs))
	}
	if !decoded.ExportedAt.Equal(exportedAt) {
		t.Fatalf("expected exported_at %s, got %s", exportedAt, decoded.ExportedAt)
	}
}

func TestExportDataEmptyLogsAndErrors(t *testing.T) {
	t.Parallel()

	store := newMemoryStoreStub()
	profiles := newTestProfileService(store)
	profile, err := profiles.CreateProfile(validProfileInput(), testPassword)
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	service := NewExportService(store, store)

	payload, err := service.ExportData(profile.ID)
	if err != nil {
		t.Fatalf("export data: %v", err)
	}
	if !strings.Contains(string(payload), "\"logs\": []") {
		t.Fatalf("expected empty logs array, got %s", payload)
	}

	if _, err := service.ExportData("missing"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	store.logsErr = errors.New("read failed")
	if _, err := service.ExportData(profile.ID); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
