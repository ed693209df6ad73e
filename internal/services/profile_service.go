package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/phased/internal/models"
	"github.com/terraincognita07/phased/internal/security"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	List() ([]models.Profile, error)
	FindByID(profileID string) (models.Profile, bool, error)
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
	DeleteWithLogs(profileID string) (bool, error)
}

// ProfileSummary is the listing view of a profile; it never carries security material.
type ProfileSummary struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	CycleLength        int                 `json:"cycle_length"`
	BleedingLength     int                 `json:"bleeding_length"`
	BleedingIntensity  string              `json:"bleeding_intensity"`
	PMSIntensity       string              `json:"pms_intensity"`
	HasOvulationSigns  bool                `json:"has_ovulation_signs"`
	AverageSleep       float64             `json:"average_sleep"`
	SleepQuality       string              `json:"sleep_quality"`
	StressLevel        string              `json:"stress_level"`
	TrainingPreference string              `json:"training_preference"`
	TrainingFrequency  int                 `json:"training_frequency"`
	HeatSensitive      bool                `json:"heat_sensitive"`
	Symptoms           models.SymptomFlags `json:"symptoms"`
	LastPeriodDate     time.Time           `json:"last_period_date"`
	CreatedAt          time.Time           `json:"created_at"`
	LastUpdated        time.Time           `json:"last_updated"`
}

func NewProfileSummary(profile models.Profile) ProfileSummary {
	return ProfileSummary{
		ID:                 profile.ID,
		Name:               profile.Name,
		CycleLength:        profile.CycleLength,
		BleedingLength:     profile.BleedingLength,
		BleedingIntensity:  profile.BleedingIntensity,
		PMSIntensity:       profile.PMSIntensity,
		HasOvulationSigns:  profile.HasOvulationSigns,
		AverageSleep:       profile.AverageSleep,
		SleepQuality:       profile.SleepQuality,
		StressLevel:        profile.StressLevel,
		TrainingPreference: profile.TrainingPreference,
		TrainingFrequency:  profile.TrainingFrequency,
		HeatSensitive:      profile.HeatSensitive,
		Symptoms:           profile.Symptoms,
		LastPeriodDate:     profile.LastPeriodDate,
		CreatedAt:          profile.CreatedAt,
		LastUpdated:        profile.LastUpdated,
	}
}

type ProfileService struct {
	profiles    ProfileRepository
	logs        DayLogRepository
	cipher      *security.DataCipher
	predictions *PredictionGenerator
	locks       *ProfileLocks
	location    *time.Location
	log         *zap.SugaredLogger
	now         func() time.Time
}

type ProfileServiceDeps struct {
	Profiles    ProfileRepository
	Logs        DayLogRepository
	Cipher      *security.DataCipher
	Predictions *PredictionGenerator
	Locks       *ProfileLocks
	Location    *time.Location
	Log         *zap.SugaredLogger
}

func NewProfileService(deps ProfileServiceDeps) *ProfileService {
	service := &ProfileService{
		profiles:    deps.Profiles,
		logs:        deps.Logs,
		cipher:      deps.Cipher,
		predictions: deps.Predictions,
		locks:       deps.Locks,
		location:    deps.Location,
		log:         deps.Log,
		now:         time.Now,
	}
	if service.cipher == nil {
		service.cipher = security.NewDataCipher(security.KeyModePassword)
	}
	if service.predictions == nil {
		service.predictions = NewPredictionGenerator(nil)
	}
	if service.locks == nil {
		service.locks = NewProfileLocks()
	}
	if service.location == nil {
		service.location = time.UTC
	}
	if service.log == nil {
		service.log = zap.NewNop().Sugar()
	}
	return service
}

func (service *ProfileService) Location() *time.Location {
	return service.location
}

// CreateProfile validates the questionnaire answers and stores a new profile sealed under password.
// The returned profile carries the plaintext sensitive fields next to their encrypted copy.
func (service *ProfileService) CreateProfile(input ProfileInput, password string) (models.Profile, error) {
	input = normalizeProfileInput(input)
	if err := ValidateProfileInput(input); err != nil {
		return models.Profile{}, err
	}
	if err := ValidateProfilePassword(password); err != nil {
		return models.Profile{}, err
	}

	profileID, err := security.GenerateID()
	if err != nil {
		return models.Profile{}, fmt.Errorf("generate profile id: %w", err)
	}
	passwordHash, err := security.HashPassword(password, "")
	if err != nil {
		return models.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	now := service.now().UTC()
	profile := models.Profile{
		ID:           profileID,
		PasswordHash: passwordHash.String(),
		CreatedAt:    now,
		LastUpdated:  now,
	}
	input.applyTo(&profile)
	profile.LastPeriodDate = DateAtLocation(profile.LastPeriodDate, service.location)

	encrypted, err := service.cipher.EncryptData(profile.SensitiveData(), password)
	if err != nil {
		return models.Profile{}, fmt.Errorf("encrypt profile data: %w", err)
	}
	profile.EncryptedData = encrypted

	if err := service.profiles.Create(&profile); err != nil {
		service.log.Errorw("create profile failed", "error", err)
		return models.Profile{}, fmt.Errorf("%w: create profile: %w", ErrStorage, err)
	}
	return profile, nil
}

// ListProfiles degrades to an empty listing when storage cannot be read.
func (service *ProfileService) ListProfiles() []ProfileSummary {
	profiles, err := service.profiles.List()
	if err != nil {
		service.log.Errorw("list profiles failed, returning empty listing", "error", err)
		return []ProfileSummary{}
	}

	summaries := make([]ProfileSummary, 0, len(profiles))
	for _, profile := range profiles {
		summaries = append(summaries, NewProfileSummary(profile))
	}
	return summaries
}

func (service *ProfileService) GetProfile(profileID string) (models.Profile, bool, error) {
	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return models.Profile{}, false, fmt.Errorf("%w: load profile: %w", ErrStorage, err)
	}
	return profile, found, nil
}

// UnlockProfile verifies password and merges the decrypted sensitive fields over the stored record.
// Unknown ids and wrong passwords are indistinguishable to the caller.
func (service *ProfileService) UnlockProfile(profileID string, password string) (models.Profile, error) {
	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: load profile: %w", ErrStorage, err)
	}
	if !found {
		return models.Profile{}, ErrUnlockDenied
	}
	if !security.VerifyStoredPassword(password, profile.PasswordHash) {
		return models.Profile{}, ErrUnlockDenied
	}

	if profile.EncryptedData == "" {
		return profile, nil
	}

	var sensitive models.SensitiveProfileData
	if err := service.cipher.DecryptData(profile.EncryptedData, password, &sensitive); err != nil {
		service.log.Errorw("profile data could not be decrypted", "profile_id", profileID, "error", err)
		return models.Profile{}, fmt.Errorf("%w: %w", ErrUnlockDenied, err)
	}
	return profile.WithSensitiveData(sensitive), nil
}

// UpdateProfile merges update into the stored profile. Changing the sensitive subset requires
// the profile password so the encrypted copy can be resealed. The boolean is false for unknown ids.
func (service *ProfileService) UpdateProfile(profileID string, update ProfileUpdate, password string) (bool, error) {
	unlock := service.locks.Lock(profileID)
	defer unlock()

	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return false, fmt.Errorf("%w: load profile: %w", ErrStorage, err)
	}
	if !found {
		return false, nil
	}

	merged := normalizeProfileInput(update.mergeInto(profileInputFromModel(profile)))
	if err := ValidateProfileInput(merged); err != nil {
		return false, err
	}

	previous := profile.SensitiveData()
	merged.applyTo(&profile)
	profile.LastPeriodDate = DateAtLocation(profile.LastPeriodDate, service.location)

	if profile.SensitiveData() != previous {
		if password == "" {
			return false, ErrPasswordRequired
		}
		if !security.VerifyStoredPassword(password, profile.PasswordHash) {
			return false, ErrUnlockDenied
		}
		encrypted, err := service.cipher.EncryptData(profile.SensitiveData(), password)
		if err != nil {
			return false, fmt.Errorf("encrypt profile data: %w", err)
		}
		profile.EncryptedData = encrypted
	}

	profile.LastUpdated = service.now().UTC()
	if err := service.profiles.Save(&profile); err != nil {
		service.log.Errorw("update profile failed", "profile_id", profileID, "error", err)
		return false, fmt.Errorf("%w: save profile: %w", ErrStorage, err)
	}
	return true, nil
}

func (service *ProfileService) UpdateLastPeriodDate(profileID string, lastPeriodDate time.Time) (bool, error) {
	return service.UpdateProfile(profileID, ProfileUpdate{LastPeriodDate: &lastPeriodDate}, "")
}

// DeleteProfile removes the profile and all of its logs. The boolean is false for unknown ids.
func (service *ProfileService) DeleteProfile(profileID string) (bool, error) {
	unlock := service.locks.Lock(profileID)
	defer unlock()

	deleted, err := service.profiles.DeleteWithLogs(profileID)
	if err != nil {
		service.log.Errorw("delete profile failed", "profile_id", profileID, "error", err)
		return false, fmt.Errorf("%w: delete profile: %w", ErrStorage, err)
	}
	return deleted, nil
}

