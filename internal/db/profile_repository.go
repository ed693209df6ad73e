package db

import (
	"github.com/terraincognita07/phased/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) List() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.Order("created_at ASC, id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *ProfileRepository) FindByID(profileID string) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("id = ?", profileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Save(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}

// DeleteWithLogs removes the profile and every log it owns in one transaction.
// The boolean is false when no profile with that id existed.
func (repo *ProfileRepository) DeleteWithLogs(profileID string) (bool, error) {
	deleted := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.DayLog{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", profileID).Delete(&models.Profile{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
