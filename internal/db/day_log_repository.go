package db

import (
	"time"

	"github.com/terraincognita07/phased/internal/models"
	"gorm.io/gorm"
)

type DayLogRepository struct {
	database *gorm.DB
}

func NewDayLogRepository(database *gorm.DB) *DayLogRepository {
	return &DayLogRepository{database: database}
}

func (repo *DayLogRepository) ListByProfile(profileID string) ([]models.DayLog, error) {
	logs := make([]models.DayLog, 0)
	if err := repo.database.Where("profile_id = ?", profileID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DayLogRepository) ListByProfileRange(profileID string, fromStart *time.Time, toEnd *time.Time) ([]models.DayLog, error) {
	query := repo.database.Model(&models.DayLog{}).Where("profile_id = ?", profileID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.DayLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ReplaceDay deletes whatever the profile logged within [dayStart, dayEnd) and stores entry in its place.
func (repo *DayLogRepository) ReplaceDay(entry *models.DayLog, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("profile_id = ? AND date >= ? AND date < ?", entry.ProfileID, dayStart, dayEnd).
			Delete(&models.DayLog{}).Error; err != nil {
			return err
		}
		entry.ID = 0
		return tx.Create(entry).Error
	})
}
