package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles *ProfileRepository
	DayLogs  *DayLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles: NewProfileRepository(database),
		DayLogs:  NewDayLogRepository(database),
	}
}
