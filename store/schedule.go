package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/models"
)

type ScheduleStore struct {
	db   *gorm.DB
	omit []string
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db, omit: missingScheduleColumns(db)}
}

// missingScheduleColumns lists the optional weekly_schedule columns the
// table lacks. Older site.db files have no month or week.
func missingScheduleColumns(db *gorm.DB) []string {
	var missing []string
	for _, col := range []string{"month", "week"} {
		if !db.Migrator().HasColumn(&models.WeeklySchedule{}, col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Get returns the weekly schedule for email, empty when there is none.
func (s *ScheduleStore) Get(ctx context.Context, email string) (d models.ScheduleDays, err error) {
	defer observe("weekly_schedule", "get", time.Now(), &err)

	var row models.WeeklySchedule
	if err = s.db.WithContext(ctx).Omit(s.omit...).Where("email = ?", email).Order("id ASC").Limit(1).Find(&row).Error; err != nil {
		err = storageErr("get weekly schedule", err)
		return models.ScheduleDays{}, err
	}
	return row.ScheduleDays, nil
}

// Update replaces the whole schedule for email. Zero rows affected means the
// email has no schedule row.
func (s *ScheduleStore) Update(ctx context.Context, email string, d models.ScheduleDays) (n int64, err error) {
	defer observe("weekly_schedule", "update", time.Now(), &err)

	cols := map[string]any{
		"monday":    d.Monday,
		"tuesday":   d.Tuesday,
		"wednesday": d.Wednesday,
		"thursday":  d.Thursday,
		"friday":    d.Friday,
		"saturday":  d.Saturday,
		"sunday":    d.Sunday,
		"month":     d.Month,
		"week":      d.Week,
	}
	for _, c := range s.omit {
		delete(cols, c)
	}

	res := s.db.WithContext(ctx).
		Model(&models.WeeklySchedule{}).
		Where("email = ?", email).
		Updates(cols)
	if res.Error != nil {
		err = storageErr("update weekly schedule", res.Error)
		return 0, err
	}
	return res.RowsAffected, nil
}
