package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/models"
)

type DashboardStore struct {
	db *gorm.DB
}

func NewDashboardStore(db *gorm.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

// Get returns the counters for email. An email without a dashboard row gets
// all-empty counters, not an error.
func (s *DashboardStore) Get(ctx context.Context, email string) (c models.DashboardCounters, err error) {
	defer observe("dashboard", "get", time.Now(), &err)

	var row models.Dashboard
	if err = s.db.WithContext(ctx).Where("email = ?", email).Order("id ASC").Limit(1).Find(&row).Error; err != nil {
		err = storageErr("get dashboard", err)
		return models.DashboardCounters{}, err
	}
	return row.DashboardCounters, nil
}

// Update overwrites all eight counters for email. Callers must supply every
// field; there is no partial update. Zero rows affected means no dashboard
// exists for email, which is not an error here.
func (s *DashboardStore) Update(ctx context.Context, email string, c models.DashboardCounters) (n int64, err error) {
	defer observe("dashboard", "update", time.Now(), &err)

	res := s.db.WithContext(ctx).
		Model(&models.Dashboard{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"homework_assigned":   c.HomeworkAssigned,
			"homework_submitted":  c.HomeworkSubmitted,
			"attendance_students": c.AttendanceStudents,
			"attendance_tutor":    c.AttendanceTutor,
			"registered_tutors":   c.RegisteredTutors,
			"registered_students": c.RegisteredStudents,
			"dropout_tutors":      c.DropoutTutors,
			"dropout_students":    c.DropoutStudents,
		})
	if res.Error != nil {
		err = storageErr("update dashboard", res.Error)
		return 0, err
	}
	return res.RowsAffected, nil
}
