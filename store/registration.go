package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/models"
)

// Registration is a profile with its list fields decoded.
type Registration struct {
	ID        uint     `json:"id"`
	Fullname  string   `json:"fullname"`
	Email     string   `json:"email"`
	DobDay    string   `json:"dob_day"`
	DobMonth  string   `json:"dob_month"`
	DobYear   string   `json:"dob_year"`
	Gender    string   `json:"gender"`
	Role      string   `json:"role"`
	Subjects  []string `json:"subjects"`
	Locations []string `json:"locations"`
}

func (r Registration) row() models.Registration {
	return models.Registration{
		Fullname:  r.Fullname,
		Email:     r.Email,
		DobDay:    r.DobDay,
		DobMonth:  r.DobMonth,
		DobYear:   r.DobYear,
		Gender:    r.Gender,
		Role:      r.Role,
		Subjects:  JoinList(r.Subjects),
		Locations: JoinList(r.Locations),
	}
}

func registrationFromRow(m models.Registration) Registration {
	return Registration{
		ID:        m.ID,
		Fullname:  m.Fullname,
		Email:     m.Email,
		DobDay:    m.DobDay,
		DobMonth:  m.DobMonth,
		DobYear:   m.DobYear,
		Gender:    m.Gender,
		Role:      m.Role,
		Subjects:  SplitList(m.Subjects),
		Locations: SplitList(m.Locations),
	}
}

type RegistrationStore struct {
	db *gorm.DB

	// schedule columns absent from an older weekly_schedule table
	scheduleOmit []string
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db, scheduleOmit: missingScheduleColumns(db)}
}

// Create inserts the registration together with the empty dashboard and
// weekly schedule for its email, in one transaction. The dashboard and
// schedule are only created when the email has none yet, so registering the
// same email twice still leaves exactly one of each.
func (s *RegistrationStore) Create(ctx context.Context, r Registration) (id uint, err error) {
	defer observe("registration", "create", time.Now(), &err)

	row := r.row()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ?", row.Email).
			FirstOrCreate(&models.Dashboard{Email: row.Email}).Error; err != nil {
			return err
		}
		return tx.Omit(s.scheduleOmit...).Where("email = ?", row.Email).
			FirstOrCreate(&models.WeeklySchedule{Email: row.Email}).Error
	})
	if err != nil {
		err = storageErr("create registration", err)
		return 0, err
	}
	return row.ID, nil
}

// FindByEmail returns the most recent registration for email.
func (s *RegistrationStore) FindByEmail(ctx context.Context, email string) (r *Registration, err error) {
	defer observe("registration", "find_by_email", time.Now(), &err)

	var row models.Registration
	err = s.db.WithContext(ctx).Where("email = ?", email).Order("id DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrNotFound
			return nil, err
		}
		err = storageErr("find registration", err)
		return nil, err
	}
	out := registrationFromRow(row)
	return &out, nil
}

// Exists reports whether any registration uses email.
func (s *RegistrationStore) Exists(ctx context.Context, email string) (ok bool, err error) {
	defer observe("registration", "exists", time.Now(), &err)

	var n int64
	if err = s.db.WithContext(ctx).Model(&models.Registration{}).Where("email = ?", email).Count(&n).Error; err != nil {
		err = storageErr("count registrations", err)
		return false, err
	}
	return n > 0, nil
}

func (s *RegistrationStore) List(ctx context.Context) (out []Registration, err error) {
	defer observe("registration", "list", time.Now(), &err)

	var rows []models.Registration
	if err = s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		err = storageErr("list registrations", err)
		return nil, err
	}
	out = make([]Registration, 0, len(rows))
	for _, row := range rows {
		out = append(out, registrationFromRow(row))
	}
	return out, nil
}
