package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user unconditionally. Duplicate usernames are accepted;
// callers that care check FindByUsername first.
func (s *UserStore) Create(ctx context.Context, username, password string) (id uint, err error) {
	defer observe("user", "create", time.Now(), &err)

	u := models.User{Username: username, Password: password}
	if err = s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return 0, storageErr("create user", err)
	}
	return u.ID, nil
}

// FindByCredentials returns the first user, in insertion order, whose
// username and password both match exactly.
func (s *UserStore) FindByCredentials(ctx context.Context, username, password string) (u *models.User, err error) {
	defer observe("user", "find_by_credentials", time.Now(), &err)

	return s.first("find user by credentials",
		s.db.WithContext(ctx).Where("username = ? AND password = ?", username, password))
}

// FindByUsername returns the first user with the given username.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (u *models.User, err error) {
	defer observe("user", "find_by_username", time.Now(), &err)

	return s.first("find user by username",
		s.db.WithContext(ctx).Where("username = ?", username))
}

func (s *UserStore) first(op string, q *gorm.DB) (*models.User, error) {
	var u models.User
	if err := q.Order("id ASC").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(op, err)
	}
	return &u, nil
}

// UpdatePassword sets the password on every row with this username and
// returns how many rows changed.
func (s *UserStore) UpdatePassword(ctx context.Context, username, newPassword string) (n int64, err error) {
	defer observe("user", "update_password", time.Now(), &err)

	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Update("password", newPassword)
	if res.Error != nil {
		err = storageErr("update password", res.Error)
		return 0, err
	}
	return res.RowsAffected, nil
}
