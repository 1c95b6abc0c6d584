package models

// User is a login account. Username is not unique; password is stored as
// entered.
type User struct {
	ID       uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"column:username;type:text;not null;index"`
	Password string `json:"-" gorm:"column:password;type:text;not null"`
}

func (User) TableName() string { return "users" }
