package models

// ScheduleDays holds one free-text entry per weekday plus the optional
// month/week labels.
type ScheduleDays struct {
	Monday    string `json:"monday" gorm:"column:monday;type:text"`
	Tuesday   string `json:"tuesday" gorm:"column:tuesday;type:text"`
	Wednesday string `json:"wednesday" gorm:"column:wednesday;type:text"`
	Thursday  string `json:"thursday" gorm:"column:thursday;type:text"`
	Friday    string `json:"friday" gorm:"column:friday;type:text"`
	Saturday  string `json:"saturday" gorm:"column:saturday;type:text"`
	Sunday    string `json:"sunday" gorm:"column:sunday;type:text"`
	Month     string `json:"month" gorm:"column:month;type:text"`
	Week      string `json:"week" gorm:"column:week;type:text"`
}

// WeeklySchedule is owned by the registration with the same email.
type WeeklySchedule struct {
	ID    uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Email string `json:"email" gorm:"column:email;type:text;not null;uniqueIndex:idx_weekly_schedule_email"`

	ScheduleDays `gorm:"embedded"`
}

func (WeeklySchedule) TableName() string { return "weekly_schedule" }
