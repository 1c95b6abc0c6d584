package models

// DashboardCounters are the eight free-text counters shown on the dashboard.
// They are always written together.
type DashboardCounters struct {
	HomeworkAssigned   string `json:"homework_assigned" gorm:"column:homework_assigned;type:text"`
	HomeworkSubmitted  string `json:"homework_submitted" gorm:"column:homework_submitted;type:text"`
	AttendanceStudents string `json:"attendance_students" gorm:"column:attendance_students;type:text"`
	AttendanceTutor    string `json:"attendance_tutor" gorm:"column:attendance_tutor;type:text"`
	RegisteredTutors   string `json:"registered_tutors" gorm:"column:registered_tutors;type:text"`
	RegisteredStudents string `json:"registered_students" gorm:"column:registered_students;type:text"`
	DropoutTutors      string `json:"dropout_tutors" gorm:"column:dropout_tutors;type:text"`
	DropoutStudents    string `json:"dropout_students" gorm:"column:dropout_students;type:text"`
}

// Dashboard is owned by the registration with the same email (one row per email).
type Dashboard struct {
	ID    uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Email string `json:"email" gorm:"column:email;type:text;not null;uniqueIndex:idx_dashboard_email"`

	DashboardCounters `gorm:"embedded"`
}

func (Dashboard) TableName() string { return "dashboard" }
