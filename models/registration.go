package models

// Registration is a tutor/student profile. Subjects and Locations hold
// comma-joined lists; see store.JoinList.
type Registration struct {
	ID        uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Fullname  string `json:"fullname" gorm:"column:fullname;type:text;not null"`
	Email     string `json:"email" gorm:"column:email;type:text;not null;index"`
	DobDay    string `json:"dob_day" gorm:"column:dob_day;type:text"`
	DobMonth  string `json:"dob_month" gorm:"column:dob_month;type:text"`
	DobYear   string `json:"dob_year" gorm:"column:dob_year;type:text"`
	Gender    string `json:"gender" gorm:"column:gender;type:text"`
	Role      string `json:"role" gorm:"column:role;type:text"`
	Subjects  string `json:"subjects" gorm:"column:subjects;type:text"`
	Locations string `json:"locations" gorm:"column:locations;type:text"`
}

func (Registration) TableName() string { return "registrations" }
