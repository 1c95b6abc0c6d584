package models

// All lists every model in schema creation order.
func All() []any {
	return []any{
		&User{},
		&Registration{},
		&Dashboard{},
		&WeeklySchedule{},
		&Invoice{},
	}
}
