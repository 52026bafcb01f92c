package models

// AllModels returns every model registered for auto-migration, in
// dependency order.
func AllModels() []any {
	return []any{
		&User{},
		&Classroom{},
		&AudioAsset{},
		&Lecture{},
		&Job{},
	}
}
