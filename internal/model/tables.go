package model

// Tables lists every persisted entity, parents before dependents, in the
// order the schema is migrated.
func Tables() []any {
	return []any{
		&Role{},
		&User{},
		&Job{},
		&Application{},
		&SavedJob{},
	}
}
