package db_models

// All lists every table the API migrates on start-up.
func All() []any {
	return []any{
		&User{},
		&Product{},
		&Review{},
		&Order{},
		&Payment{},
		&WalletTransaction{},
	}
}
