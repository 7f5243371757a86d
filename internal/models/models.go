package models

// All returns every model that makes up the schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&ExpenseCategory{},
		&Expense{},
		&ExpenseGroup{},
		&ExpenseGroupUser{},
		&Friend{},
		&AuditLog{},
	}
}
