package models

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	Address    string `db:"address"`
	AuditFields
}
