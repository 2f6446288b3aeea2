package domain

// Customer is a buyer registered by a user for sales records.
type Customer struct {
	CustomerID string
	UserID     string
	Name       string
	Phone      string
	Email      string
	Address    string
	AuditFields
}
