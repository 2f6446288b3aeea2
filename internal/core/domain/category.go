package domain

// Category groups products (e.g. dairy, produce, livestock).
type Category struct {
	CategoryID  string
	UserID      string
	Name        string
	Description string
	AuditFields
}
