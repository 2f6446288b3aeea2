package models

// Alert mirrors the alerts table.
type Alert struct {
	AlertID   string `db:"alert_id"`
	UserID    string `db:"user_id"`
	ProductID string `db:"product_id"`
	Type      string `db:"type"`
	Message   string `db:"message"`
	Read      bool   `db:"read"`
	AuditFields
}
