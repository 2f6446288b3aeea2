package domain

// Alert is a user notification raised when a goal transitions to done.
type Alert struct {
	AlertID   string
	UserID    string
	ProductID string
	Type      GoalType // sales or production, mirrors the achieved goal
	Message   string
	Read      bool
	AuditFields
}
