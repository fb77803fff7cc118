package feedback

// Feedback is a user-submitted message, read-only in this UI.
type Feedback struct {
	ID       string
	FullName string
	Email    string
	Message  string
}
