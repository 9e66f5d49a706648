package driven

// Notifier defines the driven port for user-facing notifications outside
// the terminal (e.g. desktop notifications). Delivery is best-effort.
type Notifier interface {
	Notify(title, message string) error
}
