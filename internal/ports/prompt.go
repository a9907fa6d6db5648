package ports

// Acknowledger blocks until the user acknowledges a message
type Acknowledger interface {
	Acknowledge(message string) error
}
