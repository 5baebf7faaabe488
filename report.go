package linebits

import "time"

// Report contains information about a decoded message
type Report struct {
	ID        string // Message ID
	Component int    // Index of the component that finished the message
	Code      int
	Status    string
	Err       error
	Elapsed   time.Duration
}
