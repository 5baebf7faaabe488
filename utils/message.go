package utils

import (
	"errors"

	"github.com/google/uuid"
	"github.com/oleiade/lane"
)

// Message is used to send data through the pipeline
type Message struct {
	ID      string
	Opts    map[string]interface{}
	Reports *lane.Stack
	Err     error // Set by the component that fails

	payload *lane.Stack
}

// NewMessage creates a new instance of Message
func NewMessage() *Message {
	return &Message{
		ID:      uuid.New().String(),
		payload: lane.NewStack(),
		Reports: lane.NewStack(),
		Opts:    make(map[string]interface{}),
	}
}

// PushPayload store data on an LIFO queue so the nexts handlers can use it
func (m *Message) PushPayload(data interface{}) {
	m.payload.Push(data)
}

// PopPayload get the data stored by the previous handler
func (m *Message) PopPayload() (data interface{}, err error) {
	if m.payload.Empty() {
		err = errors.New("No payload available")
		return
	}

	data = m.payload.Pop()

	return
}

// GetOpt returns an option
func (m *Message) GetOpt(name string) (interface{}, error) {
	opt, ok := m.Opts[name]
	if !ok {
		return nil, errors.New("No option " + name)
	}

	return opt, nil
}
