package text

import (
	"github.com/redBorder/linebits/utils"
	"github.com/sirupsen/logrus"
)

var log = utils.NewLogger("text")

// Config stores the config for a Renderer
type Config struct {
	TrimNull bool // Remove trailing NUL bytes
}

// Render converts the decoded bytes to the message text. Every byte is one
// character of the result; bytes outside printable ASCII are not escaped or
// re-encoded.
func Render(data []byte, trimNull bool) string {
	if trimNull {
		end := len(data)
		for end > 0 && data[end-1] == 0 {
			end--
		}
		data = data[:end]
	}

	return string(data)
}

// Renderer is the last component of the decoding pipeline
type Renderer struct {
	id int

	Config
}

// Spawn initializes the renderer
func (r *Renderer) Spawn(id int) utils.Composer {
	log = utils.NewLogger("text")

	s := *r
	s.id = id

	return &s
}

// OnMessage converts the bytes of the message to a string
func (r *Renderer) OnMessage(m *utils.Message, done utils.Done) {
	data, err := m.PopPayload()
	if err != nil {
		m.Err = err
		done(m, utils.CodeNoPayload, "Can't get payload of message: "+err.Error())
		return
	}

	raw, ok := data.([]byte)
	if !ok {
		done(m, utils.CodeBadPayload, "Renderer expects a byte sequence")
		return
	}

	message := Render(raw, r.Config.TrimNull)
	log.WithFields(logrus.Fields{
		"id":    m.ID,
		"bytes": len(raw),
	}).Debug("Rendered message")

	m.PushPayload(message)
	done(m, utils.CodeOK, "")
}
