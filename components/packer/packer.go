package packer

import (
	"errors"

	"github.com/redBorder/linebits/utils"
	"github.com/sirupsen/logrus"
)

var log = utils.NewLogger("packer")

// ParsePolicy validates a policy name. An empty name is the strict policy.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "":
		return Strict, nil
	case Strict, Truncate, Pad:
		return Policy(name), nil
	default:
		return "", errors.New("Unknown policy: " + name)
	}
}

// Pack groups the bits in bytes, most significant bit first
func Pack(bits utils.BitSequence, policy Policy) ([]byte, error) {
	if rem := len(bits) % 8; rem != 0 {
		switch policy {
		case Truncate:
			bits = bits[:len(bits)-rem]
		case Pad:
			padded := make(utils.BitSequence, len(bits)+8-rem)
			copy(padded, bits)
			bits = padded
		default:
			return nil, &utils.MalformedInputError{Bits: len(bits)}
		}
	}

	data := make([]byte, len(bits)/8)
	for i, bit := range bits {
		if bit != 0 {
			data[i/8] |= 0x80 >> uint(i%8)
		}
	}

	return data, nil
}

// Packer is the component that converts a BitSequence to bytes
type Packer struct {
	id int

	Config
}

// Spawn initializes the packer
func (p *Packer) Spawn(id int) utils.Composer {
	log = utils.NewLogger("packer")

	s := *p
	s.id = id
	if s.Config.Policy == "" {
		s.Config.Policy = Strict
	}

	return &s
}

// OnMessage packs the bits pushed by the previous component
func (p *Packer) OnMessage(m *utils.Message, done utils.Done) {
	data, err := m.PopPayload()
	if err != nil {
		m.Err = err
		done(m, utils.CodeNoPayload, "Can't get payload of message: "+err.Error())
		return
	}

	bits, ok := data.(utils.BitSequence)
	if !ok {
		done(m, utils.CodeBadPayload, "Packer expects a bit sequence")
		return
	}

	packed, err := Pack(bits, p.Config.Policy)
	if err != nil {
		m.Err = err
		done(m, utils.CodeMalformedInput, err.Error())
		return
	}

	if rem := len(bits) % 8; rem != 0 {
		log.WithFields(logrus.Fields{
			"id":     m.ID,
			"bits":   len(bits),
			"policy": p.Config.Policy,
		}).Warnf("Partial byte of %d bits", rem)
	}

	m.PushPayload(packed)
	done(m, utils.CodeOK, "")
}
