package predicate

import (
	"github.com/redBorder/linebits/utils"
	"github.com/sirupsen/logrus"
)

var log = utils.NewLogger("predicate")

// Extractor is the first component of the decoding pipeline. It pops the
// records from the message and pushes a BitSequence with one bit per record.
type Extractor struct {
	id        int
	predicate Predicate
	err       error

	Config
}

// NewExtractor creates an Extractor using the named predicate
func NewExtractor(config Config) (*Extractor, error) {
	p, err := Lookup(config.Predicate)
	if err != nil {
		return nil, err
	}

	return &Extractor{Config: config, predicate: p}, nil
}

// Spawn initializes the extractor
func (e *Extractor) Spawn(id int) utils.Composer {
	log = utils.NewLogger("predicate")

	s := *e
	s.id = id

	if s.predicate == nil {
		s.predicate, s.err = Lookup(s.Config.Predicate)
	}

	return &s
}

// Bits applies the predicate to every record, in order
func (e *Extractor) Bits(records []string) utils.BitSequence {
	bits := make(utils.BitSequence, len(records))
	for i, r := range records {
		bits[i] = e.predicate(r)
	}

	return bits
}

// OnMessage converts the records of the message to bits
func (e *Extractor) OnMessage(m *utils.Message, done utils.Done) {
	if e.err != nil {
		m.Err = e.err
		done(m, utils.CodeBadPayload, e.err.Error())
		return
	}

	data, err := m.PopPayload()
	if err != nil {
		m.Err = err
		done(m, utils.CodeNoPayload, "Can't get payload of message: "+err.Error())
		return
	}

	records, ok := data.([]string)
	if !ok {
		done(m, utils.CodeBadPayload, "Extractor expects a list of records")
		return
	}

	bits := e.Bits(records)
	log.WithFields(logrus.Fields{
		"id":      m.ID,
		"records": len(records),
	}).Debug("Extracted bits")

	m.PushPayload(bits)
	done(m, utils.CodeOK, "")
}
