package linebits

import (
	"errors"

	"github.com/benbjohnson/clock"
	"github.com/redBorder/linebits/components/packer"
	"github.com/redBorder/linebits/components/predicate"
	"github.com/redBorder/linebits/components/text"
	"github.com/redBorder/linebits/utils"
	"github.com/sirupsen/logrus"
)

// Version is the current tag
var Version = "0.1.0"

// MalformedInputError is returned by the strict policy when the number of
// records is not a multiple of 8
type MalformedInputError = utils.MalformedInputError

// BitSequence holds one bit per record
type BitSequence = utils.BitSequence

// BitsFromString parses a dump of '0' and '1', ignoring whitespace
func BitsFromString(s string) (BitSequence, error) {
	return utils.ParseBitSequence(s)
}

// Decoder recovers a message hidden one bit per line. Records go through
// three components: predicate extraction, packing and rendering.
type Decoder struct {
	extractor *predicate.Extractor
	records   *pipeline // extractor -> packer -> renderer
	bits      *pipeline // packer -> renderer
	last      Report

	config Config
}

// NewDecoder creates a new Decoder object
func NewDecoder(config Config) (*Decoder, error) {
	return newDecoder(config, clock.New())
}

func newDecoder(config Config, clk clock.Clock) (*Decoder, error) {
	policy, err := packer.ParsePolicy(config.Policy)
	if err != nil {
		return nil, err
	}

	extractor, err := predicate.NewExtractor(predicate.Config{Predicate: config.Predicate})
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		extractor: extractor,
		records:   newPipeline(clk),
		bits:      newPipeline(clk),
		config:    config,
	}

	d.records.PushComponent(extractor)
	for _, p := range []*pipeline{d.records, d.bits} {
		p.PushComponent(&packer.Packer{Config: packer.Config{Policy: policy}})
		p.PushComponent(&text.Renderer{Config: text.Config{TrimNull: config.TrimNull}})
	}

	Logger.WithFields(logrus.Fields{
		"predicate": config.Predicate,
		"policy":    policy,
		"trim_null": config.TrimNull,
	}).Debug("Initialized decoder")

	return d, nil
}

// Decode converts the records to the hidden message. Records should keep
// their line terminators.
func (d *Decoder) Decode(records []string) (string, error) {
	m := utils.NewMessage()
	m.PushPayload(records)

	return d.run(d.records, m)
}

// DecodeBits decodes an already extracted bit sequence
func (d *Decoder) DecodeBits(bits BitSequence) (string, error) {
	m := utils.NewMessage()
	m.PushPayload(bits)

	return d.run(d.bits, m)
}

// Bits returns the bit of every record without decoding them
func (d *Decoder) Bits(records []string) BitSequence {
	return d.extractor.Bits(records)
}

// LastReport returns the report of the last decoded message
func (d *Decoder) LastReport() Report {
	return d.last
}

func (d *Decoder) run(p *pipeline, m *utils.Message) (string, error) {
	rep := p.Run(m)
	d.last = rep

	fields := logrus.Fields{
		"id":        rep.ID,
		"component": rep.Component,
		"code":      rep.Code,
		"elapsed":   rep.Elapsed,
	}

	if rep.Code != utils.CodeOK {
		Logger.WithFields(fields).Debugf("Decoding failed: %s", rep.Status)
		if rep.Err != nil {
			return "", rep.Err
		}
		return "", errors.New(rep.Status)
	}

	data, err := m.PopPayload()
	if err != nil {
		return "", err
	}

	message, ok := data.(string)
	if !ok {
		return "", errors.New("Unexpected payload at the end of the pipeline")
	}

	Logger.WithFields(fields).Debug("Decoded message")

	return message, nil
}

// Decode decodes the records with the default configuration: trailing space
// predicate and strict policy
func Decode(records []string) (string, error) {
	d, err := NewDecoder(Config{})
	if err != nil {
		return "", err
	}

	return d.Decode(records)
}
