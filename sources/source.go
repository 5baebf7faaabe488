package sources

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/redBorder/linebits/utils"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

// Config stores the configuration of a source
type Config struct {
	Type string `yaml:"type"` // file, stdin or image
	Path string `yaml:"path"`
}

// Source provides the records to decode
type Source interface {
	Records() ([]string, error)
}

// NewSource creates a new source depending on the configuration passed
// as argument
func NewSource(config Config) (Source, error) {
	log = utils.NewLogger("source")

	switch config.Type {
	case "", "file":
		if config.Path == "" {
			return nil, errors.New("No path for file source")
		}
		return &FileSource{Path: config.Path}, nil
	case "stdin":
		return &ReaderSource{Reader: os.Stdin}, nil
	case "image":
		if config.Path == "" {
			return nil, errors.New("No path for image source")
		}
		return &ImageSource{Path: config.Path}, nil
	default:
		return nil, errors.New("Unknown source type: " + config.Type)
	}
}

// ReadRecords reads the lines of r keeping their terminators. A last line
// without terminator is also returned.
func ReadRecords(r io.Reader) ([]string, error) {
	var records []string

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			records = append(records, line)
		}
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReaderSource reads the records from a reader
type ReaderSource struct {
	Reader io.Reader
}

// Records reads every line of the reader
func (s *ReaderSource) Records() ([]string, error) {
	return ReadRecords(s.Reader)
}

// FileSource reads the records from a text file
type FileSource struct {
	Path string
}

// Records reads every line of the file
func (s *FileSource) Records() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"path":    s.Path,
			"records": len(records),
		}).Debug("Read file")
	}

	return records, nil
}
