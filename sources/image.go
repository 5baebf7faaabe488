package sources

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/auyer/steganography"
	"github.com/sirupsen/logrus"
)

// ImageSource reads the cover text hidden in the least significant bits of
// a PNG image
type ImageSource struct {
	Path string
}

// Records decodes the image and returns the lines of the embedded text
func (s *ImageSource) Records() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	records, err := RecordsFromImage(img)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"path":    s.Path,
			"records": len(records),
		}).Debug("Read image")
	}

	return records, nil
}

// RecordsFromImage extracts the embedded text of the image
func RecordsFromImage(img image.Image) ([]string, error) {
	// The size header takes the least significant bits of 32 channels
	if bounds := img.Bounds(); bounds.Dx()*bounds.Dy()*3 < 32 {
		return nil, errors.New("Image does not contain a hidden text")
	}

	size := steganography.GetMessageSizeFromImage(img)
	if size > steganography.MaxEncodeSize(img) {
		return nil, errors.New("Image does not contain a hidden text")
	}

	data := steganography.Decode(size, img)

	return ReadRecords(bytes.NewReader(data))
}

// HideRecords writes a PNG to buf with the records embedded in the least
// significant bits of img
func HideRecords(buf *bytes.Buffer, img image.Image, records []string) error {
	data := []byte(strings.Join(records, ""))
	if uint32(len(data)) > steganography.MaxEncodeSize(img) {
		return errors.New("Image is too small for the records")
	}

	return steganography.Encode(buf, img, data)
}
