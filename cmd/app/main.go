package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redBorder/linebits"
	"github.com/redBorder/linebits/components/predicate"
	"github.com/redBorder/linebits/encoder"
	"github.com/redBorder/linebits/sources"
	"github.com/sirupsen/logrus"
)

var (
	configFile    = flag.String("config", "", "Config file")
	debug         = flag.Bool("debug", false, "Show debug info")
	inputFlag     = flag.String("input", "", "File with the records to decode")
	sourceFlag    = flag.String("source", "", "Source type: file, stdin or image")
	predicateFlag = flag.String("predicate", "", "Bit predicate: "+strings.Join(predicate.Names(), ", "))
	policyFlag    = flag.String("policy", "", "Policy for a partial byte: strict, truncate or pad")
	trimNullFlag  = flag.Bool("trim-null", false, "Remove trailing NUL bytes from the message")
	printBitsFlag = flag.Bool("print-bits", false, "Print the extracted bits before the message")
	bitsFlag      = flag.String("bits", "", "Decode a dump of 0 and 1 instead of reading records")
	encodeFlag    = flag.String("encode", "", "Message to hide in the cover text")
	coverFlag     = flag.String("cover", "", "Cover text used by -encode")
	outputFlag    = flag.String("output", "", "Output file for -encode (default stdout)")
)

// applyFlags overrides the config file with the flags given on the command
// line
func applyFlags(c *config) {
	if *inputFlag != "" {
		c.Source.Path = *inputFlag
	}
	if *sourceFlag != "" {
		c.Source.Type = *sourceFlag
	}
	if *predicateFlag != "" {
		c.Decoder.Predicate = *predicateFlag
	}
	if *policyFlag != "" {
		c.Decoder.Policy = *policyFlag
	}
	if *trimNullFlag {
		c.Decoder.TrimNull = true
	}
}

func decode(c config, printBits bool, w io.Writer) error {
	decoder, err := linebits.NewDecoder(c.Decoder)
	if err != nil {
		return err
	}

	source, err := sources.NewSource(c.Source)
	if err != nil {
		return err
	}

	records, err := source.Records()
	if err != nil {
		return err
	}

	if printBits {
		fmt.Fprintln(w, decoder.Bits(records))
	}

	message, err := decoder.Decode(records)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, message)
	return err
}

func decodeBits(c config, dump string, w io.Writer) error {
	decoder, err := linebits.NewDecoder(c.Decoder)
	if err != nil {
		return err
	}

	bits, err := linebits.BitsFromString(dump)
	if err != nil {
		return err
	}

	message, err := decoder.DecodeBits(bits)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, message)
	return err
}

func encode(message, coverPath string, w io.Writer) error {
	if coverPath == "" {
		return errors.New("No cover text provided")
	}

	cover, err := (&sources.FileSource{Path: coverPath}).Records()
	if err != nil {
		return err
	}

	lines, err := encoder.Encode([]byte(message), cover)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func main() {
	flag.Parse()

	if *debug {
		linebits.LogLevel(logrus.DebugLevel)
	}

	var c config
	if len(*configFile) > 0 {
		var err error
		if c, err = loadConfigFile(*configFile); err != nil {
			linebits.Logger.Fatal(err)
		}
	}
	applyFlags(&c)

	var err error
	switch {
	case *encodeFlag != "":
		out := io.Writer(os.Stdout)
		if *outputFlag != "" {
			f, ferr := os.Create(*outputFlag)
			if ferr != nil {
				linebits.Logger.Fatal(ferr)
			}
			defer f.Close()
			out = f
		}
		err = encode(*encodeFlag, *coverFlag, out)

	case *bitsFlag != "":
		err = decodeBits(c, *bitsFlag, os.Stdout)

	default:
		if c.Source.Path == "" && c.Source.Type != "stdin" {
			fmt.Println("No input provided")
			flag.Usage()
			os.Exit(1)
		}
		err = decode(c, *printBitsFlag, os.Stdout)
	}

	if err != nil {
		linebits.Logger.WithField("version", linebits.Version).Error(err)
		os.Exit(1)
	}
}
