package main

import (
	"os"

	"github.com/redBorder/linebits"
	"github.com/redBorder/linebits/sources"
	"gopkg.in/yaml.v2"
)

type config struct {
	Source  sources.Config  `yaml:"source"`
	Decoder linebits.Config `yaml:"decoder"`
}

func loadConfigFile(fileName string) (config config, err error) {
	configData, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	if err = yaml.Unmarshal(configData, &config); err != nil {
		return
	}

	return
}
