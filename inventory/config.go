package inventory

import (
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
)

// RulesFile is the YAML document format for user-defined group rules:
//
//	groups:
//	  - group: role=edge
//	    match: Host matches "^edge-\\d+$"
//	  - group: ssh=highport
//	    match: Port >= 2200
type RulesFile struct {
	Groups []Rule `yaml:"groups"`
}

// LoadRules reads and decodes a YAML rules file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrRulesFile.Wrap(err).
			With(slog.String("path", path))
	}

	var file RulesFile

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, ErrRulesFile.Wrap(err).
			With(slog.String("path", path))
	}

	return file.Groups, nil
}
