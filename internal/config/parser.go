package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	faceterrors "github.com/alexisbeaulieu97/facet/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a definition file from disk, validates it, and returns the resulting model.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faceterrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a definition. path is only used for error messages.
func Parse(data []byte, path string) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, faceterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDefinition(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
