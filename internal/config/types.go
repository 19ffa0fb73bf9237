package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/facet/internal/components"
	"github.com/alexisbeaulieu97/facet/internal/dropdown"
)

// Definition is a dropdown described in a YAML file.
type Definition struct {
	ID           string       `yaml:"id" validate:"required"`
	Title        string       `yaml:"title,omitempty" validate:"max=100"`
	Placeholder  string       `yaml:"placeholder,omitempty"`
	Value        string       `yaml:"value,omitempty"`
	Searchable   bool         `yaml:"searchable,omitempty"`
	Clearable    bool         `yaml:"clearable,omitempty"`
	Required     bool         `yaml:"required,omitempty"`
	Disabled     bool         `yaml:"disabled,omitempty"`
	Error        bool         `yaml:"error,omitempty"`
	ErrorMessage string       `yaml:"error_message,omitempty"`
	Size         string       `yaml:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	MaxRows      int          `yaml:"max_rows,omitempty" validate:"gte=0,lte=50"`
	Options      []OptionEntry `yaml:"options" validate:"required,min=1,dive"`
}

// OptionEntry is one entry of the options list. A bare scalar is shorthand for an option whose
// value and label are the same.
type OptionEntry struct {
	Value    string `yaml:"value" validate:"required"`
	Label    string `yaml:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// UnmarshalYAML accepts either a scalar or a mapping and defaults the label to the value.
func (o *OptionEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*o = OptionEntry{Value: value.Value, Label: value.Value}
		return nil
	}

	type rawOption OptionEntry
	var temp rawOption
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*o = OptionEntry(temp)
	if !hasYAMLKey(value, "label") {
		o.Label = o.Value
	}
	return nil
}

// Catalog converts the option list.
func (d *Definition) Catalog() dropdown.Catalog {
	catalog := make(dropdown.Catalog, len(d.Options))
	for i, opt := range d.Options {
		catalog[i] = dropdown.Option{Value: opt.Value, Label: opt.Label, Disabled: opt.Disabled}
	}
	return catalog
}

// ToProps converts the definition into dropdown props. Size falls back to medium.
func (d *Definition) ToProps() dropdown.Props {
	size, _ := components.ParseSize(d.Size)
	return dropdown.Props{
		ID:           d.ID,
		Options:      d.Catalog(),
		Value:        d.Value,
		Placeholder:  d.Placeholder,
		Disabled:     d.Disabled,
		Required:     d.Required,
		Error:        d.Error,
		ErrorMessage: d.ErrorMessage,
		Searchable:   d.Searchable,
		Clearable:    d.Clearable,
		Size:         size,
		MaxRows:      d.MaxRows,
	}
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
