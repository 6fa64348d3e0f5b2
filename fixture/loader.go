package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyMethodName = errors.New("method name must not be empty")

// File is a parsed fixture file.
type File struct {
	Version string             `yaml:"version"`
	Methods map[string]*Method `yaml:"methods"`
}

// Method is the test data of one test method.
type Method struct {
	Params []ParamDecl `yaml:"params,omitempty"`
	Rows   []Row       `yaml:"rows"`
}

// ParamDecl declares a parameter of a test method by type name (see TypeByName).
type ParamDecl struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type"`
	Elem string `yaml:"elem,omitempty"`
}

// LoadFile loads and parses a fixture file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML (or JSON) data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	applyDefaults(&f)

	for name, m := range f.Methods {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptyMethodName
		}

		for i, p := range m.Params {
			if p.Type == "" {
				return nil, fmt.Errorf("method %s: param %d: type is required", name, i)
			}

			if _, _, err := p.Types(); err != nil {
				return nil, fmt.Errorf("method %s: param %d: %w", name, i, err)
			}
		}
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Methods == nil {
		f.Methods = map[string]*Method{}
	}

	for name, m := range f.Methods {
		if m == nil {
			f.Methods[name] = &Method{}
			continue
		}

		for i, row := range m.Rows {
			if row == nil {
				m.Rows[i] = Row{}
			}
		}
	}
}

// Set returns the rows of every method.
func (f *File) Set() Set {
	s := make(Set, len(f.Methods))
	for name, m := range f.Methods {
		s[name] = m.Rows
	}

	return s
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
