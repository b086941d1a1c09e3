package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"csv-serializer/registry"
	"csv-serializer/typedecl"
)

// LoadFile loads and parses a YAML type-check file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Registry.DateInterface == "" {
		f.Registry.DateInterface = registry.DateTimeInterface
	}

	for i := range f.Members {
		if f.Members[i].Target == "" {
			f.Members[i].Target = typedecl.TargetProperty.String()
		}
	}
}

func validate(f *File) error {
	var errs []error

	for i, m := range f.Members {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("members[%d]: name is required", i))
		}

		if _, err := typedecl.ParseTarget(m.Target); err != nil {
			errs = append(errs, fmt.Errorf("members[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// MembersList returns the hand-declared members in file order.
func (f *File) MembersList() []typedecl.Member {
	res := make([]typedecl.Member, 0, len(f.Members))
	for _, m := range f.Members {
		res = append(res, m.Member())
	}

	return res
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
