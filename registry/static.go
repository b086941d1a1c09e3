package registry

import (
	"slices"

	"csv-serializer/internal/common"
)

// StaticConfig lists the names a Static registry knows about.
type StaticConfig struct {
	DateInterface string   `yaml:"date_interface,omitempty"` // defaults to DateTimeInterface
	Enums         []string `yaml:"enums,omitempty"`
	Dates         []string `yaml:"dates,omitempty"`
}

// Static is an immutable lookup table, typically generated from source analysis or a config file.
//
// Names are matched either exactly or by their short form, so "records.Status"
// finds an entry registered as "example.com/app/records.Status". A short form shared
// by two registered names ("a/x.Status" and "b/x.Status") matches neither.
type Static struct {
	cfg   StaticConfig
	enums map[string]struct{}
	dates map[string]struct{}
}

var _ TypeRegistry = (*Static)(nil)

// NewStatic builds a Static registry from cfg.
func NewStatic(cfg StaticConfig) *Static {
	if cfg.DateInterface == "" {
		cfg.DateInterface = DateTimeInterface
	}

	cfg.Enums = compact(cfg.Enums)
	cfg.Dates = compact(cfg.Dates)

	dates := append([]string{cfg.DateInterface}, cfg.Dates...)
	short := shortForms(slices.Concat(cfg.Enums, dates))

	return &Static{
		cfg:   cfg,
		enums: keys(cfg.Enums, short),
		dates: keys(dates, short),
	}
}

// Config returns a copy of the configuration the registry was built from, with names sorted.
func (s *Static) Config() StaticConfig {
	return StaticConfig{
		DateInterface: s.cfg.DateInterface,
		Enums:         slices.Clone(s.cfg.Enums),
		Dates:         slices.Clone(s.cfg.Dates),
	}
}

func (s *Static) IsEnum(name string) bool {
	_, ok := s.enums[name]
	return ok
}

func (s *Static) IsDate(name string) bool {
	_, ok := s.dates[name]
	return ok
}

// shortForms maps each unambiguous short name to the qualified name it abbreviates.
func shortForms(names []string) map[string]string {
	res := make(map[string]string, len(names))
	ambiguous := make(map[string]struct{})

	for _, name := range names {
		short := common.ShortName(name)
		if short == name {
			continue
		}

		if prev, ok := res[short]; ok && prev != name {
			ambiguous[short] = struct{}{}
		}
		res[short] = name
	}

	for short := range ambiguous {
		delete(res, short)
	}

	return res
}

func keys(names []string, short map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, 2*len(names))
	for _, name := range names {
		set[name] = struct{}{}

		if s := common.ShortName(name); short[s] == name {
			set[s] = struct{}{}
		}
	}

	return set
}

// compact sorts names and drops blanks and duplicates.
func compact(names []string) []string {
	res := slices.DeleteFunc(slices.Clone(names), func(s string) bool { return s == "" })
	slices.Sort(res)

	return slices.Compact(res)
}
