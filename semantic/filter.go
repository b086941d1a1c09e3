package semantic

import (
	"strconv"

	"csv-serializer/utils"
)

// Filter selects the validation routine a caster applies to a raw textual value.
// Values mirror the well-known filter constants so they can be passed through unchanged.
type Filter int

const (
	FilterValidateInt   Filter = 257
	FilterValidateBool  Filter = 258
	FilterValidateFloat Filter = 259
	FilterUnsafeRaw     Filter = 516 // no validation, value is passed through untouched
)

// Validates reports whether the filter is one of the validating filters.
func (f Filter) Validates() bool {
	return utils.IsInRange(FilterValidateInt, f, FilterValidateFloat)
}

func (f Filter) String() string {
	switch f {
	case FilterValidateInt:
		return "FilterValidateInt"
	case FilterValidateBool:
		return "FilterValidateBool"
	case FilterValidateFloat:
		return "FilterValidateFloat"
	case FilterUnsafeRaw:
		return "FilterUnsafeRaw"
	default:
		return "Filter(" + strconv.Itoa(int(f)) + ")"
	}
}
