package particle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned by ParseRange for text that is not a range.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses a range value from configuration text.
// Supports the formats:
//   - Fixed value: "12" → [12 12]
//   - Range: "[5 12]" → [5 12]
//   - Single value in brackets: "[0.4]" → [0.4 0.4]
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("%w: empty value", ErrInvalidRange)
	}

	// 方括号格式: "[min max]" 或 "[value]"
	if strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]") {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidRange, s)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
			}
			return Fixed(v), nil
		case 2:
			lo, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
			}
			hi, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
			}
			if lo > hi {
				return Range{}, fmt.Errorf("%w: min(%g) > max(%g)", ErrInvalidRange, lo, hi)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("%w: expected 1 or 2 values in %q", ErrInvalidRange, s)
		}
	}

	// 单个数值表示固定值
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	return Fixed(v), nil
}

// String formats the range the way ParseRange reads it.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return "[" + strconv.FormatFloat(r.Min, 'g', -1, 64) + " " + strconv.FormatFloat(r.Max, 'g', -1, 64) + "]"
}

// UnmarshalText lets ranges be written as "[min max]" scalars in YAML files.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
