package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID is a program identifier supplied either as a number or a numeric
// string. It keeps the raw text; Int reports whether it is numeric.
type ID string

// Int parses the identifier as a whole number. Surrounding whitespace is
// ignored and integral decimals ("26613.0") are accepted. Anything else,
// including the empty string, reports false.
func (id ID) Int() (int64, bool) {
	raw := strings.TrimSpace(string(id))
	if raw == "" {
		return 0, false
	}
	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("program: decode id: %w", err)
		}
		*id = ID(raw)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("program: decode id: %w", err)
	}
	*id = ID(number.String())
	return nil
}

// Program is the program record the hosting page hands to a resolver.
type Program struct {
	ID       ID     `json:"id" yaml:"id"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Snippet  string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Level    string `json:"level,omitempty" yaml:"level,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// New returns a program with the given identifier.
func New(id string) Program {
	return Program{ID: ID(id)}
}

// FromInt returns a program with a numeric identifier.
func FromInt(id int64) Program {
	return Program{ID: ID(strconv.FormatInt(id, 10))}
}
