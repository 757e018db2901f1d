package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// Decimal carries numeric fields that travel as decimal strings on the wire
// (duration, price, quantity). In memory it is a plain float64 so range
// checks and stock comparisons work without re-parsing.
type Decimal float64

func (d Decimal) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatFloat(float64(d), 'f', -1, 64)), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) >= 2 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid decimal %s", data)
		}
		if s == "" {
			*d = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid decimal %q", s)
		}
		*d = Decimal(v)
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %s", data)
	}
	*d = Decimal(v)
	return nil
}

// Flag carries boolean fields that travel as "true"/"false" strings on the
// wire (the active flags).
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case `"true"`, `true`:
		*f = true
	case `"false"`, `false`, `""`:
		*f = false
	default:
		return fmt.Errorf("invalid flag %s", data)
	}
	return nil
}
