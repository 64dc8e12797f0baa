package req

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Truthy is a boolean decoded from any JSON value using JavaScript truthiness:
// false, null, 0, and "" are false; every other value, including "false" and {}, is true.
// Browser clients send flags in whatever shape their form state holds.
type Truthy bool

// UnmarshalJSON implements json.Unmarshaler.
func (t *Truthy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*t = false
	case bytes.Equal(data, []byte("true")):
		*t = true
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = s != ""
	case data[0] == '[' || data[0] == '{':
		*t = true
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*t = f != 0
	}
	return nil
}

// Bool returns the decoded value as a plain bool.
func (t Truthy) Bool() bool {
	return bool(t)
}
