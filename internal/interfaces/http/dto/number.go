package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Number is a loosely typed numeric field. It accepts JSON numbers, numeric
// strings, null and any other value without failing request decoding;
// whatever does not parse falls back to the caller's default.
type Number struct {
	raw     string
	present bool
}

// NewNumber builds a Number holding raw, mainly for tests
func NewNumber(raw string) Number {
	return Number{raw: raw, present: raw != ""}
}

// UnmarshalJSON implements json.Unmarshaler and never fails
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = Number{}

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			n.raw = s
			n.present = s != ""
		}
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		n.raw = string(data)
		n.present = true
	default:
		// booleans, objects and arrays count as supplied but unparseable
		n.present = true
	}
	return nil
}

// MarshalJSON writes the value back as a number, or null when it does not
// parse
func (n Number) MarshalJSON() ([]byte, error) {
	d, ok := n.parse()
	if !ok {
		return []byte("null"), nil
	}
	return []byte(d.String()), nil
}

// Present reports whether the client supplied something other than null or
// an empty string
func (n Number) Present() bool {
	return n.present
}

// Or returns the parsed value, or def when it is missing or not a number
func (n Number) Or(def decimal.Decimal) decimal.Decimal {
	return shared.ParseDecimalOr(n.raw, def)
}

// OrZero returns the parsed value, or zero
func (n Number) OrZero() decimal.Decimal {
	return n.Or(decimal.Zero)
}

// Ptr returns the parsed value, or nil when it is missing or not a number
func (n Number) Ptr() *decimal.Decimal {
	d, ok := n.parse()
	if !ok {
		return nil
	}
	return &d
}

func (n Number) parse() (decimal.Decimal, bool) {
	raw := strings.TrimSpace(n.raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ID is a loosely typed reference to another record. JSON integers and
// integer strings resolve to an id. Null, "", "null", zero, negative and
// non-integer values resolve to no reference.
type ID struct {
	value uint
	valid bool
}

// NewID builds an ID, mainly for tests
func NewID(v uint) ID {
	return ID{value: v, valid: v > 0}
}

// UnmarshalJSON implements json.Unmarshaler and never fails
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*id = ID{}

	var raw string
	switch {
	case len(data) == 0:
		return nil
	case data[0] == '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		// JSON numbers with a fraction are truncated
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return nil
		}
		raw = d.Truncate(0).String()
	default:
		return nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id.value = uint(v)
	id.valid = true
	return nil
}

// MarshalJSON writes the id, or null when there is none
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatUint(uint64(id.value), 10)), nil
}

// Ptr returns the id, or nil when there is no reference
func (id ID) Ptr() *uint {
	if !id.valid {
		return nil
	}
	v := id.value
	return &v
}

// Value returns the id, or zero when there is no reference
func (id ID) Value() uint {
	return id.value
}

// Text is a loosely typed string field. JSON strings keep their value and
// anything else, null included, decodes as "".
type Text string

// UnmarshalJSON implements json.Unmarshaler and never fails
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
	}
	return nil
}

// String returns the decoded value
func (t Text) String() string {
	return string(t)
}
