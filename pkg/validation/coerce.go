package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/prosperitycompass/backend/pkg/money"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var errInvalidDate = errors.New("invalid date")

// ParseDate accepts full timestamps and bare calendar dates (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errInvalidDate
}

func absent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// Date coerces a JSON string (see ParseDate) or a JSON number of epoch
// milliseconds. The bool result is false when nothing usable was found.
func (e *Error) Date(field string, raw json.RawMessage, required bool) (time.Time, bool) {
	if absent(raw) {
		if required {
			e.Add(field, "Required")
		}
		return time.Time{}, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		t, err := ParseDate(s)
		if err != nil {
			e.Add(field, "Invalid date")
			return time.Time{}, false
		}
		return t, true
	}

	var ms json.Number
	if err := json.Unmarshal(raw, &ms); err == nil {
		n, err := strconv.ParseInt(ms.String(), 10, 64)
		if err != nil {
			e.Add(field, "Invalid date")
			return time.Time{}, false
		}
		return time.UnixMilli(n).UTC(), true
	}

	e.Add(field, "Expected date, received "+jsonKind(raw))
	return time.Time{}, false
}

// Amount coerces a JSON number or numeric string into a fixed-point decimal
// with at most money.Scale fractional digits.
func (e *Error) Amount(field string, raw json.RawMessage, required bool) (decimal.Decimal, bool) {
	if absent(raw) {
		if required {
			e.Add(field, "Required")
		}
		return decimal.Zero, false
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			e.Add(field, "Expected number, received "+jsonKind(raw))
			return decimal.Zero, false
		}
		text = n.String()
	}

	d, err := money.ParseAmount(text)
	switch {
	case errors.Is(err, money.ErrAmountPrecision):
		e.Add(field, "Must have at most 2 decimal places")
	case errors.Is(err, money.ErrAmountOutOfRange):
		e.Add(field, "Amount is out of range")
	case err != nil:
		e.Add(field, "Expected number, received nan")
	default:
		return d, true
	}
	return decimal.Zero, false
}

func jsonKind(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
