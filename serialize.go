package recur

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// GetValue renders the canonical textual form, e.g.
// "FREQ=WEEKLY;BYDAY=MO,WE". Parts appear in insertion order; the result is
// upper-cased as a whole so the invariant holds even if a stored part ever
// bypassed normalization.
func (r *Recur) GetValue() string {
	b := bytes.NewBufferString("")
	for i, part := range r.parts {
		if i > 0 {
			fmt.Fprint(b, ";")
		}
		fmt.Fprint(b, part.Name)
		fmt.Fprint(b, "=")
		fmt.Fprint(b, part.Value.Text())
	}
	return strings.ToUpper(b.String())
}

// SerializeTo writes the canonical textual form to w.
func (r *Recur) SerializeTo(w io.Writer) error {
	_, err := io.WriteString(w, r.GetValue())
	return err
}

// GetJSONValue returns the interchange form: a one-element slice holding an
// object with lower-cased keys, COUNT converted to an integer and UNTIL
// expanded through DateTime. An UNTIL that cannot be interpreted fails with
// ErrMalformedTimestamp.
func (r *Recur) GetJSONValue() ([]map[string]any, error) {
	obj := make(map[string]any, len(r.parts))
	for _, part := range r.parts {
		key, value, err := interchangeEntry(part)
		if err != nil {
			return nil, err
		}
		obj[key] = value
	}
	return []map[string]any{obj}, nil
}

// MarshalJSON implements json.Marshaler over GetJSONValue, so a *Recur can
// be embedded directly in an interchange document.
func (r *Recur) MarshalJSON() ([]byte, error) {
	value, err := r.GetJSONValue()
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// interchangeEntry converts one stored part to its interchange key and
// typed value: string, []string or int.
func interchangeEntry(part RulePart) (string, any, error) {
	key := strings.ToLower(part.Name)
	switch part.Name {
	case PartCount:
		return key, looseInt(part.Value.Text()), nil
	case PartUntil:
		dt, err := ParseDateTime(part.Value.Text())
		if err != nil {
			return "", nil, err
		}
		return key, dt.JSONValue(), nil
	}
	if part.Value.IsList() {
		return key, part.Value.Strings(), nil
	}
	return key, part.Value.Text(), nil
}

// looseInt reads the leading optionally-signed integer of s, yielding 0 when
// there is none. COUNT goes through an integer cast in the interchange form
// rather than a strict parse, so trailing garbage is dropped and a
// non-numeric count becomes 0.
func looseInt(s string) int {
	i := 0
	sign := 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			// Saturate instead of wrapping on absurd digit runs.
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	return sign * n
}
