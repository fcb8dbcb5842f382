package recur

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Recur holds one RECUR value as defined in RFC 5545 section 3.3.10, e.g.
// the value of an RRULE or EXRULE property. It keeps the rule parts in a
// canonical form: upper-case names, upper-case values, comma-separated
// values split into lists, and UNTIL timestamps packed down to their compact
// form with ":" and "-" removed.
//
// All mutation goes through SetValue or one of its typed variants, so the
// canonical form always holds for stored parts. A Recur is not safe for
// unsynchronized concurrent use.
type Recur struct {
	parts []RulePart
}

// NewRecur returns an empty recurrence value.
func NewRecur() *Recur {
	return &Recur{}
}

// ParseRecur parses rule text such as "FREQ=WEEKLY;BYDAY=MO,WE" into a new
// recurrence value.
func ParseRecur(text string) (*Recur, error) {
	r := NewRecur()
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	return r, nil
}

// ValueType returns the iCalendar value-type tag for this value.
func (r *Recur) ValueType() string {
	return "RECUR"
}

// SetValue replaces the stored rule with the given input. It accepts rule
// text, []RulePart, map[string]string, map[string][]string, map[string]any
// or another *Recur; anything else fails with ErrInvalidInput. On error no
// state changes.
func (r *Recur) SetValue(value any) error {
	switch v := value.(type) {
	case string:
		return r.SetText(v)
	case []RulePart:
		r.SetParts(v)
		return nil
	case *Recur:
		r.SetParts(v.GetParts())
		return nil
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return r.SetPartsMap(m)
	case map[string][]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return r.SetPartsMap(m)
	case map[string]any:
		return r.SetPartsMap(v)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidInput, value)
	}
}

// SetText parses rule text and replaces the stored rule with the result. A
// part without a "=" separator fails the whole call with
// ErrMalformedRulePart and leaves the previous state in place.
func (r *Recur) SetText(text string) error {
	parts, err := parseRuleText(text)
	if err != nil {
		return err
	}
	r.SetParts(parts)
	return nil
}

// SetParts replaces the stored rule with the given parts, normalized. When
// the same name appears more than once the last value wins, stored at the
// first position the name appeared at.
func (r *Recur) SetParts(parts []RulePart) {
	next := make([]RulePart, 0, len(parts))
	for _, part := range parts {
		np := normalizeRulePart(part.Name, part.Value)
		if i := indexOfPart(next, np.Name); i >= 0 {
			next[i] = np
		} else {
			next = append(next, np)
		}
	}
	r.parts = next
}

// SetPartsMap replaces the stored rule from a generic key/value mapping, the
// shape produced by decoding an interchange document. Values may be string,
// []string, []any of strings, a numeric type, a fmt.Stringer or a PartValue.
// Map iteration order is not deterministic, so keys are sorted before
// insertion to keep the stored order reproducible. On error no state
// changes.
func (r *Recur) SetPartsMap(values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]RulePart, 0, len(values))
	for _, k := range keys {
		pv, err := coercePartValue(values[k])
		if err != nil {
			return fmt.Errorf("part %s: %w", k, err)
		}
		parts = append(parts, RulePart{Name: k, Value: pv})
	}
	r.SetParts(parts)
	return nil
}

// GetParts returns a copy of the stored parts in their canonical form.
// Mutating the returned slice does not affect the value.
func (r *Recur) GetParts() []RulePart {
	parts := make([]RulePart, len(r.parts))
	for i, part := range r.parts {
		parts[i] = RulePart{Name: part.Name, Value: part.Value.clone()}
	}
	return parts
}

// GetPart returns the value bound to the named part, matched
// case-insensitively.
func (r *Recur) GetPart(name string) (PartValue, bool) {
	if i := indexOfPart(r.parts, strings.ToUpper(name)); i >= 0 {
		return r.parts[i].Value.clone(), true
	}
	return PartValue{}, false
}

// HasPart reports whether the named part is set.
func (r *Recur) HasPart(name string) bool {
	return indexOfPart(r.parts, strings.ToUpper(name)) >= 0
}

// SetRawText replaces the stored rule from the textual form used at the
// document-serialization boundary. Identical to SetText.
func (r *Recur) SetRawText(text string) error {
	return r.SetText(text)
}

// GetRawText returns the canonical textual form used at the
// document-serialization boundary. Identical to GetValue.
func (r *Recur) GetRawText() string {
	return r.GetValue()
}

var untilPacker = strings.NewReplacer(":", "", "-", "")

// normalizeRulePart produces the canonical form of one rule part. Scalar
// values are upper-cased, UNTIL scalars packed with ":" and "-" removed,
// then split on commas into lists; packing before splitting keeps every
// scalar form the split produces packed as well. Caller-supplied list
// values only have their elements upper-cased: they are never re-split and
// never packed.
func normalizeRulePart(name string, value PartValue) RulePart {
	name = strings.ToUpper(name)
	if value.isList {
		items := make([]string, len(value.list))
		for i, item := range value.list {
			items[i] = strings.ToUpper(item)
		}
		return RulePart{Name: name, Value: PartValue{list: items, isList: true}}
	}
	text := strings.ToUpper(value.text)
	if name == PartUntil {
		text = untilPacker.Replace(text)
	}
	if strings.Contains(text, ",") {
		return RulePart{Name: name, Value: List(strings.Split(text, ",")...)}
	}
	return RulePart{Name: name, Value: Scalar(text)}
}

func coercePartValue(value any) (PartValue, error) {
	switch v := value.(type) {
	case string:
		return Scalar(v), nil
	case []string:
		return List(v...), nil
	case PartValue:
		return v.clone(), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			pv, err := coercePartValue(item)
			if err != nil || pv.IsList() {
				return PartValue{}, fmt.Errorf("%w: %T in list", ErrInvalidInput, item)
			}
			items = append(items, pv.text)
		}
		return List(items...), nil
	case int:
		return Scalar(strconv.Itoa(v)), nil
	case int64:
		return Scalar(strconv.FormatInt(v, 10)), nil
	case float64:
		// encoding/json decodes numbers to float64.
		return Scalar(strconv.FormatInt(int64(v), 10)), nil
	case fmt.Stringer:
		return Scalar(v.String()), nil
	default:
		return PartValue{}, fmt.Errorf("%w: %T", ErrInvalidInput, value)
	}
}
