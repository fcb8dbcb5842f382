package recur

import (
	"strings"
)

// Rule part names defined in RFC 5545 section 3.3.10. Only FREQ, COUNT and
// UNTIL carry special handling here; the rest are listed for callers that
// prefer constants over property strings.
const (
	PartFreq       = "FREQ"
	PartUntil      = "UNTIL"
	PartCount      = "COUNT"
	PartInterval   = "INTERVAL"
	PartBySecond   = "BYSECOND"
	PartByMinute   = "BYMINUTE"
	PartByHour     = "BYHOUR"
	PartByDay      = "BYDAY"
	PartByMonthDay = "BYMONTHDAY"
	PartByYearDay  = "BYYEARDAY"
	PartByWeekNo   = "BYWEEKNO"
	PartByMonth    = "BYMONTH"
	PartBySetPos   = "BYSETPOS"
	PartWkst       = "WKST"
)

// PartValue is the value bound to a single rule part: either one scalar
// string or a list of strings. The two shapes follow different normalization
// rules, so the distinction is kept explicit rather than collapsing
// everything into a one-element list.
type PartValue struct {
	text   string
	list   []string
	isList bool
}

// Scalar returns a single-valued PartValue.
func Scalar(s string) PartValue {
	return PartValue{text: s}
}

// List returns a multi-valued PartValue.
func List(items ...string) PartValue {
	return PartValue{list: append([]string{}, items...), isList: true}
}

// IsList reports whether the value is the list shape.
func (pv PartValue) IsList() bool {
	return pv.isList
}

// IsEmpty reports whether the value carries no content: an empty scalar or a
// zero-length list.
func (pv PartValue) IsEmpty() bool {
	if pv.isList {
		return len(pv.list) == 0
	}
	return pv.text == ""
}

// Text renders the value as it appears after the "=" in rule text. List
// values are joined with commas.
func (pv PartValue) Text() string {
	if pv.isList {
		return strings.Join(pv.list, ",")
	}
	return pv.text
}

// Strings returns the value as a slice: the list elements, or a one-element
// slice holding the scalar. The slice is a copy.
func (pv PartValue) Strings() []string {
	if pv.isList {
		return append([]string{}, pv.list...)
	}
	return []string{pv.text}
}

// Equal reports whether two part values have the same shape and content.
func (pv PartValue) Equal(other PartValue) bool {
	if pv.isList != other.isList {
		return false
	}
	if !pv.isList {
		return pv.text == other.text
	}
	if len(pv.list) != len(other.list) {
		return false
	}
	for i := range pv.list {
		if pv.list[i] != other.list[i] {
			return false
		}
	}
	return true
}

func (pv PartValue) clone() PartValue {
	if pv.isList {
		return List(pv.list...)
	}
	return pv
}

// RulePart is one named field of a recurrence rule, e.g. FREQ=WEEKLY or
// BYDAY=MO,WE.
type RulePart struct {
	Name  string
	Value PartValue
}

func indexOfPart(parts []RulePart, name string) int {
	for i := range parts {
		if parts[i].Name == name {
			return i
		}
	}
	return -1
}
