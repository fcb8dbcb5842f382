package recur

import (
	"fmt"
	"regexp"
	"time"
)

const (
	timestampFormatUtc   = "20060102T150405Z"
	timestampFormatLocal = "20060102T150405"
	dateFormatUtc        = "20060102Z"
	dateFormatLocal      = "20060102"

	jsonTimestampFormatUtc   = "2006-01-02T15:04:05Z"
	jsonTimestampFormatLocal = "2006-01-02T15:04:05"
	jsonDateFormat           = "2006-01-02"
)

var packedTimeVariations = regexp.MustCompile("^([0-9]{8})([TZ])?([0-9]{6})?(Z)?$")

// DateTime is the interpreted form of a packed UNTIL sub-value. It covers
// the four shapes an UNTIL can take after normalization: a UTC or floating
// date-time, and a UTC or floating date.
type DateTime struct {
	t      time.Time
	isDate bool
	utc    bool
}

// ParseDateTime reads a packed date or date-time, e.g. "20240101T000000Z",
// "20240101T000000", "20240101Z" or "20240101". Anything else fails with
// ErrMalformedTimestamp.
func ParseDateTime(packed string) (DateTime, error) {
	matched := packedTimeVariations.FindStringSubmatch(packed)
	if matched == nil {
		return DateTime{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, packed)
	}
	dateStr := matched[1]
	tOrZGrp := matched[2]
	timeGrp := matched[3]
	zGrp := matched[4]

	var (
		t   time.Time
		err error
	)
	switch {
	case tOrZGrp == "T" && timeGrp != "" && zGrp == "Z":
		t, err = time.ParseInLocation(timestampFormatUtc, packed, time.UTC)
		if err != nil {
			break
		}
		return DateTime{t: t, utc: true}, nil
	case tOrZGrp == "T" && timeGrp != "" && zGrp == "":
		t, err = time.ParseInLocation(timestampFormatLocal, packed, time.Local)
		if err != nil {
			break
		}
		return DateTime{t: t}, nil
	case tOrZGrp == "Z" && timeGrp == "" && zGrp == "":
		t, err = time.ParseInLocation(dateFormatUtc, packed, time.UTC)
		if err != nil {
			break
		}
		return DateTime{t: t, isDate: true, utc: true}, nil
	case tOrZGrp == "" && timeGrp == "" && zGrp == "":
		t, err = time.ParseInLocation(dateFormatLocal, dateStr, time.Local)
		if err != nil {
			break
		}
		return DateTime{t: t, isDate: true}, nil
	}
	return DateTime{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, packed)
}

// Time returns the parsed instant.
func (dt DateTime) Time() time.Time {
	return dt.t
}

// IsDate reports whether the value is a bare date without a time component.
func (dt DateTime) IsDate() bool {
	return dt.isDate
}

// IsUTC reports whether the value carried a "Z" suffix.
func (dt DateTime) IsUTC() bool {
	return dt.utc
}

// JSONValue returns the interchange scalar for this value: an expanded
// RFC 3339-shaped date-time, or a dashed date for bare dates.
func (dt DateTime) JSONValue() string {
	if dt.isDate {
		return dt.t.Format(jsonDateFormat)
	}
	if dt.utc {
		return dt.t.Format(jsonTimestampFormatUtc)
	}
	return dt.t.Format(jsonTimestampFormatLocal)
}

// String returns the packed form back out.
func (dt DateTime) String() string {
	switch {
	case dt.isDate && dt.utc:
		return dt.t.Format(dateFormatUtc)
	case dt.isDate:
		return dt.t.Format(dateFormatLocal)
	case dt.utc:
		return dt.t.Format(timestampFormatUtc)
	default:
		return dt.t.Format(timestampFormatLocal)
	}
}
