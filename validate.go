package recur

import (
	"fmt"
)

// DiagnosticLevel grades validation findings.
type DiagnosticLevel int

const (
	// LevelRepaired marks a finding that the repair pass handles (or would
	// handle) without losing meaning.
	LevelRepaired DiagnosticLevel = 1
	// LevelWarning marks a finding that is tolerated but questionable.
	LevelWarning DiagnosticLevel = 2
	// LevelError marks a structural problem with the value.
	LevelError DiagnosticLevel = 3
)

// Diagnostic is one validation finding. Diagnostics are data, not errors;
// the caller decides whether any of them warrant escalation.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
	Value   *Recur
}

// ValidationResult is what Validate returns. RequiresRemoval is set when the
// repair pass concludes the whole value is beyond repair (no FREQ); the
// enclosing container, not this value, performs the actual detachment.
type ValidationResult struct {
	Diagnostics     []Diagnostic
	RequiresRemoval bool
}

// Ok reports whether the value passed with nothing worse than repaired
// findings and no removal request.
func (vr ValidationResult) Ok() bool {
	if vr.RequiresRemoval {
		return false
	}
	for _, d := range vr.Diagnostics {
		if d.Level > LevelRepaired {
			return false
		}
	}
	return true
}

// Validate checks the stored rule and, when repair is true, rewrites it with
// the offending parts removed. Two rules apply in order: every part bound to
// an empty value is reported (and removed in repair mode), then FREQ must
// still be present in what survived.
//
// The empty-value severity intentionally mirrors the historical behavior:
// level 1 when repair is off and level 3 when it is on, even though the
// opposite mapping would read more naturally. Callers keying off severity
// should use ValidationResult.Ok rather than comparing levels directly.
//
// Validate never returns an error and runs exactly one pass; repaired parts
// are written back through the normalizer once at the end.
func (r *Recur) Validate(repair bool) ValidationResult {
	var result ValidationResult
	working := make([]RulePart, 0, len(r.parts))
	for _, part := range r.parts {
		if part.Value.IsEmpty() {
			level := LevelRepaired
			if repair {
				level = LevelError
			}
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Level:   level,
				Message: fmt.Sprintf("invalid value for %s in %s", part.Name, r.ValueType()),
				Value:   r,
			})
			if repair {
				continue
			}
		}
		working = append(working, part)
	}
	if indexOfPart(working, PartFreq) < 0 {
		level := LevelError
		if repair {
			level = LevelRepaired
		}
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Level:   level,
			Message: fmt.Sprintf("%s is required in %s", PartFreq, r.ValueType()),
			Value:   r,
		})
		if repair {
			result.RequiresRemoval = true
		}
	}
	if repair {
		r.SetParts(working)
	}
	return result
}
