package recur

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMissingFreqNoRepair(t *testing.T) {
	r := NewRecur()
	r.SetParts([]RulePart{{Name: PartByDay, Value: Scalar("1")}})

	result := r.Validate(false)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, LevelError, result.Diagnostics[0].Level)
	assert.Contains(t, result.Diagnostics[0].Message, PartFreq)
	assert.Same(t, r, result.Diagnostics[0].Value)
	assert.False(t, result.RequiresRemoval)
	assert.False(t, result.Ok())

	// Check-only mode never mutates.
	assert.Equal(t, "BYDAY=1", r.GetValue())
}

func TestValidateEmptyValueRepair(t *testing.T) {
	r := NewRecur()
	r.SetParts([]RulePart{
		{Name: PartFreq, Value: Scalar("MONTHLY")},
		{Name: PartCount, Value: Scalar("")},
	})

	result := r.Validate(true)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, PartCount)
	assert.False(t, result.RequiresRemoval)

	// The empty COUNT is gone and the survivors were renormalized.
	assert.Equal(t, "FREQ=MONTHLY", r.GetValue())
	assert.False(t, r.HasPart(PartCount))
}

func TestValidateEmptyValueNoRepair(t *testing.T) {
	r := NewRecur()
	r.SetParts([]RulePart{
		{Name: PartFreq, Value: Scalar("MONTHLY")},
		{Name: PartCount, Value: Scalar("")},
	})

	result := r.Validate(false)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, PartCount)
	assert.Equal(t, "FREQ=MONTHLY;COUNT=", r.GetValue())
	assert.True(t, result.Ok())
}

// The empty-value severity depends on the mode: level 1 when checking, level
// 3 when repairing. That mapping is preserved from the historical behavior
// on purpose; this test pins it so any change is a deliberate one.
func TestValidateEmptyValueSeverityByMode(t *testing.T) {
	makeValue := func() *Recur {
		r := NewRecur()
		r.SetParts([]RulePart{
			{Name: PartFreq, Value: Scalar("DAILY")},
			{Name: PartByHour, Value: List()},
		})
		return r
	}

	checkOnly := makeValue().Validate(false)
	require.Len(t, checkOnly.Diagnostics, 1)
	assert.Equal(t, LevelRepaired, checkOnly.Diagnostics[0].Level)

	repairing := makeValue().Validate(true)
	require.Len(t, repairing.Diagnostics, 1)
	assert.Equal(t, LevelError, repairing.Diagnostics[0].Level)
}

func TestValidateRemovalRequired(t *testing.T) {
	r := NewRecur()
	r.SetParts([]RulePart{{Name: PartCount, Value: Scalar("")}})

	result := r.Validate(true)
	require.Len(t, result.Diagnostics, 2)
	assert.Contains(t, result.Diagnostics[0].Message, PartCount)
	assert.Contains(t, result.Diagnostics[1].Message, PartFreq)
	assert.Equal(t, LevelRepaired, result.Diagnostics[1].Level)
	assert.True(t, result.RequiresRemoval)
	assert.False(t, result.Ok())

	// The surviving (empty) part set was still written back.
	assert.Equal(t, "", r.GetValue())
}

func TestValidateEmptyFreq(t *testing.T) {
	// An empty FREQ only counts as missing once repair has removed it; in
	// check-only mode the key is still present, so the FREQ rule stays quiet.
	r := NewRecur()
	r.SetParts([]RulePart{{Name: PartFreq, Value: Scalar("")}})

	checkOnly := r.Validate(false)
	require.Len(t, checkOnly.Diagnostics, 1)
	assert.Contains(t, checkOnly.Diagnostics[0].Message, PartFreq)
	assert.False(t, strings.Contains(checkOnly.Diagnostics[0].Message, "required"))

	repairing := r.Validate(true)
	require.Len(t, repairing.Diagnostics, 2)
	assert.True(t, repairing.RequiresRemoval)
	assert.Equal(t, "", r.GetValue())
}

func TestValidateCleanRule(t *testing.T) {
	r := NewRecur()
	require.NoError(t, r.SetText("FREQ=WEEKLY;BYDAY=MO,WE"))

	result := r.Validate(true)
	assert.Empty(t, result.Diagnostics)
	assert.False(t, result.RequiresRemoval)
	assert.True(t, result.Ok())
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,WE", r.GetValue())
}
