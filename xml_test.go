package recur

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteXMLValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "list parts repeat the element",
			input: "FREQ=WEEKLY;BYDAY=MO,WE",
			want:  "<recur><freq>WEEKLY</freq><byday>MO</byday><byday>WE</byday></recur>",
		},
		{
			name:  "typed count and until",
			input: "FREQ=DAILY;COUNT=5;UNTIL=2024-12-31T00:00:00Z",
			want:  "<recur><freq>DAILY</freq><count>5</count><until>2024-12-31T00:00:00Z</until></recur>",
		},
		{
			name:  "empty rule",
			input: "",
			want:  "<recur></recur>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecur()
			require.NoError(t, r.SetText(tt.input))

			var b bytes.Buffer
			require.NoError(t, r.WriteXMLValue(xml.NewEncoder(&b)))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestWriteXMLValueMalformedUntil(t *testing.T) {
	r := NewRecur()
	require.NoError(t, r.SetText("FREQ=DAILY;UNTIL=NOTATIME"))

	var b bytes.Buffer
	err := r.WriteXMLValue(xml.NewEncoder(&b))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}
