package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joyrelay/event"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		ev   event.Event
	}{
		{"button press", event.Event{Kind: event.KindButton, Time: 1000, Number: 0, Value: 1}},
		{"button release", event.Event{Kind: event.KindButton, Time: 1001, Number: 14, Value: 0}},
		{"axis negative", event.Event{Kind: event.KindAxis, Time: 3656941, Number: 1, Value: -171}},
		{"axis min", event.Event{Kind: event.KindAxis, Time: 42, Number: 5, Value: -32767}},
		{"axis max", event.Event{Kind: event.KindAxis, Time: 42, Number: 4, Value: 32767}},
		{"init flagged", event.Event{Kind: event.KindAxis | event.KindInit, Time: 1, Number: 3, Value: 0}},
		{"unknown kind passes through", event.Event{Kind: 0x42, Time: 9, Number: 2, Value: 7}},
		{"out of native range", event.Event{Kind: event.KindAxis, Time: 5, Number: 4, Value: 40000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := event.Encode(tc.ev)
			assert.LessOrEqual(t, len(data), event.MaxEncodedSize)

			got, err := event.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tc.ev, got)
		})
	}
}

func TestDecodeMissingFieldsDefaultToZero(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    event.Event
	}{
		{
			"no value",
			`{"type": 1, "time": 2, "number": 3}`,
			event.Event{Kind: event.KindButton, Time: 2, Number: 3, Value: 0},
		},
		{
			"only type",
			`{"type": 2}`,
			event.Event{Kind: event.KindAxis},
		},
		{
			"empty object",
			`{}`,
			event.Event{},
		},
		{
			"only value",
			`{"value": -5}`,
			event.Event{Value: -5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := event.Decode([]byte(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	payload := `{"type": 1, "time": 7, "number": 2, "value": 1, "extra": "x", "nested": {"a": [1, 2]}}`
	got, err := event.Decode([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, event.Event{Kind: event.KindButton, Time: 7, Number: 2, Value: 1}, got)
}

func TestDecodeMalformed(t *testing.T) {
	for _, payload := range []string{
		"",
		"not json at all",
		`{"type": 1`,
		`[1, 2, 3]`,
		`42`,
		"\x00\x01\x02",
	} {
		_, err := event.Decode([]byte(payload))
		assert.ErrorIs(t, err, event.ErrMalformed, "payload %q", payload)
	}
}

func TestKindClassification(t *testing.T) {
	assert.True(t, event.KindButton.IsButton())
	assert.True(t, event.KindAxis.IsAxis())
	assert.True(t, (event.KindButton | event.KindInit).IsButton())
	assert.True(t, (event.KindAxis | event.KindInit).IsAxis())
	assert.False(t, event.Kind(0x42).IsButton())
	assert.False(t, event.Kind(0x42).IsAxis())

	assert.Equal(t, "button", event.KindButton.String())
	assert.Equal(t, "axis", (event.KindAxis | event.KindInit).String())
	assert.Equal(t, "other", event.Kind(9).String())
}
