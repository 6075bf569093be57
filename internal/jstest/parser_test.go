package jstest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joyrelay/event"
	"joyrelay/internal/jstest"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want event.Event
		ok   bool
	}{
		{
			name: "axis event",
			line: "Event: type 2, time 3656941, number 1, value -171",
			want: event.Event{Kind: event.KindAxis, Time: 3656941, Number: 1, Value: -171},
			ok:   true,
		},
		{
			name: "button event",
			line: "Event: type 1, time 1000, number 0, value 1",
			want: event.Event{Kind: event.KindButton, Time: 1000, Number: 0, Value: 1},
			ok:   true,
		},
		{
			name: "init event",
			line: "Event: type 129, time 8, number 3, value 0",
			want: event.Event{Kind: event.KindButton | event.KindInit, Time: 8, Number: 3, Value: 0},
			ok:   true,
		},
		{
			name: "embedded in other output",
			line: "js: Event: type 2, time 5, number 4, value 32767 (trailing)",
			want: event.Event{Kind: event.KindAxis, Time: 5, Number: 4, Value: 32767},
			ok:   true,
		},
		{name: "banner line", line: "Driver version is 2.1.0."},
		{name: "empty line", line: ""},
		{name: "truncated", line: "Event: type 2, time 5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := jstest.ParseLine(tc.line)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
