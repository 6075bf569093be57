// Package jstest turns the line output of jstest --event into events.
package jstest

import (
	"regexp"
	"strconv"

	"joyrelay/event"
)

// linePattern matches jstest --event output, e.g.
//
//	Event: type 2, time 3656941, number 1, value -171
var linePattern = regexp.MustCompile(
	`Event: type\s+(\d+),\s+time\s+(\d+),\s+number\s+(\d+),\s+value\s+(-?\d+)`)

// ParseLine extracts an event from one line of producer output. Lines that do
// not match the pattern are not an error; they are simply not events.
func ParseLine(line string) (event.Event, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return event.Event{}, false
	}
	kind, _ := strconv.Atoi(m[1])
	t, _ := strconv.ParseUint(m[2], 10, 32)
	number, _ := strconv.Atoi(m[3])
	value, _ := strconv.ParseInt(m[4], 10, 32)
	return event.Event{
		Kind:   event.Kind(kind),
		Time:   uint32(t),
		Number: number,
		Value:  int32(value),
	}, true
}
