package event

import (
	"errors"
	"fmt"

	"github.com/go-faster/jx"
)

// ErrMalformed reports a payload that is not a valid JSON object.
var ErrMalformed = errors.New("event: malformed payload")

// MaxEncodedSize bounds the encoded form of any event. Four integer fields fit
// a single datagram with a lot of room to spare; there is no fragmentation.
const MaxEncodedSize = 512

// Encode serializes an event as a flat JSON object with the four wire fields
// type, time, number and value.
func Encode(ev Event) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("type")
	e.Int(int(ev.Kind))
	e.FieldStart("time")
	e.UInt32(ev.Time)
	e.FieldStart("number")
	e.Int(ev.Number)
	e.FieldStart("value")
	e.Int32(ev.Value)
	e.ObjEnd()
	return e.Bytes()
}

// Decode parses a wire payload. Unknown fields are skipped and missing fields
// default to zero; a partial record is still a usable event. Only payloads
// that are not a JSON object at all fail, with an error wrapping ErrMalformed.
func Decode(data []byte) (Event, error) {
	var ev Event
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "type":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			ev.Kind = Kind(v)
		case "time":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			ev.Time = uint32(v)
		case "number":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			ev.Number = int(v)
		case "value":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			ev.Value = int32(v)
		default:
			return d.Skip()
		}
		return nil
	})
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ev, nil
}
