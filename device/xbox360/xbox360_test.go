package xbox360_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joyrelay/device/xbox360"
	"joyrelay/pad"
)

func TestBuildReport(t *testing.T) {
	type testCase struct {
		name           string
		inputState     xbox360.InputState
		expectedReport []byte
	}

	cases := []testCase{
		{
			name:       "neutral",
			inputState: xbox360.InputState{},
			expectedReport: []byte{
				0x00, 0x14,
				0x00, 0x00,
				0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "buttons a+b",
			inputState: xbox360.InputState{
				Buttons: xbox360.ButtonA | xbox360.ButtonB,
			},
			expectedReport: []byte{
				0x00, 0x14,
				0x00, 0x30,
				0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "left stick",
			inputState: xbox360.InputState{
				LX: 1234,
				LY: -2345,
			},
			expectedReport: []byte{
				0x00, 0x14,
				0x00, 0x00,
				0x00, 0x00,
				0xD2, 0x04, 0xD7, 0xF6, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
		{
			name: "triggers",
			inputState: xbox360.InputState{
				LT: 0xFF,
				RT: 0x7F,
			},
			expectedReport: []byte{
				0x00, 0x14,
				0x00, 0x00,
				0xFF, 0x7F,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := tc.inputState.BuildReport()
			require.Len(t, report, xbox360.ReportSize)
			assert.Equal(t, tc.expectedReport, report)
		})
	}
}

func TestParseReportRoundTrip(t *testing.T) {
	st := xbox360.InputState{
		Buttons: xbox360.ButtonStart | xbox360.ButtonDPadLeft,
		LT:      200,
		RT:      10,
		LX:      -32767,
		LY:      32767,
		RX:      -1,
		RY:      1,
	}

	got, err := xbox360.ParseReport(st.BuildReport())
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestParseReportShort(t *testing.T) {
	_, err := xbox360.ParseReport(make([]byte, 10))
	assert.Error(t, err)
}

func TestSinkWritesReportPerCommit(t *testing.T) {
	var buf bytes.Buffer
	sink := xbox360.NewSink(&buf)

	sink.PressButton(pad.ButtonA)
	require.NoError(t, sink.Commit())
	require.Equal(t, xbox360.ReportSize, buf.Len())

	st, err := xbox360.ParseReport(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(xbox360.ButtonA), st.Buttons)

	buf.Reset()
	sink.SetLeftStick(1000, -1000)
	sink.SetLeftTrigger(255)
	require.NoError(t, sink.Commit())

	st, err = xbox360.ParseReport(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, int16(1000), st.LX)
	assert.Equal(t, int16(-1000), st.LY)
	assert.Equal(t, uint8(255), st.LT)
	assert.Equal(t, uint32(xbox360.ButtonA), st.Buttons, "buttons held across commits")
}

func TestSinkReleaseAndReset(t *testing.T) {
	var buf bytes.Buffer
	sink := xbox360.NewSink(&buf)

	sink.PressButton(pad.ButtonGuide)
	sink.PressButton(pad.ButtonDPadUp)
	sink.ReleaseButton(pad.ButtonGuide)
	assert.Equal(t, uint32(xbox360.ButtonDPadUp), sink.State().Buttons)

	sink.SetRightTrigger(99)
	require.NoError(t, sink.ResetToNeutral())
	assert.Equal(t, xbox360.InputState{}, sink.State())

	require.NoError(t, sink.Commit())
	st, err := xbox360.ParseReport(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, xbox360.InputState{}, st)
}
