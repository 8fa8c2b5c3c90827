package schipperke

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
 * End to end: modulate a frame into an rtl_tcp style byte buffer at
 * 300 kHz and run it through the whole chain.
 */

const test_pairs = 60000      // 0.2 s of samples; plenty for one frame.
const test_burst_start = 10000 // Sample index of the burst.

func run_pipeline(t *testing.T, buff []byte) []string {
	t.Helper()

	var r = NewReceiver()
	var out bytes.Buffer
	require.NoError(t, r.Run(bytes.NewReader(buff), &out))

	var lines = strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2, "header expected")
	assert.Equal(t, " MID    MMSI      longitude   latitude     speed    course", lines[0])

	// Drop header, rule and the trailing empty split.
	var messages []string
	for _, line := range lines[2:] {
		if len(line) > 0 {
			messages = append(messages, line)
		}
	}
	return messages
}

func TestEndToEndPositionChannel1(t *testing.T) {
	var body = ais_pack_position(1, 123456789, -74.006, 40.7128, 123, 875)
	var buff = GenBuffer(test_pairs)
	gen_iq_frame(buff, test_burst_start, 1, body)

	var messages = run_pipeline(t, buff)
	require.Len(t, messages, 1)
	assert.Equal(t,
		"  1  123456789   -74.006000   40.712800   23 km/h    87.5",
		messages[0])
}

func TestEndToEndCorruptedFrame(t *testing.T) {
	var body = ais_pack_position(1, 123456789, -74.006, 40.7128, 123, 875)
	var symbols = hdlc_frame_symbols(body, false)

	// One flipped symbol in the payload; the FCS must catch it.
	symbols[90] ^= 1

	var buff = GenBuffer(test_pairs)
	gen_iq_burst(buff, test_burst_start, 1, symbols)

	var messages = run_pipeline(t, buff)
	assert.Empty(t, messages)
}

func TestEndToEndBaseStationChannel2(t *testing.T) {
	var body = ais_pack_base_station(2275200, 2024, 3, 14, 15, 9, 26, 0, 0)
	var buff = GenBuffer(test_pairs)
	gen_iq_frame(buff, test_burst_start, 2, body)

	var messages = run_pipeline(t, buff)
	require.Len(t, messages, 1)
	assert.Equal(t,
		"  4    2275200     0.000000    0.000000  2024/3/14  15:09:26 ",
		messages[0])
}

func TestEndToEndStatic(t *testing.T) {
	var body = ais_pack_static(123456789, "WDE5432", "EVER GIVEN", "ROTTERDAM")
	var buff = GenBuffer(test_pairs)
	gen_iq_frame(buff, test_burst_start, 1, body)

	var messages = run_pipeline(t, buff)
	require.Len(t, messages, 1)
	assert.Equal(t,
		"  5  123456789  WDE5432 << EVER GIVEN@@@@@@@@@@ >> ROTTERDAM@@@@@@@@@@@",
		messages[0])
}

func TestEndToEndUnknownID(t *testing.T) {
	var body = ais_pack_unknown(7, 987654321)
	var buff = GenBuffer(test_pairs)
	gen_iq_frame(buff, test_burst_start, 1, body)

	var messages = run_pipeline(t, buff)
	require.Len(t, messages, 1)
	assert.Equal(t, "  7  987654321  Unknown message ID", messages[0])
}

func TestEndToEndDCBuffer(t *testing.T) {
	var buff = GenBuffer(test_pairs)
	var messages = run_pipeline(t, buff)
	assert.Empty(t, messages)
}

func TestEndToEndGaussianNoise(t *testing.T) {
	var rng = rand.New(rand.NewSource(1))
	var buff = make([]byte, 2*test_pairs)
	for i := range buff {
		var v = 128 + int(math.Round(rng.NormFloat64()*2))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		buff[i] = byte(v)
	}

	var messages = run_pipeline(t, buff)
	assert.Empty(t, messages)
}

func TestEndToEndBothChannelsOrdered(t *testing.T) {
	// One frame on each channel in the same buffer: channel 1 output
	// must come first regardless of burst position.
	var buff = GenBuffer(test_pairs)
	gen_iq_frame(buff, test_burst_start+20000, 1, ais_pack_position(1, 111111111, 1, 2, 10, 100))
	gen_iq_frame(buff, test_burst_start, 2, ais_pack_position(2, 222222222, 3, 4, 20, 200))

	var messages = run_pipeline(t, buff)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "111111111")
	assert.Contains(t, messages[1], "222222222")
}

func TestEndToEndShipStoreFromStatic(t *testing.T) {
	var buff = GenBuffer(test_pairs)
	gen_iq_frame(buff, test_burst_start, 1, ais_pack_static(123456789, "WDE5432", "EVER GIVEN", "ROTTERDAM"))

	var r = NewReceiver()
	var out bytes.Buffer
	require.NoError(t, r.Run(bytes.NewReader(buff), &out))

	assert.Equal(t, "EVER GIVEN, WDE5432, dest. ROTTERDAM", r.ships.comment(123456789))
}
