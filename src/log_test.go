package schipperke

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLogSingleFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "ais.csv")
	var l = message_log_init(false, path, "")
	defer l.term()

	var ships = new_ship_store()

	// A message 5 first, so the position row can carry the comment.
	var m5 = ais_unpack(ais_pack_static(123456789, "WDE5432", "EVER GIVEN", "ROTTERDAM"))
	ships.save(m5.mmsi, trim_field_text(m5.shipname), trim_field_text(m5.callsign), trim_field_text(m5.destination))
	l.write(1, m5, ships)

	var m1 = ais_unpack(ais_pack_position(1, 123456789, -74.006, 40.7128, 123, 875))
	l.write(2, m1, ships)

	var data, readErr = os.ReadFile(path)
	require.NoError(t, readErr)

	var lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, message_log_header, lines[0])

	assert.True(t, strings.HasPrefix(lines[1], "1,"), "channel column")
	assert.Contains(t, lines[1], "WDE5432")
	assert.Contains(t, lines[1], "EVER GIVEN")

	assert.True(t, strings.HasPrefix(lines[2], "2,"), "channel column")
	assert.Contains(t, lines[2], "123456789")
	assert.Contains(t, lines[2], "-74.006000")
	assert.Contains(t, lines[2], "40.712800")
	assert.Contains(t, lines[2], "dest. ROTTERDAM")
}

func TestMessageLogDailyNames(t *testing.T) {
	var dir = t.TempDir()
	var l = message_log_init(true, dir, "")
	defer l.term()

	var ships = new_ship_store()
	l.write(1, ais_unpack(ais_pack_position(1, 123456789, 0, 0, 0, 0)), ships)

	var entries, globErr = filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, globErr)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0], ".log"))
}

func TestMessageLogDisabled(t *testing.T) {
	var l = message_log_init(false, "", "")
	// Must be a quiet no-op.
	l.write(1, ais_unpack(ais_pack_position(1, 1, 0, 0, 0, 0)), new_ship_store())
	l.term()
}

func TestMessageLogAppendSkipsHeader(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "ais.csv")
	var ships = new_ship_store()

	var l = message_log_init(false, path, "")
	l.write(1, ais_unpack(ais_pack_position(1, 1, 0, 0, 0, 0)), ships)
	l.term()

	var l2 = message_log_init(false, path, "")
	l2.write(1, ais_unpack(ais_pack_position(1, 2, 0, 0, 0, 0)), ships)
	l2.term()

	var data, _ = os.ReadFile(path)
	assert.Equal(t, 1, strings.Count(string(data), message_log_header))
}
