package schipperke

// Terminal color control for the decoded message stream.

import (
	"fmt"
	"io"
)

type text_color_e int

const (
	TEXT_COLOR_INFO    text_color_e = iota /* plain */
	TEXT_COLOR_ERROR                       /* red */
	TEXT_COLOR_REC                         /* green - position reports */
	TEXT_COLOR_DECODED                     /* blue - static & voyage data */
	TEXT_COLOR_DEBUG                       /* dark green */
)

var text_color_codes = map[text_color_e]string{
	TEXT_COLOR_INFO:    "\x1b[0m",
	TEXT_COLOR_ERROR:   "\x1b[1;31m",
	TEXT_COLOR_REC:     "\x1b[32m",
	TEXT_COLOR_DECODED: "\x1b[34m",
	TEXT_COLOR_DEBUG:   "\x1b[2;32m",
}

var _text_color_enabled bool

func text_color_init(enabled bool) {
	_text_color_enabled = enabled
}

// TextColorInit is the exported entry used by the CLI.

func TextColorInit(enabled bool) {
	text_color_init(enabled)
}

// text_color_set writes the escape sequence for the given class, or
// nothing at all when coloring is off (the default, so sinks that are
// files or pipes see the bare lines).

func text_color_set(w io.Writer, color text_color_e) {
	if !_text_color_enabled {
		return
	}
	fmt.Fprint(w, text_color_codes[color])
}
