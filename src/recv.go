package schipperke

/********************************************************************************
 *
 * Purpose:	The receiver: owns the scratch buffers, drives one
 *		buffer-sized sweep through the whole chain, and loops
 *		over buffers from the sample source.
 *
 *******************************************************************************/

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

/*
 * All DSP scratch is owned here and reused across buffers; nothing
 * survives from one buffer to the next.  The slices carry 2*FL extra
 * elements so the decimators' look-ahead windows stay in bounds right
 * up to their trim margins.
 */

type Receiver struct {
	i1, q1 []int // Full-rate, then AIS 1.
	i2, q2 []int // AIS 2, never longer than a third of the source.

	msg [MAX_FRAME_OCTETS]byte // Per-frame octet buffer.

	ships *ship_store
	mlog  *message_log

	w *bufio.Writer

	buffers int
}

func NewReceiver() *Receiver {
	var r = new(Receiver)
	r.i1 = make([]int, NIQ+2*FL)
	r.q1 = make([]int, NIQ+2*FL)
	r.i2 = make([]int, NIQ/3+2*FL)
	r.q2 = make([]int, NIQ/3+2*FL)
	r.ships = new_ship_store()
	return r
}

// SetMessageLog attaches an optional CSV log for decoded messages.

func (r *Receiver) SetMessageLog(l *message_log) {
	r.mlog = l
}

/*-------------------------------------------------------------------
 *
 * Name:        Run
 *
 * Purpose:    	Read buffers from the sample source until it closes,
 *		processing each one to completion.
 *
 * Inputs:	source	- Byte stream of interleaved unsigned 8-bit
 *			  I/Q at 300 kHz.  Usually an rtl_tcp
 *			  connection, but any reader works.
 *
 *		sink	- Line-oriented text output for decoded
 *			  messages.  Flushed once per buffer.
 *
 * Returns:	nil when the source closes cleanly, the read error
 *		otherwise.
 *
 *--------------------------------------------------------------------*/

func (r *Receiver) Run(source io.Reader, sink io.Writer) error {
	r.w = bufio.NewWriterSize(sink, 4096)

	ais_write_header(r.w)
	r.w.Flush()

	var buff = make([]byte, 2*NIQ)

	for {
		var n, readErr = io.ReadFull(source, buff)
		if n > 1 {
			r.process_buff(n/2, buff)
			r.w.Flush()
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
				log.Info("sample source closed", "buffers", r.buffers)
				return nil
			}
			return fmt.Errorf("sample source: %w", readErr)
		}
	}
}

/*-------------------------------------------------------------------
 *
 * Name:        process_buff
 *
 * Purpose:    	One sweep: condition the baseband, split the channels,
 *		demodulate, then run the frame decoder over each
 *		channel in turn.
 *
 * Inputs:	n	- Number of I/Q pairs in buff.
 *
 *		buff	- Raw interleaved bytes from the source.
 *
 * Description:	AIS 1 is always processed before AIS 2, so output
 *		within a buffer is channel 1 first, each channel in
 *		sample-time order.
 *
 *--------------------------------------------------------------------*/

func (r *Receiver) process_buff(n int, buff []byte) {
	var rate = SOURCE_RATE

	iq_decode(buff, r.i1, r.q1, n)

	// 300 kHz -> 100 kHz with anti-aliasing.
	n /= 3
	rate /= 3
	decimate3(r.i1, n*3)
	decimate3(r.q1, n*3)

	channel_split(r.i1, r.q1, r.i2, r.q2, n)

	// 100 kHz -> 50 kHz with the 6.25 kHz low-pass.
	n /= DCM
	rate /= DCM
	decimate_dcm(r.i1, n*DCM)
	decimate_dcm(r.q1, n*DCM)
	decimate_dcm(r.i2, n*DCM)
	decimate_dcm(r.q2, n*DCM)

	// After this, the I arrays hold power and the Q arrays hold
	// instantaneous frequency.
	fm_am_demod(r.i1, r.q1, n)
	fm_am_demod(r.i2, r.q2, n)

	for i := 0; i < n-TAIL_GUARD; {
		i = r.ais_decode(n, rate, r.i1, r.q1, 1, i)
	}
	for i := 0; i < n-TAIL_GUARD; {
		i = r.ais_decode(n, rate, r.i2, r.q2, 2, i)
	}

	r.buffers++
	metric_buffers.Inc()
}

// emit writes one decoded message to the sink and the side channels
// (ship store, CSV log, metrics).

func (r *Receiver) emit(channel int, m *ais_msg_t) {
	switch m.msg_type {
	case 1, 2, 3, 4:
		text_color_set(r.w, TEXT_COLOR_REC)
	case 5:
		text_color_set(r.w, TEXT_COLOR_DECODED)
	default:
		text_color_set(r.w, TEXT_COLOR_INFO)
	}

	ais_format(r.w, m)
	text_color_set(r.w, TEXT_COLOR_INFO)

	if m.msg_type == 5 {
		r.ships.save(m.mmsi, trim_field_text(m.shipname), trim_field_text(m.callsign), trim_field_text(m.destination))
	}

	metric_frames.WithLabelValues(fmt.Sprintf("%d", channel)).Inc()
	if m.msg_type < 1 || m.msg_type > 5 {
		metric_unknown.Inc()
	}

	if r.mlog != nil {
		r.mlog.write(channel, m, r.ships)
	}
}
