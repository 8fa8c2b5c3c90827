package schipperke

/*------------------------------------------------------------------
 *
 * Purpose:	Sample source: the rtl_tcp byte stream.
 *
 * Description:	rtl_tcp sends a 12-byte dongle information header
 *		("RTL0", tuner type, gain count) and then nothing but
 *		raw interleaved unsigned 8-bit I/Q.  We consume the
 *		header here so the receiver sees only samples.
 *
 *		Tuning, gain and sample rate are set on the rtl_tcp
 *		command line, not over the connection:
 *
 *		  $ rtl_tcp -f 162e6 -s 300000 -a 127.0.0.1 -p 2345 -g 48.0
 *
 *------------------------------------------------------------------*/

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/charmbracelet/log"
)

/*-------------------------------------------------------------------
 *
 * Name:        IQOpen
 *
 * Purpose:    	Connect to an rtl_tcp server and return the sample
 *		stream.
 *
 * Inputs:	host, port	- Where rtl_tcp is listening.
 *
 * Returns:	The connection, positioned at the first sample byte.
 *
 *--------------------------------------------------------------------*/

func IQOpen(host string, port int) (io.ReadCloser, error) {
	var addr = net.JoinHostPort(host, fmt.Sprintf("%d", port))

	var conn, dialErr = net.Dial("tcp", addr)
	if dialErr != nil {
		log.Error("connection failed - did you run rtl_tcp -f 162e6 -s 300000 -a 127.0.0.1 -p 2345 -g 48.0 ?")
		return nil, fmt.Errorf("connect %s: %w", addr, dialErr)
	}

	var header [12]byte
	if _, err := io.ReadFull(conn, header[:]); err != nil {
		conn.Close()
		return nil, fmt.Errorf("read rtl_tcp header: %w", err)
	}

	if string(header[0:4]) != "RTL0" {
		// Not fatal; a replayed capture may start straight into samples.
		log.Warn("no RTL0 header on connection", "got", fmt.Sprintf("%q", header[0:4]))
	} else {
		log.Info("connected",
			"addr", addr,
			"tuner", binary.BigEndian.Uint32(header[4:8]),
			"gains", binary.BigEndian.Uint32(header[8:12]))
	}

	return conn, nil
}
