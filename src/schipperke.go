package schipperke

// Project-wide constants for the receive chain.

/*
 * The rtl_tcp front end is expected to be tuned to 162.000 MHz with a
 * sample rate of 300 kHz:
 *
 *	$ rtl_tcp -f 162e6 -s 300000 -a 127.0.0.1 -p 2345 -g 48.0
 *
 * The two AIS channels sit 25 kHz either side of the tune frequency:
 * AIS 1 at 161.975 MHz and AIS 2 at 162.025 MHz.
 */

const SOURCE_RATE = 300000 // Samples per second from the front end.

const NIQ = 300000 // I/Q pairs per buffer.  One buffer per second.

const BAUD = 9600 // AIS is GMSK at 9600 Bd.

/*
 * Decimation plan.  300 kHz / 3 = 100 kHz puts the channel spacing at
 * exactly a quarter of the sample rate, so the channel split is four
 * trivial complex rotations.  The final decimation takes each channel
 * down to 50 kHz for demodulation.
 *
 * DCM has been observed to work at 1 and 3 as well, but the second
 * filter kernel and the margins below are sized for 2.
 */

const DCM = 2

/*
 * FIR kernels are FL taps long and their coefficients carry a factor
 * of 2^20; outputs are renormalized by >> 19 (a net gain of 2).
 *
 * The decimators leave a few output samples unproduced at the end of
 * each buffer because the symmetric kernel needs look-ahead.
 */

const FL = 31

const DECIM3_TRIM = 10 // Outputs not produced at the tail of the /3 stage.
const DECIM8_TRIM = 15 // Outputs not produced at the tail of the /DCM stage.

/*
 * HDLC synchronisation pattern: 24 bits of alternating preamble
 * followed by the 0x7E flag, expressed in the NRZI symbol domain.
 */

const PATTERN_LEN = 32

/*
 * Empirical thresholds, carried over unchanged from operational use.
 *
 * A burst is declared when CARRIER_RUN consecutive power samples are
 * at or above CARRIER_POWER_MIN (amplitude 4).  A frame in progress is
 * abandoned when power drops below TAIL_POWER_MIN (amplitude 2).
 * After a failed synchronisation the scanner skips ahead by
 * SKIP_SYMBOLS symbol periods, roughly one maximum-length frame.
 */

const CARRIER_RUN = 100
const CARRIER_POWER_MIN = 4 * 4
const TAIL_POWER_MIN = 2 * 2
const SYNC_SCAN_SYMBOLS = 20
const SKIP_SYMBOLS = 220

/*
 * No point decoding into a tail too short to hold even the shortest
 * AIS frame plus its FCS.
 */

const TAIL_GUARD = 500

/*
 * Frame buffer.  The first 4 octets hold the decoded preamble tail and
 * opening flag, so the message body always starts at octet 4.
 */

const FRAME_HEADER_OCTETS = 4
const MAX_FRAME_OCTETS = 264

/*
 * Message body lengths in octets, per ITU-R M.1371-5.  Message 5 is
 * 424 bits; everything else we handle is 168 bits.
 */

const MSG5_BODY_OCTETS = 53
const MSG_BODY_OCTETS = 21
