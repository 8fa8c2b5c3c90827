package schipperke

/*------------------------------------------------------------------
 *
 * Purpose:     Complex baseband conditioning and FM/AM demodulation.
 *
 *		iq_decode	raw rtl_tcp bytes to signed I/Q.
 *		channel_split	derive the two AIS channels.
 *		fm_am_demod	instantaneous frequency and power.
 *
 *----------------------------------------------------------------*/

/*------------------------------------------------------------------
 *
 * Name:        iq_decode
 *
 * Purpose:     Unpack an interleaved unsigned 8-bit I/Q buffer into
 *		two signed streams.
 *
 * Inputs:	buff	- 2*n bytes, even indexes I, odd indexes Q,
 *			  zero at byte value 128.
 *
 * Outputs:	I, Q	- n signed samples each, in [-128, +127].
 *
 * Description:	Lossless bias removal.  No filtering happens here.
 *
 *----------------------------------------------------------------*/

func iq_decode(buff []byte, I []int, Q []int, n int) {
	for i := 0; i < n; i++ {
		I[i] = int(buff[2*i]) - 128
		Q[i] = int(buff[2*i+1]) - 128
	}
}

/*------------------------------------------------------------------
 *
 * Name:        channel_split
 *
 * Purpose:     Split the 100 kHz baseband into the two AIS channels.
 *
 * Inputs:	I1, Q1	- Baseband centered on 162.000 MHz.
 *			  Overwritten with the AIS 1 stream.
 *
 * Outputs:	I2, Q2	- The AIS 2 stream.
 *
 * Description:	At 100 kHz the 25 kHz channel offset is exactly a
 *		quarter of the sample rate, so mixing is a repeating
 *		four-phase rotation.  AIS 2 (at +25 kHz) is brought to
 *		DC by rotating -25 kHz; negating every other sample of
 *		that result shifts a further half rate, which lands
 *		AIS 1 (at -25 kHz) on DC as well.
 *
 *		The eight assignments below encode those two
 *		superimposed rotations.  Any single sign error quietly
 *		misplaces one channel, so they are transcribed as a
 *		table rather than computed.
 *
 *----------------------------------------------------------------*/

func channel_split(I1, Q1, I2, Q2 []int, n int) {
	for i := 0; i < n; i += 4 {
		I2[i+0] = I1[i+0]
		Q2[i+0] = Q1[i+0]
		I2[i+1] = Q1[i+1]
		Q2[i+1] = -I1[i+1]
		I2[i+2] = -I1[i+2]
		Q2[i+2] = -Q1[i+2]
		I2[i+3] = -Q1[i+3]
		Q2[i+3] = I1[i+3]

		I1[i+1] = -I2[i+1]
		Q1[i+1] = -Q2[i+1]
		I1[i+2] = I2[i+2]
		Q1[i+2] = Q2[i+2]
		I1[i+3] = -I2[i+3]
		Q1[i+3] = -Q2[i+3]
	}
}

/*------------------------------------------------------------------
 *
 * Name:        fm_am_demod
 *
 * Purpose:     Demodulate one channel in place.
 *
 * Inputs:	I, Q	- Complex stream at the final sample rate.
 *
 * Outputs:	Q[i] becomes the frequency stream:
 *		    F[i] = Q[i+1]*I[i] - Q[i]*I[i+1]
 *		the cross product of consecutive samples, whose sign
 *		is the instantaneous frequency direction.
 *
 *		I[i] becomes the power stream:
 *		    A[i] = I[i+1]^2 + Q[i+1]^2
 *		used downstream only as a signal-presence gate.
 *
 * Description:	No normalization.  The bit slicer cares only about the
 *		sign of F and comparisons of A against fixed
 *		thresholds, and the sync correlator is insensitive to
 *		overall scale.
 *
 *----------------------------------------------------------------*/

func fm_am_demod(I, Q []int, n int) {
	for i := 0; i < n-1; i++ {
		Q[i] = Q[i+1]*I[i] - Q[i]*I[i+1]
		I[i] = I[i+1]*I[i+1] + Q[i+1]*Q[i+1]
	}
}
