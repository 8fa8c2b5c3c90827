package schipperke

/*------------------------------------------------------------------
 *
 * Purpose:     Fixed-point FIR kernels and the decimation stages.
 *
 * Description:	Two anti-alias kernels, both FL taps, symmetric, with
 *		coefficients scaled by 2^20.  Only the center tap and
 *		one half are stored; fir_sample applies the mirror.
 *
 *		h3 stops at a third of its input rate and guards the
 *		300 kHz -> 100 kHz decimation.  h8 stops at 6.25 kHz
 *		and guards the 100 kHz -> 50 kHz decimation.
 *
 *----------------------------------------------------------------*/

var h3 = [FL]int{
	349525, 288373, 143167, 0, -69570, -54470, 0, 36711, 30962, 0,
	-22642, -19513, 0, 14571, 12587, 0, -9335, -7997, 0, 5785,
	4877, 0, -3395, -2804, 0, 1878, 1532, 0, -1044, -891, 0,
}

var h8 = [FL]int{
	131072, 127428, 116895, 100620, 80332, 58108, 36092, 16222, 0, -11660,
	-18487, -20817, -19463, -15544, -10278, -4797, 0, 3534, 5569, 6171,
	5631, 4356, 2772, 1239, 0, -830, -1251, -1339, -1205, -951,
	-648,
}

/*------------------------------------------------------------------
 *
 * Name:        fir_sample
 *
 * Purpose:     One output sample of the symmetric FIR.
 *
 * Inputs:	x	- Input window.  The kernel is centered on
 *			  x[FL-1], so 2*FL-1 samples are read.
 *
 *		h	- Center tap plus one half of the kernel.
 *
 * Returns:	Convolution result renormalized by >> 19.
 *
 *----------------------------------------------------------------*/

func fir_sample(x []int, h *[FL]int) int {
	var s = h[0] * x[FL-1]
	for i := 1; i < FL; i++ {
		s += h[i] * (x[FL-1-i] + x[FL-1+i])
	}
	return s >> 19
}

// decimate3 low-passes and downsamples a stream by 3, in place.
// n is the input length; returns the output length n/3.  The last
// DECIM3_TRIM of those outputs are not produced (no look-ahead left)
// and are left as they were.

func decimate3(x []int, n int) int {
	var out = n / 3
	for i := 0; i < out-DECIM3_TRIM; i++ {
		x[i] = fir_sample(x[3*i:], &h3)
	}
	return out
}

// decimate_dcm low-passes to 6.25 kHz and downsamples by DCM, in place.

func decimate_dcm(x []int, n int) int {
	var out = n / DCM
	for i := 0; i < out-DECIM8_TRIM; i++ {
		x[i] = fir_sample(x[DCM*i:], &h8)
	}
	return out
}
