// Package audioprobe reads clip durations from linear-PCM audio containers.
//
// The probe only touches header metadata: duration is the declared frame
// count divided by the sample rate, so no samples are decoded. Read and
// parse failures are logged with the offending filename and surfaced as
// ordinary errors the caller treats as a per-file skip.
package audioprobe
