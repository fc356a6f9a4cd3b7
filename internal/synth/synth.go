// Package synth generates kick drum hits as normalized float sample
// buffers. A hit is a sine oscillator whose frequency glides exponentially
// downward, shaped by an exponential decay envelope, with a short noise
// burst overlaid at the start for punch.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultSampleRate is the sample rate used when none is configured.
	DefaultSampleRate = 44100

	// clickDuration is the length of the noise transient in seconds.
	clickDuration = 0.005

	// clickStdDev is the standard deviation of the transient noise.
	clickStdDev = 0.3

	// clickEnvelopeSpan is the exponent range of the transient's decay
	// envelope, exp(0) down to exp(-clickEnvelopeSpan).
	clickEnvelopeSpan = 10.0
)

// ErrInvalidParams indicates a non-positive duration, sample rate,
// frequency, or decay. Check with errors.Is.
var ErrInvalidParams = errors.New("invalid synthesis parameters")

// Params describes a single kick drum hit.
type Params struct {
	Duration      float64 // total length in seconds
	SampleRate    int     // output sample rate in Hz
	BaseFrequency float64 // sweep start frequency in Hz
	Decay         float64 // amplitude decay time constant in seconds
}

// Validate checks that every parameter is strictly positive.
func (p Params) Validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration %g must be positive", ErrInvalidParams, p.Duration)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParams, p.SampleRate)
	}
	if p.BaseFrequency <= 0 {
		return fmt.Errorf("%w: base frequency %g must be positive", ErrInvalidParams, p.BaseFrequency)
	}
	if p.Decay <= 0 {
		return fmt.Errorf("%w: decay %g must be positive", ErrInvalidParams, p.Decay)
	}
	return nil
}

// Generate synthesizes one kick drum hit and returns the sample buffer,
// normalized so the peak absolute amplitude is 1.0. The buffer has
// floor(SampleRate × Duration) samples. Noise for the transient click is
// drawn from rng, so a fixed seed reproduces the same buffer exactly.
func Generate(p Params, rng *rand.Rand) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	samples := toneWithEnvelope(p)
	overlayClick(samples, p.SampleRate, rng)
	normalize(samples)
	return samples, nil
}

// toneWithEnvelope produces the swept sine tone shaped by the decay
// envelope. Time runs from 0 to p.Duration inclusive across the buffer.
func toneWithEnvelope(p Params) []float64 {
	n := int(float64(p.SampleRate) * p.Duration)
	samples := make([]float64, n)

	// The sweep glides down from BaseFrequency with a time constant of
	// one tenth of the total duration. Instantaneous frequency is
	// integrated into a running phase, one sample at a time.
	phase := 0.0
	for i := range samples {
		t := timeAt(i, n, p.Duration)
		phase += 2 * math.Pi * sweepFrequency(p, t) / float64(p.SampleRate)
		samples[i] = math.Sin(phase) * math.Exp(-t/p.Decay)
	}
	return samples
}

// sweepFrequency returns the instantaneous oscillator frequency at time t.
func sweepFrequency(p Params, t float64) float64 {
	return p.BaseFrequency * math.Exp(-t/(p.Duration*0.1))
}

// timeAt maps sample index i to its time value on the inclusive axis
// [0, duration] with n evenly spaced points.
func timeAt(i, n int, duration float64) float64 {
	if n <= 1 {
		return 0
	}
	return duration * float64(i) / float64(n-1)
}

// overlayClick adds a short decaying Gaussian noise burst to the first
// 5 ms of the buffer. Samples past the burst are untouched.
func overlayClick(samples []float64, sampleRate int, rng *rand.Rand) {
	n := int(float64(sampleRate) * clickDuration)
	if n > len(samples) {
		n = len(samples)
	}
	for i := 0; i < n; i++ {
		x := clickEnvelopeSpan
		if n > 1 {
			x = clickEnvelopeSpan * float64(i) / float64(n-1)
		}
		samples[i] += rng.NormFloat64() * clickStdDev * math.Exp(-x)
	}
}

// normalize scales the buffer so its peak absolute value is exactly 1.0.
// An all-zero buffer is left untouched rather than divided by zero.
func normalize(samples []float64) {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
