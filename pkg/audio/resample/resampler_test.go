// ABOUTME: Tests for the linear resampler
// ABOUTME: Tests downsampling, upsampling and edge cases
package resample

import "testing"

func TestResampleDownsampleHalf(t *testing.T) {
	// 48k -> 24k with a ramp: every second input sample survives exactly
	// because the interpolation position always lands on whole frames.
	input := make([]int16, 100)
	for i := range input {
		input[i] = int16(i)
	}

	r := New(48000, 24000, 1)
	output := make([]int16, r.OutputSamplesNeeded(len(input)))

	n := r.Resample(input, output)
	if n != 50 {
		t.Fatalf("expected 50 output samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if output[i] != input[i*2] {
			t.Errorf("sample %d: expected %d, got %d", i, input[i*2], output[i])
		}
	}
}

func TestResampleIdentityRate(t *testing.T) {
	// Equal rates copy samples through. The final input frame is held
	// back because interpolation needs a successor frame.
	input := []int16{0, 10, 20, 30, 40}

	r := New(24000, 24000, 1)
	output := make([]int16, len(input))

	n := r.Resample(input, output)
	if n != len(input)-1 {
		t.Fatalf("expected %d output samples, got %d", len(input)-1, n)
	}
	for i := 0; i < n; i++ {
		if output[i] != input[i] {
			t.Errorf("sample %d: expected %d, got %d", i, input[i], output[i])
		}
	}
}

func TestResampleUpsampleDouble(t *testing.T) {
	input := []int16{0, 100}

	r := New(8000, 16000, 1)
	output := make([]int16, 8)

	n := r.Resample(input, output)
	if n != 2 {
		t.Fatalf("expected 2 output samples, got %d", n)
	}
	if output[0] != 0 {
		t.Errorf("expected first sample 0, got %d", output[0])
	}
	if output[1] != 50 {
		t.Errorf("expected interpolated midpoint 50, got %d", output[1])
	}
}

func TestResampleEmptyInput(t *testing.T) {
	r := New(48000, 24000, 1)
	output := make([]int16, 16)

	if n := r.Resample(nil, output); n != 0 {
		t.Errorf("expected 0 output samples for empty input, got %d", n)
	}
}

func TestResampleStereoKeepsChannels(t *testing.T) {
	// Interleaved stereo: left ramps up, right ramps down.
	input := make([]int16, 40)
	for i := 0; i < 20; i++ {
		input[i*2] = int16(i)
		input[i*2+1] = int16(-i)
	}

	r := New(48000, 24000, 2)
	output := make([]int16, r.OutputSamplesNeeded(len(input)))

	n := r.Resample(input, output)
	if n != 20 {
		t.Fatalf("expected 20 output samples, got %d", n)
	}
	for i := 0; i < n/2; i++ {
		if output[i*2] != int16(i*2) {
			t.Errorf("left %d: expected %d, got %d", i, i*2, output[i*2])
		}
		if output[i*2+1] != int16(-i*2) {
			t.Errorf("right %d: expected %d, got %d", i, -i*2, output[i*2+1])
		}
	}
}

func TestResampleReset(t *testing.T) {
	input := []int16{0, 10, 20, 30}
	r := New(32000, 24000, 1)

	first := make([]int16, 8)
	n1 := r.Resample(input, first)

	r.Reset()

	second := make([]int16, 8)
	n2 := r.Resample(input, second)

	if n1 != n2 {
		t.Fatalf("expected identical sample counts after Reset, got %d and %d", n1, n2)
	}
	for i := 0; i < n1; i++ {
		if first[i] != second[i] {
			t.Errorf("sample %d differs after Reset: %d vs %d", i, first[i], second[i])
		}
	}
}
