// ABOUTME: Frame splitter for the encode pipeline
// ABOUTME: Partitions a PCM buffer into fixed 20 ms frames with zero-padding
package silk

// Splitter partitions a PCM buffer into consecutive 20 ms frames in
// temporal order. The final frame is zero-padded with silence when the
// buffer length is not an exact multiple of the frame size; trailing
// samples are never dropped.
//
// Frames returned by Next are views into the source buffer (the padded
// final frame uses an internal scratch buffer) and are only valid until
// the following Next call.
type Splitter struct {
	pcm       []int16
	frameSize int
	pos       int
	scratch   []int16
}

// NewSplitter creates a splitter for the given sample rate.
func NewSplitter(pcm []int16, sampleRate int) (*Splitter, error) {
	frameSize, err := FrameSize(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Splitter{
		pcm:       pcm,
		frameSize: frameSize,
	}, nil
}

// FrameSize returns the number of samples per frame.
func (s *Splitter) FrameSize() int {
	return s.frameSize
}

// Frames returns the total number of frames the splitter will produce,
// counting the padded final frame.
func (s *Splitter) Frames() int {
	return (len(s.pcm) + s.frameSize - 1) / s.frameSize
}

// Next returns the next frame. ok is false once the buffer is exhausted.
func (s *Splitter) Next() (frame []int16, ok bool) {
	remaining := len(s.pcm) - s.pos
	if remaining <= 0 {
		return nil, false
	}

	if remaining >= s.frameSize {
		frame = s.pcm[s.pos : s.pos+s.frameSize]
		s.pos += s.frameSize
		return frame, true
	}

	// Partial final frame: pad with silence to full length.
	if s.scratch == nil {
		s.scratch = make([]int16, s.frameSize)
	}
	n := copy(s.scratch, s.pcm[s.pos:])
	for i := n; i < s.frameSize; i++ {
		s.scratch[i] = 0
	}
	s.pos = len(s.pcm)
	return s.scratch, true
}

// Reset rewinds the splitter to the start of the buffer.
func (s *Splitter) Reset() {
	s.pos = 0
}
