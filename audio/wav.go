package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// maxClipSamples caps rendered clips so an unbounded streamer cannot hang
// the encoder
const maxClipSamples = 5 * int(SampleRate)

// EncodeWAV writes s as 16-bit stereo PCM
func EncodeWAV(w io.WriteSeeker, s beep.Streamer, sr beep.SampleRate) error {
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, beep.Take(maxClipSamples, s), format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

// RenderWAV synthesizes the clip for a cue into an in-memory WAV file
func (s *Synth) RenderWAV(c Cue) ([]byte, error) {
	st := s.ForCue(c)
	if st == nil {
		return nil, fmt.Errorf("cue %q has no finite clip", c.Name)
	}
	buf := &memFile{}
	if err := EncodeWAV(buf, st, s.sr); err != nil {
		return nil, err
	}
	return buf.data, nil
}

// memFile is an in-memory io.WriteSeeker; the wav encoder seeks back to
// patch the header sizes
type memFile struct {
	data []byte
	pos  int
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.data) {
		if end > cap(m.data) {
			grown := make([]byte, end, 2*end)
			copy(grown, m.data)
			m.data = grown
		} else {
			m.data = m.data[:end]
		}
	}
	copy(m.data[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(m.pos) + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, errors.New("memfile: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("memfile: negative position")
	}
	m.pos = int(abs)
	return abs, nil
}
