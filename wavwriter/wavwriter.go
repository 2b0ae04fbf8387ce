// Package wavwriter writes decoded sound resources to disk as WAV files.
package wavwriter

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/32bitkid/anotherworld/resource"
)

// SampleFreq is the rate the engine plays sampled sounds at.
const SampleFreq = 11024

const (
	bitDepth  = 16
	pcmFormat = 1
)

// Write encodes a sound as 16-bit mono PCM. Samples are mapped from [0,1]
// onto the full signed range.
func Write(w io.WriteSeeker, sound resource.Sound, rate int) error {
	if rate <= 0 {
		rate = SampleFreq
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           make([]int, len(sound.Samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range sound.Samples {
		buf.Data[i] = int(math.Round(float64(s)*math.MaxUint16)) + math.MinInt16
	}

	enc := wav.NewEncoder(w, rate, bitDepth, 1, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	return nil
}

// WriteFile creates filename and writes the sound to it.
func WriteFile(filename string, sound resource.Sound, rate int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	return Write(f, sound, rate)
}
