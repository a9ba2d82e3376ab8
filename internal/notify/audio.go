package notify

import (
	"fmt"
	"os"

	"billd/internal/model"
)

// Audio plays the alert cue. Implementations must treat unsupported
// capabilities as silent no-ops.
type Audio interface {
	PlayTone(freqHz float64, seconds float64) error
	Vibrate(pattern []int) error
}

type NoopAudio struct{}

func (NoopAudio) PlayTone(float64, float64) error { return nil }
func (NoopAudio) Vibrate([]int) error             { return nil }

// TerminalAudio rings the terminal bell for any tone request. Pitch
// and duration cannot be controlled in a terminal; vibration is
// unsupported and a no-op.
type TerminalAudio struct{}

func (TerminalAudio) PlayTone(float64, float64) error {
	_, err := fmt.Fprint(os.Stdout, "\a")
	return err
}

func (TerminalAudio) Vibrate([]int) error { return nil }

type tone struct {
	freqHz  float64
	seconds float64
}

// Cue per sound, fixed lookup. Vibrate carries a pulse pattern in
// milliseconds instead of a tone.
var tones = map[model.Sound]tone{
	model.SoundDefault: {freqHz: 880, seconds: 0.6},
	model.SoundBeep:    {freqHz: 440, seconds: 0.2},
	model.SoundChime:   {freqHz: 1320, seconds: 0.8},
}

var vibratePattern = []int{200, 100, 200}

func playCue(audio Audio, sound model.Sound) {
	if audio == nil {
		return
	}
	switch sound {
	case model.SoundNone:
	case model.SoundVibrate:
		_ = audio.Vibrate(vibratePattern)
	default:
		if cue, ok := tones[sound]; ok {
			_ = audio.PlayTone(cue.freqHz, cue.seconds)
		}
	}
}
