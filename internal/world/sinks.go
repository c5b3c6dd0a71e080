package world

import (
	"log/slog"

	"github.com/udisondev/driftblade/internal/data"
)

// AudioSink consumes fire-and-forget sound events.
type AudioSink interface {
	PlaySFX(id data.SoundID)
}

// AnimationSink consumes one-way notifications for an external animation
// driver.
type AnimationSink interface {
	SetTrigger(name string)
	SetFlag(name string, value bool)
}

// SlogAudioSink logs sound events instead of playing them. Default sink
// for headless runs and tests.
type SlogAudioSink struct{}

func (SlogAudioSink) PlaySFX(id data.SoundID) {
	slog.Debug("play sfx", "soundID", int16(id))
}

// SlogAnimationSink logs animation signals.
type SlogAnimationSink struct{}

func (SlogAnimationSink) SetTrigger(name string) {
	slog.Debug("animation trigger", "name", name)
}

func (SlogAnimationSink) SetFlag(name string, value bool) {
	slog.Debug("animation flag", "name", name, "value", value)
}
