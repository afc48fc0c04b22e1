// Package beepaudio implements audio.Player on top of the beep speaker.
package beepaudio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/cobbes/jetstorm/audio"
)

const sampleRate = beep.SampleRate(44100)

var soundFiles = map[audio.Sound]string{
	audio.SoundCannon:        "cannon.wav",
	audio.SoundBoom:          "boom.wav",
	audio.SoundBoomBase:      "boom_base.wav",
	audio.SoundEnemyDamage:   "enemy_damage.wav",
	audio.SoundShipDamage:    "ship_damage.wav",
	audio.SoundGetItem:       "get_item.wav",
	audio.SoundBallBounce:    "ball_bounce.wav",
	audio.SoundSpecialLaunch: "special_launch.wav",
	audio.SoundEnemy02Shot:   "enemy02_shot.wav",
	audio.SoundEnemy03Shot:   "enemy03_shot.wav",
	audio.SoundEnemy07Shot:   "enemy07_shot.wav",
	audio.SoundEnemy09Launch: "enemy09_launch.wav",
	audio.SoundEnemy10Spawn:  "enemy10_spawn.wav",
	audio.SoundDeath:         "death.wav",
}

var loopFiles = map[audio.Channel]string{
	audio.ChannelDamage: "damage_loop.wav",
	audio.ChannelShot01: "enemy01_shot.wav",
	audio.ChannelShot05: "enemy05_shot.wav",
	audio.ChannelShot06: "enemy06_shot.wav",
	audio.ChannelShot08: "enemy08_shot.wav",
	audio.ChannelShot09: "enemy09_shot.wav",
}

// Backend plays effects through the beep speaker. All samples are decoded
// into memory at startup so playback never touches the disk.
type Backend struct {
	mu     sync.Mutex
	sounds map[audio.Sound]*beep.Buffer
	loops  map[audio.Channel]*beep.Buffer
	active map[audio.Channel]*beep.Ctrl
}

// New initializes the speaker and loads every effect from dir. Missing or
// undecodable files are an error; the game ships its own sound set.
func New(dir string) (*Backend, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	b := &Backend{
		sounds: make(map[audio.Sound]*beep.Buffer),
		loops:  make(map[audio.Channel]*beep.Buffer),
		active: make(map[audio.Channel]*beep.Ctrl),
	}
	for s, name := range soundFiles {
		buf, err := loadWav(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		b.sounds[s] = buf
	}
	for c, name := range loopFiles {
		buf, err := loadWav(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		b.loops[c] = buf
	}
	return b, nil
}

func loadWav(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()
	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()
	buf := beep.NewBuffer(format)
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, stream))
	return buf, nil
}

// Play fires a one-shot sound.
func (b *Backend) Play(s audio.Sound) {
	buf, ok := b.sounds[s]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// PlayLoop starts a looped channel if it is not already running.
func (b *Backend) PlayLoop(c audio.Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ctrl, ok := b.active[c]; ok {
		speaker.Lock()
		paused := ctrl.Paused
		speaker.Unlock()
		if !paused {
			return
		}
	}
	buf, ok := b.loops[c]
	if !ok {
		return
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	b.active[c] = ctrl
	speaker.Play(ctrl)
}

// StopLoop pauses a looped channel. The control stays registered so a later
// PlayLoop starts a fresh iteration.
func (b *Backend) StopLoop(c audio.Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ctrl, ok := b.active[c]
	if !ok {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(b.active, c)
}

// Looping reports whether a looped channel is currently audible.
func (b *Backend) Looping(c audio.Channel) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.active[c]
	return ok
}
