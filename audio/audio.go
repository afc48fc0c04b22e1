// Package audio defines the narrow surface through which the simulation
// requests playback. The core only ever says "play this", "start this
// loop" or "stop this loop"; mixing and device handling live behind the
// Player interface (see the beepaudio subpackage).
package audio

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundCannon Sound = iota
	SoundBoom
	SoundBoomBase
	SoundEnemyDamage
	SoundShipDamage
	SoundGetItem
	SoundBallBounce
	SoundSpecialLaunch
	SoundEnemy02Shot
	SoundEnemy03Shot
	SoundEnemy07Shot
	SoundEnemy09Launch
	SoundEnemy10Spawn
	SoundDeath
)

// Channel identifies a looped effect that plays continuously while some
// condition holds: contact damage, or any projectile of a given enemy type
// being alive.
type Channel int

const (
	ChannelDamage Channel = iota
	ChannelShot01
	ChannelShot05
	ChannelShot06
	ChannelShot08
	ChannelShot09
)

// Player is implemented by the audio backend.
type Player interface {
	// Play fires a one-shot sound.
	Play(s Sound)
	// PlayLoop (re)starts a looped channel.
	PlayLoop(c Channel)
	// StopLoop silences a looped channel.
	StopLoop(c Channel)
	// Looping reports whether the channel is currently playing.
	Looping(c Channel) bool
}

// Nop is a Player that discards everything. Used in tests and when no
// audio device is available.
type Nop struct{}

func (Nop) Play(Sound)            {}
func (Nop) PlayLoop(Channel)      {}
func (Nop) StopLoop(Channel)      {}
func (Nop) Looping(Channel) bool  { return false }

// ShotChannel maps an enemy type to its looped firing channel. The second
// result is false for types whose shots do not loop a sound.
func ShotChannel(enemyType int) (Channel, bool) {
	switch enemyType {
	case 1:
		return ChannelShot01, true
	case 5:
		return ChannelShot05, true
	case 6:
		return ChannelShot06, true
	case 8:
		return ChannelShot08, true
	case 9:
		return ChannelShot09, true
	}
	return 0, false
}

// Counters tracks, per looping shot channel, how many projectiles of that
// type are in flight. The loop keeps playing while the counter is positive
// and stops exactly when the last projectile terminates.
type Counters struct {
	inFlight map[Channel]int
}

// NewCounters creates zeroed counters.
func NewCounters() *Counters {
	return &Counters{inFlight: make(map[Channel]int)}
}

// ShotFired bumps the in-flight counter for an enemy type and (re)starts
// its loop. Types without a looping channel are ignored.
func (c *Counters) ShotFired(enemyType int, p Player) {
	ch, ok := ShotChannel(enemyType)
	if !ok {
		return
	}
	c.inFlight[ch]++
	p.PlayLoop(ch)
}

// ShotGone decrements the in-flight counter for an enemy type after a
// projectile terminated (hit the player, hit a wall, or left the screen)
// and stops the loop when the counter reaches zero. The counter never goes
// negative.
func (c *Counters) ShotGone(enemyType int, p Player) {
	ch, ok := ShotChannel(enemyType)
	if !ok {
		return
	}
	if c.inFlight[ch] == 0 {
		return
	}
	c.inFlight[ch]--
	if c.inFlight[ch] == 0 {
		p.StopLoop(ch)
	}
}

// InFlight returns the live projectile count for a channel.
func (c *Counters) InFlight(ch Channel) int {
	return c.inFlight[ch]
}

// Silence zeroes every counter and stops all loops, including the damage
// loop. Used on room transitions and player death.
func (c *Counters) Silence(p Player) {
	for ch := range c.inFlight {
		c.inFlight[ch] = 0
	}
	p.StopLoop(ChannelDamage)
	p.StopLoop(ChannelShot01)
	p.StopLoop(ChannelShot05)
	p.StopLoop(ChannelShot06)
	p.StopLoop(ChannelShot08)
	p.StopLoop(ChannelShot09)
}
