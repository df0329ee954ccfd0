package core

// EffectType identifies a visual effect the presentation layer can play
type EffectType int

const (
	EffectSmallExplosion EffectType = iota
	EffectBigExplosion
	EffectFire
	EffectSmoke
	EffectPrisonDebris
	EffectTypeCount
)

func (e EffectType) String() string {
	switch e {
	case EffectSmallExplosion:
		return "small_explosion"
	case EffectBigExplosion:
		return "big_explosion"
	case EffectFire:
		return "fire"
	case EffectSmoke:
		return "smoke"
	case EffectPrisonDebris:
		return "prison_debris"
	}
	return "unknown"
}

// SoundType represents different sound effects
type SoundType int

const (
	SoundExplosion    SoundType = iota // Big explosion, crash
	SoundGroundImpact                  // Projectile on terrain
	SoundShot                          // Chopper gun
	SoundEnemyShot                     // Tank, turret, drone
	SoundMissile                       // Jet missile release
	SoundScream                        // Prisoner killed
	SoundBoard                         // Prisoner boarded
	SoundUnload                        // Prisoner unloaded at pad
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundExplosion:
		return "explosion"
	case SoundGroundImpact:
		return "ground_impact"
	case SoundShot:
		return "shot"
	case SoundEnemyShot:
		return "enemy_shot"
	case SoundMissile:
		return "missile"
	case SoundScream:
		return "scream"
	case SoundBoard:
		return "board"
	case SoundUnload:
		return "unload"
	}
	return "unknown"
}

// Outcome is the final rating reported at game over
type Outcome int

const (
	OutcomeGameOver Outcome = iota
	OutcomeExcellent
	OutcomePerfect
)

func (o Outcome) String() string {
	switch o {
	case OutcomePerfect:
		return "Perfect!"
	case OutcomeExcellent:
		return "Excellent!"
	}
	return "Game Over"
}
