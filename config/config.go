package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eniklas/nachtmission/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full static configuration handed to the simulation at init
type Config struct {
	World    World    `mapstructure:"world"`
	Chopper  Chopper  `mapstructure:"chopper"`
	Rotor    Rotor    `mapstructure:"rotor"`
	Turret   Turret   `mapstructure:"turret"`
	Tank     Tank     `mapstructure:"tank"`
	Jet      Jet      `mapstructure:"jet"`
	Drone    Drone    `mapstructure:"drone"`
	Prisoner Prisoner `mapstructure:"prisoner"`
	Spawn    Spawn    `mapstructure:"spawn"`
	Game     Game     `mapstructure:"game"`
	Log      Log      `mapstructure:"log"`
	Audio    Audio    `mapstructure:"audio"`
}

// Prison is one prison building and the captives it holds
type Prison struct {
	X        float64 `mapstructure:"x"`
	Captives int     `mapstructure:"captives"`
}

// World holds level geometry
type World struct {
	LeftBoundary       float64   `mapstructure:"leftBoundary"`
	RightBoundary      float64   `mapstructure:"rightBoundary"`
	LeftRiverBoundary  float64   `mapstructure:"leftRiverBoundary"`
	RightRiverBoundary float64   `mapstructure:"rightRiverBoundary"`
	Ceiling            float64   `mapstructure:"ceiling"`
	Ground             float64   `mapstructure:"ground"`
	TerrainY           float64   `mapstructure:"terrainY"`
	RiverBedY          float64   `mapstructure:"riverBedY"`
	LandingPadX        float64   `mapstructure:"landingPadX"`
	LandingPadHalfX    float64   `mapstructure:"landingPadHalfX"`
	BaseEntranceX      float64   `mapstructure:"baseEntranceX"`
	BaseEntranceZ      float64   `mapstructure:"baseEntranceZ"`
	BaseWallZ          float64   `mapstructure:"baseWallZ"`
	PrisonY            float64   `mapstructure:"prisonY"`
	PrisonZ            float64   `mapstructure:"prisonZ"`
	Prisons            []Prison  `mapstructure:"prisons"`
	Turrets            []float64 `mapstructure:"turrets"`
	Gravity            float64   `mapstructure:"gravity"`
}

// Chopper holds flight model tuning
type Chopper struct {
	MaxHSpeed          float64 `mapstructure:"maxHSpeed"`
	MaxVSpeed          float64 `mapstructure:"maxVSpeed"`
	HAcceleration      float64 `mapstructure:"hAcceleration"`
	VAcceleration      float64 `mapstructure:"vAcceleration"`
	SpeedCrashFactor   float64 `mapstructure:"speedCrashFactor"`
	RotationTime       float64 `mapstructure:"rotationTime"`
	TurnCooldown       float64 `mapstructure:"turnCooldown"`
	MinPitch           float64 `mapstructure:"minPitch"`
	MaxPitch           float64 `mapstructure:"maxPitch"`
	PitchAccel         float64 `mapstructure:"pitchAccel"`
	LevelAccel         float64 `mapstructure:"levelAccel"`
	PitchDeadZone      float64 `mapstructure:"pitchDeadZone"`
	BulletSpeed        float64 `mapstructure:"bulletSpeed"`
	BulletVelocityBias float64 `mapstructure:"bulletVelocityBias"`
	MenuFireGuard      float64 `mapstructure:"menuFireGuard"`
	Capacity           int     `mapstructure:"capacity"`
	UnloadPeriod       float64 `mapstructure:"unloadPeriod"`
	CrashDuration      float64 `mapstructure:"crashDuration"`
	CrashForce         float64 `mapstructure:"crashForce"`
}

// Rotor holds rotor ramp tuning
type Rotor struct {
	MinSpeed     float64 `mapstructure:"minSpeed"`
	MaxSpeed     float64 `mapstructure:"maxSpeed"`
	SpinUpTime   float64 `mapstructure:"spinUpTime"`
	SpinDownTime float64 `mapstructure:"spinDownTime"`
}

// Turret holds turret aim and fire tuning
type Turret struct {
	MinRotation   float64 `mapstructure:"minRotation"`
	MaxRotation   float64 `mapstructure:"maxRotation"`
	RotationSpeed float64 `mapstructure:"rotationSpeed"`
	ReloadTime    float64 `mapstructure:"reloadTime"`
	FireRange     float64 `mapstructure:"fireRange"`
	BulletSpeed   float64 `mapstructure:"bulletSpeed"`
}

// Tank holds ground pursuit tuning
type Tank struct {
	Speed       float64 `mapstructure:"speed"`
	MinDistance float64 `mapstructure:"minDistance"`
	MaxDistance float64 `mapstructure:"maxDistance"`
	Territory   float64 `mapstructure:"territory"`
}

// Jet holds attack run tuning
type Jet struct {
	Speed           float64 `mapstructure:"speed"`
	MissileSpeed    float64 `mapstructure:"missileSpeed"`
	TimeToSwoop     float64 `mapstructure:"timeToSwoop"`
	SwoopDrop       float64 `mapstructure:"swoopDrop"`
	MovingDistance  float64 `mapstructure:"movingDistance"`
	StillDistance   float64 `mapstructure:"stillDistance"`
	HeadOnDistance  float64 `mapstructure:"headOnDistance"`
	HeadOnChance    int     `mapstructure:"headOnChance"`
	StillMaxSpeed   float64 `mapstructure:"stillMaxSpeed"`
	DespawnDistance float64 `mapstructure:"despawnDistance"`
	DespawnGrace    float64 `mapstructure:"despawnGrace"`
}

// Drone holds damped pursuit and fire tuning
type Drone struct {
	SpeedX       float64 `mapstructure:"speedX"`
	SpeedY       float64 `mapstructure:"speedY"`
	DamperZone   float64 `mapstructure:"damperZone"`
	DamperSpeed  float64 `mapstructure:"damperSpeed"`
	OffsetX      float64 `mapstructure:"offsetX"`
	OffsetY      float64 `mapstructure:"offsetY"`
	FireInterval float64 `mapstructure:"fireInterval"`
	FireRange    float64 `mapstructure:"fireRange"`
	BulletSpeedX float64 `mapstructure:"bulletSpeedX"`
	BulletBoost  float64 `mapstructure:"bulletBoost"`
}

// Prisoner holds walking tuning
type Prisoner struct {
	Speed          float64 `mapstructure:"speed"`
	MinDirChange   float64 `mapstructure:"minDirChange"`
	MaxDirChange   float64 `mapstructure:"maxDirChange"`
	EmergeInterval float64 `mapstructure:"emergeInterval"`
}

// Spawn holds director gates and caps
type Spawn struct {
	Interval        float64 `mapstructure:"interval"`
	TankActivation  float64 `mapstructure:"tankActivation"`
	JetActivation   float64 `mapstructure:"jetActivation"`
	DroneActivation float64 `mapstructure:"droneActivation"`
	TankCap         int     `mapstructure:"tankCap"`
	JetCap          int     `mapstructure:"jetCap"`
	DroneCap        int     `mapstructure:"droneCap"`
}

// Game holds session rules
type Game struct {
	Lives    int     `mapstructure:"lives"`
	Seed     uint64  `mapstructure:"seed"`
	TickRate float64 `mapstructure:"tickRate"`
}

// Log holds logger settings
type Log struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Pretty bool   `mapstructure:"pretty"`
}

// Audio holds sound output settings
type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Load reads an optional config file over the built-in defaults
// An empty path loads defaults and NACHT_* environment overrides only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NACHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return decode(v)
}

// Default returns the built-in configuration without touching disk or env
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// Defaults are compile-time constants
		panic(err)
	}
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks geometry ordering and positive limits
func (c *Config) Validate() error {
	w := c.World
	switch {
	case w.LeftBoundary >= w.RightBoundary:
		return fmt.Errorf("%w: world.leftBoundary must be left of world.rightBoundary", ErrInvalid)
	case w.LeftRiverBoundary > w.RightRiverBoundary:
		return fmt.Errorf("%w: world.leftRiverBoundary must not exceed world.rightRiverBoundary", ErrInvalid)
	case w.LeftRiverBoundary <= w.LeftBoundary || w.RightRiverBoundary >= w.RightBoundary:
		return fmt.Errorf("%w: river must lie inside the play field", ErrInvalid)
	case w.Ground >= w.Ceiling:
		return fmt.Errorf("%w: world.ground must be below world.ceiling", ErrInvalid)
	case len(w.Prisons) == 0:
		return fmt.Errorf("%w: world.prisons is empty", ErrInvalid)
	case c.Chopper.Capacity <= 0:
		return fmt.Errorf("%w: chopper.capacity must be positive", ErrInvalid)
	case c.Game.Lives <= 0:
		return fmt.Errorf("%w: game.lives must be positive", ErrInvalid)
	case c.Game.TickRate <= 0:
		return fmt.Errorf("%w: game.tickRate must be positive", ErrInvalid)
	case c.Rotor.MaxSpeed <= c.Rotor.MinSpeed:
		return fmt.Errorf("%w: rotor.maxSpeed must exceed rotor.minSpeed", ErrInvalid)
	}
	for i, p := range w.Prisons {
		if p.Captives < 0 {
			return fmt.Errorf("%w: world.prisons[%d].captives is negative", ErrInvalid, i)
		}
		if p.X <= w.LeftBoundary || p.X >= w.LeftRiverBoundary {
			return fmt.Errorf("%w: world.prisons[%d] must be in enemy territory", ErrInvalid, i)
		}
	}
	if c.TotalPrisoners() == 0 {
		return fmt.Errorf("%w: no captives configured", ErrInvalid)
	}
	return nil
}

// TotalPrisoners sums captives across all prisons
func (c *Config) TotalPrisoners() int {
	total := 0
	for _, p := range c.World.Prisons {
		total += p.Captives
	}
	return total
}

// CrashSpeed is the landing speed above which the helicopter crashes
func (c *Config) CrashSpeed() float64 {
	return c.Chopper.SpeedCrashFactor * c.Chopper.MaxHSpeed
}

// InEnemyTerritory reports whether x lies left of the river
func (w World) InEnemyTerritory(x float64) bool {
	return x < w.LeftRiverBoundary
}

// OverRiver reports whether x lies between the river banks
func (w World) OverRiver(x float64) bool {
	return x > w.LeftRiverBoundary && x < w.RightRiverBoundary
}

// TerrainHeight returns the projectile ground plane at x
func (w World) TerrainHeight(x float64) float64 {
	if w.OverRiver(x) {
		return w.RiverBedY
	}
	return w.TerrainY
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("world.leftBoundary", parameter.WorldLeftBoundary)
	v.SetDefault("world.rightBoundary", parameter.WorldRightBoundary)
	v.SetDefault("world.leftRiverBoundary", parameter.WorldLeftRiverBoundary)
	v.SetDefault("world.rightRiverBoundary", parameter.WorldRightRiverBoundary)
	v.SetDefault("world.ceiling", parameter.WorldCeiling)
	v.SetDefault("world.ground", parameter.WorldGround)
	v.SetDefault("world.terrainY", parameter.WorldTerrainY)
	v.SetDefault("world.riverBedY", parameter.WorldRiverBedY)
	v.SetDefault("world.landingPadX", parameter.LandingPadX)
	v.SetDefault("world.landingPadHalfX", parameter.LandingPadHalfX)
	v.SetDefault("world.baseEntranceX", parameter.BaseEntranceX)
	v.SetDefault("world.baseEntranceZ", parameter.BaseEntranceZ)
	v.SetDefault("world.baseWallZ", parameter.BaseWallZ)
	v.SetDefault("world.prisonY", parameter.PrisonY)
	v.SetDefault("world.prisonZ", parameter.PrisonZ)
	prisons := make([]map[string]any, 0, len(parameter.DefaultPrisonX))
	for _, x := range parameter.DefaultPrisonX {
		prisons = append(prisons, map[string]any{"x": x, "captives": parameter.PrisonCaptives})
	}
	v.SetDefault("world.prisons", prisons)
	v.SetDefault("world.turrets", parameter.DefaultTurretX)
	v.SetDefault("world.gravity", parameter.Gravity)

	v.SetDefault("chopper.maxHSpeed", parameter.ChopperMaxHSpeed)
	v.SetDefault("chopper.maxVSpeed", parameter.ChopperMaxVSpeed)
	v.SetDefault("chopper.hAcceleration", parameter.ChopperHAcceleration)
	v.SetDefault("chopper.vAcceleration", parameter.ChopperVAcceleration)
	v.SetDefault("chopper.speedCrashFactor", parameter.ChopperSpeedCrashFactor)
	v.SetDefault("chopper.rotationTime", parameter.ChopperRotationTime)
	v.SetDefault("chopper.turnCooldown", parameter.ChopperTurnCooldown)
	v.SetDefault("chopper.minPitch", parameter.ChopperMinPitch)
	v.SetDefault("chopper.maxPitch", parameter.ChopperMaxPitch)
	v.SetDefault("chopper.pitchAccel", parameter.ChopperPitchAccel)
	v.SetDefault("chopper.levelAccel", parameter.ChopperLevelAccel)
	v.SetDefault("chopper.pitchDeadZone", parameter.ChopperPitchDeadZone)
	v.SetDefault("chopper.bulletSpeed", parameter.ChopperBulletSpeed)
	v.SetDefault("chopper.bulletVelocityBias", parameter.ChopperBulletVelocityBias)
	v.SetDefault("chopper.menuFireGuard", parameter.ChopperMenuFireGuard)
	v.SetDefault("chopper.capacity", parameter.ChopperCapacity)
	v.SetDefault("chopper.unloadPeriod", parameter.ChopperUnloadPeriod)
	v.SetDefault("chopper.crashDuration", parameter.ChopperCrashDuration)
	v.SetDefault("chopper.crashForce", parameter.ChopperCrashForce)

	v.SetDefault("rotor.minSpeed", parameter.RotorMinSpeed)
	v.SetDefault("rotor.maxSpeed", parameter.RotorMaxSpeed)
	v.SetDefault("rotor.spinUpTime", parameter.RotorSpinUpTime)
	v.SetDefault("rotor.spinDownTime", parameter.RotorSpinDownTime)

	v.SetDefault("turret.minRotation", parameter.TurretMinRotation)
	v.SetDefault("turret.maxRotation", parameter.TurretMaxRotation)
	v.SetDefault("turret.rotationSpeed", parameter.TurretRotationSpeed)
	v.SetDefault("turret.reloadTime", parameter.TurretReloadTime)
	v.SetDefault("turret.fireRange", parameter.TurretFireRange)
	v.SetDefault("turret.bulletSpeed", parameter.TurretBulletSpeed)

	v.SetDefault("tank.speed", parameter.TankSpeed)
	v.SetDefault("tank.minDistance", parameter.TankMinDistance)
	v.SetDefault("tank.maxDistance", parameter.TankMaxDistance)
	v.SetDefault("tank.territory", parameter.TankTerritory)

	v.SetDefault("jet.speed", parameter.JetSpeed)
	v.SetDefault("jet.missileSpeed", parameter.JetMissileSpeed)
	v.SetDefault("jet.timeToSwoop", parameter.JetTimeToSwoop)
	v.SetDefault("jet.swoopDrop", parameter.JetSwoopDrop)
	v.SetDefault("jet.movingDistance", parameter.JetSwoopMovingDistance)
	v.SetDefault("jet.stillDistance", parameter.JetSwoopStillDistance)
	v.SetDefault("jet.headOnDistance", parameter.JetHeadOnDistance)
	v.SetDefault("jet.headOnChance", parameter.JetHeadOnChance)
	v.SetDefault("jet.stillMaxSpeed", parameter.JetStillMaxSpeed)
	v.SetDefault("jet.despawnDistance", parameter.JetDespawnDistance)
	v.SetDefault("jet.despawnGrace", parameter.JetDespawnGrace)

	v.SetDefault("drone.speedX", parameter.DroneSpeedX)
	v.SetDefault("drone.speedY", parameter.DroneSpeedY)
	v.SetDefault("drone.damperZone", parameter.DroneDamperZone)
	v.SetDefault("drone.damperSpeed", parameter.DroneDamperSpeed)
	v.SetDefault("drone.offsetX", parameter.DroneOffsetX)
	v.SetDefault("drone.offsetY", parameter.DroneOffsetY)
	v.SetDefault("drone.fireInterval", parameter.DroneFireInterval)
	v.SetDefault("drone.fireRange", parameter.DroneFireRange)
	v.SetDefault("drone.bulletSpeedX", parameter.DroneBulletSpeedX)
	v.SetDefault("drone.bulletBoost", parameter.DroneBulletBoost)

	v.SetDefault("prisoner.speed", parameter.PrisonerSpeed)
	v.SetDefault("prisoner.minDirChange", parameter.PrisonerMinDirChange)
	v.SetDefault("prisoner.maxDirChange", parameter.PrisonerMaxDirChange)
	v.SetDefault("prisoner.emergeInterval", parameter.PrisonEmergeInterval)

	v.SetDefault("spawn.interval", parameter.SpawnInterval)
	v.SetDefault("spawn.tankActivation", parameter.TankActivation)
	v.SetDefault("spawn.jetActivation", parameter.JetActivation)
	v.SetDefault("spawn.droneActivation", parameter.DroneActivation)
	v.SetDefault("spawn.tankCap", parameter.TankCap)
	v.SetDefault("spawn.jetCap", parameter.JetCap)
	v.SetDefault("spawn.droneCap", parameter.DroneCap)

	v.SetDefault("game.lives", parameter.GameLives)
	v.SetDefault("game.seed", parameter.GameSeed)
	v.SetDefault("game.tickRate", float64(time.Second)/float64(parameter.GameUpdateInterval))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.pretty", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}
