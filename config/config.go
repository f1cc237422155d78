package config

import "time"

// WindowConfig contains display configuration.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	// Movement (units per frame at 60Hz)
	MoveSpeed    float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64

	// Dimensions
	CollisionRadius float64
	Height          float64
	EyeHeight       float64

	// Combat
	Health           int
	HitStateDuration time.Duration
	RespawnCountdown time.Duration

	// Hotbar
	HotbarSize int
}

// CombatConfig contains combat-related configuration values.
type CombatConfig struct {
	// Hit debounce windows. Hits landing on the local player (from
	// networked projectiles) share the hit-animation lockout; hits the
	// local player reports on remote targets only need to suppress
	// same-frame double collisions.
	LocalHitCooldown  time.Duration
	RemoteHitCooldown time.Duration

	// Consecutive-hit streak window: hits on the same target closer
	// together than this increment the streak, otherwise it resets.
	StreakWindow time.Duration

	// Extra hit radius for networked projectiles against the local
	// player. Deliberately generous to compensate for client-side
	// prediction error; tune with care.
	NetProjectilePadding float64

	// Extra hit radius for local projectiles against remote players.
	PlayerHitPadding float64

	DefaultDamage int

	// Animation lockouts
	ThrowLockout   time.Duration
	ConsumeLockout time.Duration
}

// ProjectileConfig contains projectile simulation values.
type ProjectileConfig struct {
	Gravity     float64 // per-frame decrement on velocity.Y
	MaxLifetime time.Duration
	FloorY      float64 // below this the projectile splats on the floor
	ThrowSpeed  float64
	ArcLift     float64
	SpawnOffset float64 // forward offset from the thrower's eye
}

// ProbeConfig contains collision probe tuning. The thresholds and the
// surface-memory window are load-bearing: they suppress snagging and
// edge jitter during normal play.
type ProbeConfig struct {
	HitToleranceFactor  float64 // fraction of player radius for ray hits
	StandingRayDistance float64 // max distance for a valid standing surface
	StandingRayOffset   float64 // fraction of player radius for the 4 offset rays
	SurfaceMemoryWindow time.Duration
	SurfaceMemoryHeight float64 // max vertical drift from the remembered surface
}

// EffectsConfig contains visual feedback tuning.
type EffectsConfig struct {
	SplatParticleCount  int
	SplatDuration       time.Duration
	HitMarkerDuration   time.Duration
	DeathOverlayFadeIn  time.Duration
	StreakParticleBonus int // extra particles per streak step
}

// UIConfig contains HUD configuration.
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	HealthBarBgColor [4]uint8
	HealthBarFgColor [4]uint8
	HealthBarLoColor [4]uint8
}

// NetworkConfig contains client networking defaults.
type NetworkConfig struct {
	GameVersion    string
	DefaultAddress string
}

// DebugConfig contains development toggles.
type DebugConfig struct {
	SkipMenu      bool
	ShowColliders bool
	ShowRays      bool
}

var (
	C          WindowConfig
	Player     PlayerConfig
	Combat     CombatConfig
	Projectile ProjectileConfig
	Probe      ProbeConfig
	Effects    EffectsConfig
	UI         UIConfig
	Network    NetworkConfig
	Debug      DebugConfig
)

func init() {
	C = WindowConfig{
		Width:  1280,
		Height: 720,
		Title:  "Food Fight",
	}

	Player = PlayerConfig{
		MoveSpeed:    0.12,
		JumpSpeed:    0.22,
		Gravity:      0.012,
		MaxFallSpeed: 0.6,

		CollisionRadius: 0.5,
		Height:          1.8,
		// Eye height doubles as the snap height above a standing
		// surface; the 2.05 standing-ray threshold leaves 0.05 slack.
		EyeHeight: 2.0,

		Health:           100,
		HitStateDuration: 500 * time.Millisecond,
		RespawnCountdown: 5 * time.Second,

		HotbarSize: 5,
	}

	Combat = CombatConfig{
		LocalHitCooldown:     1000 * time.Millisecond,
		RemoteHitCooldown:    300 * time.Millisecond,
		StreakWindow:         2000 * time.Millisecond,
		NetProjectilePadding: 0.8,
		PlayerHitPadding:     0.3,
		DefaultDamage:        10,
		ThrowLockout:         350 * time.Millisecond,
		ConsumeLockout:       900 * time.Millisecond,
	}

	Projectile = ProjectileConfig{
		Gravity:     0.01,
		MaxLifetime: 10 * time.Second,
		FloorY:      0.1,
		ThrowSpeed:  0.45,
		ArcLift:     0.08,
		SpawnOffset: 0.7,
	}

	Probe = ProbeConfig{
		HitToleranceFactor:  0.9,
		StandingRayDistance: 2.05,
		StandingRayOffset:   0.4,
		SurfaceMemoryWindow: 100 * time.Millisecond,
		SurfaceMemoryHeight: 0.1,
	}

	Effects = EffectsConfig{
		SplatParticleCount:  12,
		SplatDuration:       600 * time.Millisecond,
		HitMarkerDuration:   400 * time.Millisecond,
		DeathOverlayFadeIn:  800 * time.Millisecond,
		StreakParticleBonus: 6,
	}

	UI = UIConfig{
		HealthBarWidth:  220,
		HealthBarHeight: 18,
		HealthBarMargin: 16,

		HealthBarBgColor: [4]uint8{30, 30, 30, 200},
		HealthBarFgColor: [4]uint8{80, 200, 90, 255},
		HealthBarLoColor: [4]uint8{200, 60, 50, 255},
	}

	Network = NetworkConfig{
		GameVersion:    "0.1.0",
		DefaultAddress: "localhost:7373",
	}

	Debug = DebugConfig{}
}
