package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset restores every system to its starting state
	// Trigger: Simulation.Reset | Consumer: All systems | Payload: nil
	EventGameReset EventType = iota

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: Debug tooling | Consumer: All systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest

	// EventPauseToggled reports a gameplay pause change
	// Trigger: MenuSystem | Consumer: Scheduler, Notify | Payload: *PausePayload
	EventPauseToggled

	// === Effect Event ===

	// EventEffectRequest requests a visual effect at a position
	// Trigger: Any gameplay system | Consumer: EffectSystem | Payload: *EffectRequestPayload
	EventEffectRequest

	// EventSoundRequest requests audio playback
	// Trigger: Any gameplay system | Consumer: EffectSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Chopper Event ===

	// EventChopperCrashed marks the start of a crash sequence
	// Trigger: ChopperSystem, CollisionSystem | Consumer: Turret, Tank, Rotor, Prison | Payload: *ChopperPayload
	EventChopperCrashed

	// EventChopperRecovered marks the reset after a crash with lives remaining
	// Trigger: ChopperSystem | Consumer: Turret, Tank, Rotor, Prison | Payload: *ChopperPayload
	EventChopperRecovered

	// EventChopperLanded marks the airborne to grounded transition
	// Trigger: ChopperSystem | Consumer: RotorSystem | Payload: *ChopperPayload
	EventChopperLanded

	// EventChopperTookOff marks the grounded to airborne transition
	// Trigger: ChopperSystem | Consumer: RotorSystem | Payload: *ChopperPayload
	EventChopperTookOff

	// === Score Event ===

	// EventPrisonerBoarded reports a pickup
	// Trigger: ChopperSystem | Consumer: Notify | Payload: *PrisonerPayload
	EventPrisonerBoarded

	// EventPrisonerRescued reports an unload at the landing pad
	// Trigger: ChopperSystem | Consumer: Notify | Payload: *PrisonerPayload
	EventPrisonerRescued

	// EventPrisonerKilled reports a shot or crushed prisoner
	// Trigger: ChopperSystem, CollisionSystem | Consumer: Notify | Payload: *PrisonerPayload
	EventPrisonerKilled

	// EventPrisonerEnteredBase reports a rescued prisoner reaching the base wall
	// Trigger: PrisonerSystem | Consumer: Notify | Payload: *PrisonerPayload
	EventPrisonerEnteredBase

	// EventChopperDestroyed reports a lost life after the crash timer
	// Trigger: ChopperSystem | Consumer: Notify | Payload: *ChopperPayload
	EventChopperDestroyed

	// EventScoreChanged follows every counter mutation
	// Trigger: Score helpers | Consumer: DirectorSystem, Notify | Payload: *ScorePayload
	EventScoreChanged

	// EventGameOver is emitted exactly once per session
	// Trigger: Score helpers | Consumer: DirectorSystem, ChopperSystem, Notify | Payload: *GameOverPayload
	EventGameOver

	// === Spawn Event ===

	// EventSpawnRequest forces a director spawn of one enemy class
	// Trigger: Debug tooling, tests | Consumer: DirectorSystem | Payload: *SpawnRequestPayload
	EventSpawnRequest
)

var eventNames = map[EventType]string{
	EventGameReset:                "game_reset",
	EventMetaSystemCommandRequest: "meta_system_command",
	EventPauseToggled:             "pause_toggled",
	EventEffectRequest:            "effect_request",
	EventSoundRequest:             "sound_request",
	EventChopperCrashed:           "chopper_crashed",
	EventChopperRecovered:         "chopper_recovered",
	EventChopperLanded:            "chopper_landed",
	EventChopperTookOff:           "chopper_took_off",
	EventPrisonerBoarded:          "prisoner_boarded",
	EventPrisonerRescued:          "prisoner_rescued",
	EventPrisonerKilled:           "prisoner_killed",
	EventPrisonerEnteredBase:      "prisoner_entered_base",
	EventChopperDestroyed:         "chopper_destroyed",
	EventScoreChanged:             "score_changed",
	EventGameOver:                 "game_over",
	EventSpawnRequest:             "spawn_request",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed message routed between systems
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
