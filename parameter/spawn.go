package parameter

// Director
const (
	SpawnInterval = 15.0

	TankActivation  = 0.0
	JetActivation   = 0.0
	DroneActivation = 0.5

	TankCap  = 4
	JetCap   = 2
	DroneCap = 1

	TankSpawnMinDistance = 50.0
	TankSpawnMaxDistance = 150.0

	JetSpawnDistance = 100.0
	JetSpawnHeight   = 15.0

	DroneSpawnDistance = 100.0
)
