package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// FloorY is the y coordinate of the room floor the cat stands on.
	FloorY = BaseHeight - 64

	Gravity     = 1800.0
	JumpImpulse = 660.0
)

// TickSeconds is the fixed timestep of one ebiten update.
const TickSeconds = 1.0 / 60.0
