package cubelet

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	p.ApplyAll(cubelet.R, cubelet.U, cubelet.RPrime, cubelet.UPrime)
var (
	// Right face moves (positive x layer)
	R      = Move{Axis: 0, Side: 1, Turns: 1}  // Right quarter turn
	RPrime = Move{Axis: 0, Side: 1, Turns: -1} // Right inverse
	R2     = Move{Axis: 0, Side: 1, Turns: 2}  // Right 180

	// Left face moves (negative x layer)
	L      = Move{Axis: 0, Side: -1, Turns: 1}
	LPrime = Move{Axis: 0, Side: -1, Turns: -1}
	L2     = Move{Axis: 0, Side: -1, Turns: 2}

	// Back face moves (positive y layer)
	B      = Move{Axis: 1, Side: 1, Turns: 1}
	BPrime = Move{Axis: 1, Side: 1, Turns: -1}
	B2     = Move{Axis: 1, Side: 1, Turns: 2}

	// Front face moves (negative y layer)
	F      = Move{Axis: 1, Side: -1, Turns: 1}
	FPrime = Move{Axis: 1, Side: -1, Turns: -1}
	F2     = Move{Axis: 1, Side: -1, Turns: 2}

	// Up face moves (positive z layer)
	U      = Move{Axis: 2, Side: 1, Turns: 1}
	UPrime = Move{Axis: 2, Side: 1, Turns: -1}
	U2     = Move{Axis: 2, Side: 1, Turns: 2}

	// Down face moves (negative z layer)
	D      = Move{Axis: 2, Side: -1, Turns: 1}
	DPrime = Move{Axis: 2, Side: -1, Turns: -1}
	D2     = Move{Axis: 2, Side: -1, Turns: 2}

	// Whole-cube rotations
	X      = Move{Axis: 0, Side: 0, Turns: 1} // Rotate cube about x
	XPrime = Move{Axis: 0, Side: 0, Turns: -1}
	X2     = Move{Axis: 0, Side: 0, Turns: 2}
	Y      = Move{Axis: 2, Side: 0, Turns: 1} // Rotate cube about z (viewpoint yaw)
	YPrime = Move{Axis: 2, Side: 0, Turns: -1}
	Y2     = Move{Axis: 2, Side: 0, Turns: 2}
	Z      = Move{Axis: 1, Side: 0, Turns: -1} // Rotate cube about y
	ZPrime = Move{Axis: 1, Side: 0, Turns: 1}
	Z2     = Move{Axis: 1, Side: 0, Turns: 2}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}
