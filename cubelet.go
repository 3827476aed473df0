// Package cubelet models a 3x3 Rubik's cube as 54 colored facelets
// positioned on an integer grid, and applies moves that permute facelet
// positions while preserving their colors.
//
// # Coordinate model
//
// Each facelet sits at a coordinate (x, y, z) where exactly one component
// is +-2 (the face the facelet belongs to) and the other two are in
// {-1, 0, 1} (its position within the 3x3 face grid). Exactly 54 such
// coordinates exist, and a State holds exactly one color per coordinate.
//
// # Moves
//
// A Move is (Axis, Side, Turns): Side +-1 turns the single layer on that
// side of the axis, Side 0 rotates the whole cube. Turns 1 is a quarter
// turn, -1 its inverse, 2 a half turn.
//
// # Quick start
//
//	state := cubelet.SolvedState()
//	state, err := cubelet.Apply(state, cubelet.R)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(state)
//
// Or use a Player, which owns a mutable current state and move history:
//
//	p := cubelet.NewPlayer()
//	p.ApplyNotation("R U R' U'")
//	fmt.Println("Solved:", p.IsSolved())
//
// # Animation
//
// Apply commits a full discrete turn. Renderers drawing intermediate
// frames call RotationFor with fractions in (0, 1) and IsAffected against
// the pre-move state; fractional rotations are for display only and are
// never snapped back to the grid.
package cubelet
