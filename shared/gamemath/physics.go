package gamemath

// ApplyFriction reduces the horizontal speed of v toward zero by friction,
// leaving Y alone.
func ApplyFriction(v Vec3, friction float64) Vec3 {
	h := v.Horizontal()
	return v.WithHorizontal(h.MoveToward(Vec3{}, friction))
}

// Accelerate moves the horizontal part of v toward target by at most accel.
func Accelerate(v, target Vec3, accel float64) Vec3 {
	h := v.Horizontal()
	return v.WithHorizontal(h.MoveToward(target.Horizontal(), accel))
}

// JumpSpeed returns the launch speed for the given position in a jump chain
// (1 = first jump). The third jump gets the boost.
func JumpSpeed(base float64, chain int, tripleBoost float64) float64 {
	if chain >= 3 {
		return base * tripleBoost
	}
	return base
}
