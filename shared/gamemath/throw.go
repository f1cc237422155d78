package gamemath

// CalculateThrowVelocity returns the initial velocity for a thrown item:
// the aim direction scaled by speed, with extra upward lift for the arc.
func CalculateThrowVelocity(aim Vec3, speed, arcLift float64) Vec3 {
	v := aim.Normalized().Scale(speed)
	v.Y += arcLift
	return v
}

// IntegrateProjectile applies one frame of projectile motion: gravity
// decrements vertical velocity, then position advances by velocity.
func IntegrateProjectile(pos, vel Vec3, gravity float64) (Vec3, Vec3) {
	vel.Y -= gravity
	return pos.Add(vel), vel
}

// CalculateThrowSpeed scales base speed by charge ratio, matching the
// offline feel where a full wind-up throws half again as fast.
func CalculateThrowSpeed(baseSpeed, chargeRatio float64) float64 {
	return baseSpeed * (1.0 + chargeRatio*0.5)
}
