package sim

import "math"

// #region quaternion

// Quat is a rotation quaternion in PyBullet's x, y, z, w order.
type Quat struct {
	X, Y, Z, W float64
}

// Identity returns the no-rotation quaternion.
func Identity() Quat {
	return Quat{0, 0, 0, 1}
}

// Normalize scales q to unit length. A zero quaternion degrades to
// identity so it is always safe to hand the result to the engine.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return Identity()
	}
	return Quat{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

// #endregion quaternion

// #region euler-conversion

// QuatFromEuler converts roll/pitch/yaw (radians, rotations about the
// fixed X, Y, Z axes — PyBullet's getQuaternionFromEuler convention)
// into a unit quaternion.
func QuatFromEuler(roll, pitch, yaw float64) Quat {
	cr := math.Cos(roll / 2)
	sr := math.Sin(roll / 2)
	cp := math.Cos(pitch / 2)
	sp := math.Sin(pitch / 2)
	cy := math.Cos(yaw / 2)
	sy := math.Sin(yaw / 2)

	return Quat{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}.Normalize()
}

// Euler converts q back to roll/pitch/yaw radians. Pitch is clamped to
// [-pi/2, pi/2]; near the gimbal singularity roll and yaw are not
// uniquely recoverable.
func (q Quat) Euler() (roll, pitch, yaw float64) {
	roll = math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	pitch = math.Asin(sinp)

	yaw = math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return roll, pitch, yaw
}

// #endregion euler-conversion
