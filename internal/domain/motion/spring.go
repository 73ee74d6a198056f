package motion

import "math"

// maxStep bounds the integration step so stiff springs stay stable when a
// frame takes long.
const maxStep = 1.0 / 240

// Spring holds the parameters of a damped second-order filter.
type Spring struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
	Mass      float64 `json:"mass"`
}

// CriticalDamping returns the damping coefficient at which a spring with the
// given stiffness and mass returns to rest fastest without overshooting.
func CriticalDamping(stiffness, mass float64) float64 {
	return 2 * math.Sqrt(stiffness*mass)
}

// CriticallyDamped returns a Spring with the given stiffness, unit mass and
// critical damping.
func CriticallyDamped(stiffness float64) Spring {
	return Spring{Stiffness: stiffness, Damping: CriticalDamping(stiffness, 1), Mass: 1}
}

func (s Spring) mass() float64 {
	if s.Mass <= 0 {
		return 1
	}
	return s.Mass
}

// SpringState is the position and velocity of a spring-driven value.
type SpringState struct {
	Value    float64
	Velocity float64
}

// NewSpringState returns a spring at rest at initial.
func NewSpringState(initial float64) SpringState {
	return SpringState{Value: initial}
}

// Step advances the state by dt seconds towards target using semi-implicit
// Euler integration in sub-steps no longer than maxStep. A non-positive, NaN
// or infinite dt leaves the state unchanged.
func (st *SpringState) Step(s Spring, target, dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}

	n := int(math.Ceil(dt / maxStep))
	h := dt / float64(n)
	m := s.mass()

	for range n {
		accel := (-s.Stiffness*(st.Value-target) - s.Damping*st.Velocity) / m
		st.Velocity += accel * h
		st.Value += st.Velocity * h
	}
}

// Settled reports whether the state is within eps of target and nearly still.
func (st SpringState) Settled(target, eps float64) bool {
	return math.Abs(st.Value-target) < eps && math.Abs(st.Velocity) < eps
}
