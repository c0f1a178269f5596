package integrator

// Integrate runs the fixed-step scheme from initial and returns the full
// trajectory (Steps+1 states, the first being initial) together with the
// matching time stamps.
//
// Complexity: O(Steps · d) memory for the trajectory and one law evaluation
// per step for Euler, two for RK2, four for RK4.
func Integrate(law Law, initial State, opts Options) ([]State, []float64, error) {
	if law == nil {
		return nil, nil, ErrNilLaw
	}
	if opts.Steps < 1 {
		return nil, nil, ErrBadSteps
	}
	if opts.StepSize < 0 {
		return nil, nil, ErrBadStep
	}

	dt := opts.StepSize
	if dt == 0 {
		dt = 1 / float64(opts.Steps)
	}
	transport := opts.Transport
	if transport == nil {
		transport = flatTransport
	}

	var step func(Law, State, float64, float64, Transport) State
	switch opts.Scheme {
	case Euler:
		step = eulerStep
	case RK2:
		step = rk2Step
	case RK4:
		step = rk4Step
	default:
		return nil, nil, ErrBadScheme
	}

	trajectory := make([]State, 0, opts.Steps+1)
	times := make([]float64, 0, opts.Steps+1)
	state := cloneState(initial)
	trajectory = append(trajectory, state)
	times = append(times, 0)

	for i := 0; i < opts.Steps; i++ {
		t := float64(i) * dt
		state = step(law, state, t, dt, transport)
		trajectory = append(trajectory, state)
		times = append(times, t+dt)
	}

	return trajectory, times, nil
}

// eulerStep: velocity by one forward evaluation, position by one transport.
func eulerStep(law Law, s State, t, dt float64, transport Transport) State {
	acc := law(t, s)

	return State{
		Position: transport(s.Position, s.Velocity, dt),
		Velocity: addScaled(s.Velocity, dt, acc),
	}
}

// rk2Step: explicit midpoint rule. The position advances by the midpoint
// velocity through the transport.
func rk2Step(law Law, s State, t, dt float64, transport Transport) State {
	k1 := law(t, s)
	mid := State{
		Position: transport(s.Position, s.Velocity, dt/2),
		Velocity: addScaled(s.Velocity, dt/2, k1),
	}
	k2 := law(t+dt/2, mid)

	return State{
		Position: transport(s.Position, mid.Velocity, dt),
		Velocity: addScaled(s.Velocity, dt, k2),
	}
}

// rk4Step: classic Runge–Kutta. Velocity stages combine with the usual
// (1, 2, 2, 1)/6 weights; the position advances once through the transport
// by the matching weighted average of the stage velocities, which keeps
// group-valued positions on the manifold.
func rk4Step(law Law, s State, t, dt float64, transport Transport) State {
	k1 := law(t, s)
	v1 := s.Velocity

	s2 := State{
		Position: transport(s.Position, v1, dt/2),
		Velocity: addScaled(s.Velocity, dt/2, k1),
	}
	k2 := law(t+dt/2, s2)

	s3 := State{
		Position: transport(s.Position, s2.Velocity, dt/2),
		Velocity: addScaled(s.Velocity, dt/2, k2),
	}
	k3 := law(t+dt/2, s3)

	s4 := State{
		Position: transport(s.Position, s3.Velocity, dt),
		Velocity: addScaled(s.Velocity, dt, k3),
	}
	k4 := law(t+dt, s4)

	avgVel := make([]float64, len(v1))
	for i := range avgVel {
		avgVel[i] = (v1[i] + 2*s2.Velocity[i] + 2*s3.Velocity[i] + s4.Velocity[i]) / 6
	}
	newVel := make([]float64, len(s.Velocity))
	for i := range newVel {
		newVel[i] = s.Velocity[i] + dt*(k1[i]+2*k2[i]+2*k3[i]+k4[i])/6
	}

	return State{
		Position: transport(s.Position, avgVel, dt),
		Velocity: newVel,
	}
}

// flatTransport is the default position update: position + dt·velocity.
func flatTransport(position, velocity []float64, dt float64) []float64 {
	return addScaled(position, dt, velocity)
}

// addScaled returns a + c·b as a fresh slice.
func addScaled(a []float64, c float64, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + c*b[i]
	}

	return out
}

// cloneState deep-copies a state so trajectories never alias caller slices.
func cloneState(s State) State {
	return State{
		Position: append([]float64(nil), s.Position...),
		Velocity: append([]float64(nil), s.Velocity...),
	}
}
