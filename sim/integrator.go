package sim

// Integrate advances every particle by one position-Verlet step:
//
//	next = pos + (pos - prev)*damping + force*dt²
//
// Velocity is implicit in pos - prev. A damping of 1 leaves it untouched.
func Integrate(p *Particles, dt, damping float32) {
	dt2 := dt * dt
	for i := range p.Pos {
		cur := p.Pos[i]
		vel := cur.Sub(p.Prev[i]).Scale(damping)
		p.Pos[i].Inc(vel.Add(p.Force[i].Scale(dt2)))
		p.Prev[i] = cur
	}
}

// AccumulateForces resets every force and applies the constant gravity
// generator. Forces never carry over between steps.
func AccumulateForces(p *Particles, gravity Vec3) {
	for i := range p.Force {
		p.Force[i] = Vec3{}
		p.Force[i].Inc(gravity)
	}
}
