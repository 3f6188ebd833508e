package flocking

import (
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// Boid is one autonomous agent. Its orientation (Yaw, Pitch) is always
// recomputed from velocity, never stored independently, so it carries no
// hysteresis from previous ticks.
type Boid struct {
	ID  int
	Pos geometry.Vector3D
	Vel geometry.Vector3D

	// Derived per tick from Vel, exposed for the view layer.
	Yaw   float64
	Pitch float64

	Role            Role
	leaderTicksLeft int

	// randomBias is the slowly-drifting per-agent noise vector. It drifts
	// by a small uniform delta each tick and snaps back near zero when it
	// exceeds the configured limit, producing an occasional visible
	// "jitter reset" instead of smooth saturation.
	randomBias geometry.Vector3D

	// Ring buffer of recent yaw samples, feeding Eccentricity.
	headings   []float64
	headingIdx int
}

func (b *Boid) String() string {
	return fmt.Sprintf("boid#%d %s pos=%s vel=%s", b.ID, b.Role, b.Pos, b.Vel)
}

// Update advances the agent by one tick. The step order is load-bearing
// and deliberately fixed:
//
//  1. rule forces: sum every applicable rule's vector straight into the
//     velocity (forces are velocity deltas, no mass or timestep scaling),
//  2. cap speed at the effective maximum (leader tenure profile applied),
//  3. randomness: drift the bias vector, reset it sharply (divide by 100)
//     past the limit, then add it to velocity,
//  4. integrate position,
//  5. recompute orientation from the new velocity.
//
// Capping before randomness bounds per-tick displacement by
// maxSpeed + |randomBias|; swapping steps 2 and 3 changes the emergent
// speed statistics, so don't.
func (b *Boid) Update(ctx *Context, rules []Rule, rng *rand.Rand) {
	// 1. Rule composition
	var force geometry.Vector3D
	for _, r := range rules {
		if b.Role == RoleLeader && !r.AppliesToLeader() {
			continue
		}
		force = force.Add(r.CalculateVector(b, ctx))
	}
	b.Vel = b.Vel.Add(force)

	// 2. Speed cap
	b.Vel = b.Vel.ClampLen(b.effectiveMaxSpeed(ctx.Params))

	// 3. Randomness injection
	r := ctx.Params.RandomnessPerTick
	b.randomBias = b.randomBias.Add(geometry.Vector3D{
		X: (rng.Float64() - 0.5) * r,
		Y: (rng.Float64() - 0.5) * r,
		Z: (rng.Float64() - 0.5) * r,
	})
	if b.randomBias.Len() > ctx.Params.RandomnessLimit {
		b.randomBias = b.randomBias.Mul(1.0 / 100.0)
	}
	b.Vel = b.Vel.Add(b.randomBias)

	// 4. Integration (unit-less per-tick displacement)
	b.Pos = b.Pos.Add(b.Vel)

	// 5. Orientation, purely from the new velocity
	b.Yaw = b.Vel.Yaw()
	b.Pitch = b.Vel.Pitch()
	b.recordHeading(b.Yaw)
}

// RandomBias exposes the current noise vector, mainly so tests and the
// inspector can verify the speed-cap invariant
// |Vel| <= maxSpeed + |randomBias|.
func (b *Boid) RandomBias() geometry.Vector3D {
	return b.randomBias
}
