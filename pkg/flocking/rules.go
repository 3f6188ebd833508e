package flocking

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// SeparationRule steers an agent away from its neighbors, weighting each
// neighbor's push by the active dropoff so near neighbors dominate.
type SeparationRule struct {
	baseRule
}

func NewSeparationRule(weight float64) *SeparationRule {
	return &SeparationRule{baseRule{name: "separation", weight: weight}}
}

func (r *SeparationRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	if len(ctx.Neighbors) == 0 {
		return geometry.Vector3D{}
	}

	var sum geometry.Vector3D
	totalWeight := 0.0
	for _, n := range ctx.Neighbors {
		w := ctx.Dropoff.Evaluate(n.Dist)
		sum = sum.Add(self.Pos.Sub(n.Pos).Mul(w))
		totalWeight += w
	}
	if totalWeight <= 0 {
		return geometry.Vector3D{}
	}
	// Weighted average direction away from the crowd.
	return sum.Mul(1 / totalWeight).Normalize().Mul(r.weight)
}

// CohesionRule pulls an agent toward the dropoff-weighted centroid of its
// neighbors.
type CohesionRule struct {
	baseRule
}

func NewCohesionRule(weight float64) *CohesionRule {
	return &CohesionRule{baseRule{name: "cohesion", weight: weight}}
}

func (r *CohesionRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	if len(ctx.Neighbors) == 0 {
		return geometry.Vector3D{}
	}

	var centroid geometry.Vector3D
	totalWeight := 0.0
	for _, n := range ctx.Neighbors {
		w := ctx.Dropoff.Evaluate(n.Dist)
		centroid = centroid.Add(n.Pos.Mul(w))
		totalWeight += w
	}
	if totalWeight <= 0 {
		return geometry.Vector3D{}
	}
	centroid = centroid.Mul(1 / totalWeight)
	return centroid.Sub(self.Pos).Normalize().Mul(r.weight)
}

// AlignmentRule matches an agent's velocity to the dropoff-weighted
// average heading of its neighbors.
type AlignmentRule struct {
	baseRule
}

func NewAlignmentRule(weight float64) *AlignmentRule {
	return &AlignmentRule{baseRule{name: "alignment", weight: weight}}
}

func (r *AlignmentRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	if len(ctx.Neighbors) == 0 {
		return geometry.Vector3D{}
	}

	var sum geometry.Vector3D
	totalWeight := 0.0
	for _, n := range ctx.Neighbors {
		w := ctx.Dropoff.Evaluate(n.Dist)
		sum = sum.Add(n.Vel.Normalize().Mul(w))
		totalWeight += w
	}
	if totalWeight <= 0 {
		return geometry.Vector3D{}
	}
	// Average of unit headings: magnitude stays in [0, 1], so agreement
	// among neighbors strengthens the pull toward the shared direction.
	return sum.Mul(1 / totalWeight).Mul(r.weight)
}

// ContainmentRule produces a restoring force once an agent approaches or
// crosses the world bounds on any axis. It always steers, never clamps
// position, and the force keeps growing the deeper the agent strays.
// It binds leaders too.
type ContainmentRule struct {
	baseRule
	// Margin is the shell inside the bounds where the restoring force
	// ramps from 0 up to full weight (and past it once outside).
	Margin float64
}

func NewContainmentRule(weight float64) *ContainmentRule {
	return &ContainmentRule{
		baseRule: baseRule{name: "containment", weight: weight, alwaysApplies: true},
		Margin:   25.0,
	}
}

func (r *ContainmentRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	b := ctx.World.Bounds
	var force geometry.Vector3D
	force.X = axisRestore(self.Pos.X, b.Min.X, b.Max.X, r.Margin)
	force.Y = axisRestore(self.Pos.Y, b.Min.Y, b.Max.Y, r.Margin)
	force.Z = axisRestore(self.Pos.Z, b.Min.Z, b.Max.Z, r.Margin)
	return force.Mul(r.weight)
}

// axisRestore returns a push back toward the interior: 0 while the agent
// is more than margin away from both faces, ramping linearly to 1 at the
// face and beyond 1 once the agent has crossed it.
func axisRestore(pos, min, max, margin float64) float64 {
	if margin <= 0 {
		margin = 1
	}
	if d := pos - min; d < margin {
		return (margin - d) / margin
	}
	if d := max - pos; d < margin {
		return -(margin - d) / margin
	}
	return 0
}

// ObstacleAvoidanceRule repels agents from every cylinder obstacle with an
// exponentially increasing force as the distance to the surface shrinks.
// This is a hard safety constraint: it binds leaders too.
type ObstacleAvoidanceRule struct {
	baseRule
	// Sharpness is the repulsion base: force = Sharpness^-(dist-Offset).
	Sharpness float64
	// Offset shifts where the repulsion reaches full strength, so the
	// force is already Sharpness^Offset at the surface itself.
	Offset float64
}

func NewObstacleAvoidanceRule(weight float64) *ObstacleAvoidanceRule {
	return &ObstacleAvoidanceRule{
		baseRule:  baseRule{name: "obstacleAvoidance", weight: weight, alwaysApplies: true},
		Sharpness: 1.18,
		Offset:    6.0,
	}
}

func (r *ObstacleAvoidanceRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	if len(ctx.World.Obstacles) == 0 {
		return geometry.Vector3D{}
	}

	var force geometry.Vector3D
	for _, c := range ctx.World.Obstacles {
		away := geometry.Vector3D{X: self.Pos.X - c.X, Z: self.Pos.Z - c.Z}
		dir := away.Normalize()
		if dir.Eq(geometry.Vector3D{}) {
			// Exactly on the cylinder axis: no planar direction to push along.
			continue
		}
		dist := c.SurfaceDistance(self.Pos)
		magnitude := math.Pow(r.Sharpness, -(dist - r.Offset))
		force = force.Add(dir.Mul(magnitude))
	}
	return force.Mul(r.weight)
}

// FollowLeaderRule biases follower agents toward the nearest visible
// leader. Leaders themselves, and agents that see no leader, get no force.
type FollowLeaderRule struct {
	baseRule
}

func NewFollowLeaderRule(weight float64) *FollowLeaderRule {
	return &FollowLeaderRule{baseRule{name: "followLeader", weight: weight}}
}

func (r *FollowLeaderRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	if self.Role == RoleLeader {
		return geometry.Vector3D{}
	}

	var closest *Neighbor
	for i := range ctx.Neighbors {
		n := &ctx.Neighbors[i]
		if n.Role != RoleLeader {
			continue
		}
		if closest == nil || n.Dist < closest.Dist {
			closest = n
		}
	}
	if closest == nil {
		return geometry.Vector3D{}
	}
	return closest.Pos.Sub(self.Pos).Normalize().Mul(r.weight)
}

// PredatorAvoidanceRule steers agents directly away from a single predator
// point while it is within the flee radius. The point is mutable view-side
// state (e.g. bound to a pointer device); it is read fresh each tick.
type PredatorAvoidanceRule struct {
	baseRule
	Predator   geometry.Vector3D
	FleeRadius float64
}

func NewPredatorAvoidanceRule(weight, fleeRadius float64) *PredatorAvoidanceRule {
	return &PredatorAvoidanceRule{
		baseRule:   baseRule{name: "predatorAvoidance", weight: weight},
		FleeRadius: fleeRadius,
	}
}

func (r *PredatorAvoidanceRule) CalculateVector(self *Boid, ctx *Context) geometry.Vector3D {
	dist := self.Pos.DistanceTo(r.Predator)
	if dist >= r.FleeRadius {
		return geometry.Vector3D{}
	}
	// Stronger push the closer the predator gets.
	urgency := 1 - dist/r.FleeRadius
	return self.Pos.Sub(r.Predator).Normalize().Mul(r.weight * urgency)
}
