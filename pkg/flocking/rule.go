package flocking

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// Neighbor is a frozen view of another agent, captured before any agent
// moved this tick. Rules only ever see these snapshots, so neighbor
// influence is independent of the order agents are updated in.
type Neighbor struct {
	ID   int
	Pos  geometry.Vector3D
	Vel  geometry.Vector3D
	Dist float64
	Role Role
}

// Context carries everything a rule may read for one evaluation: the
// agent's neighbor snapshots, the live tunables, the current world and the
// active dropoff. The world is passed in fresh on every call; rules never
// cache a world reference of their own.
type Context struct {
	Neighbors []Neighbor
	Params    *Params
	World     *World
	Dropoff   Dropoff
}

// Rule is a pluggable steering strategy. CalculateVector returns the force
// (a velocity delta) for one agent, already multiplied by the rule's own
// weight. It must be a pure function of its inputs and return the zero
// vector for any degenerate case (no neighbors, zero weight sums).
type Rule interface {
	Name() string
	Weight() float64
	SetWeight(w float64) error
	// AppliesToLeader marks rules that bind even leader-role agents
	// (hard safety constraints rather than social behaviors).
	AppliesToLeader() bool
	CalculateVector(self *Boid, ctx *Context) geometry.Vector3D
}

// baseRule carries the shared name/weight/leader-flag plumbing so each
// concrete rule only implements CalculateVector.
type baseRule struct {
	name          string
	weight        float64
	alwaysApplies bool
}

func (r *baseRule) Name() string          { return r.name }
func (r *baseRule) Weight() float64       { return r.weight }
func (r *baseRule) AppliesToLeader() bool { return r.alwaysApplies }

func (r *baseRule) SetWeight(w float64) error {
	if w < MinRuleWeight || w > MaxRuleWeight {
		return fmt.Errorf("rule %s: weight %.3f outside [%.1f, %.1f]", r.name, w, MinRuleWeight, MaxRuleWeight)
	}
	r.weight = w
	return nil
}
