package flocking

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// testContext builds a rule context with uniform neighbor weighting so
// rule math is easy to reason about in isolation.
func testContext(neighbors ...Neighbor) *Context {
	return &Context{
		Neighbors: neighbors,
		Params:    DefaultParams(),
		World:     mustWorld("open"),
		Dropoff:   NoDropoff{Const: 1},
	}
}

func mustWorld(name string) *World {
	w, err := DefaultRegistry().World(name)
	if err != nil {
		panic(err)
	}
	return w
}

func TestSocialRules_EmptyNeighborsReturnZero(t *testing.T) {
	// An isolated agent is a steady-state condition, not an error:
	// every social rule must contribute the exact zero vector.
	self := &Boid{Pos: geometry.Vector3D{X: 1, Y: 2, Z: 3}, Vel: geometry.Vector3D{X: 1}}
	ctx := testContext()

	rules := []Rule{
		NewSeparationRule(1),
		NewCohesionRule(1),
		NewAlignmentRule(1),
		NewFollowLeaderRule(1),
	}
	for _, r := range rules {
		if got := r.CalculateVector(self, ctx); got != (geometry.Vector3D{}) {
			t.Errorf("%s with no neighbors: expected zero vector, got %s", r.Name(), got)
		}
	}
}

func TestSeparationRule_PushesAway(t *testing.T) {
	// Neighbor at +X, so the push must point along -X with the rule weight
	// as magnitude (single neighbor, normalized direction).
	self := &Boid{Pos: geometry.Vector3D{}}
	ctx := testContext(Neighbor{Pos: geometry.Vector3D{X: 2}, Dist: 2})

	r := NewSeparationRule(0.5)
	got := r.CalculateVector(self, ctx)
	if got.X >= 0 {
		t.Errorf("Expected negative X push, got %s", got)
	}
	if math.Abs(got.Len()-0.5) > 1e-9 {
		t.Errorf("Expected magnitude 0.5 (the rule weight), got %f", got.Len())
	}
	if got.Y != 0 || got.Z != 0 {
		t.Errorf("Expected push along X only, got %s", got)
	}
}

func TestSeparationRule_DropoffFavorsNearNeighbor(t *testing.T) {
	// Near neighbor at +X, far neighbor at -X. With inverse-proportional
	// weighting the near one dominates, so the net push is -X.
	self := &Boid{Pos: geometry.Vector3D{}}
	ctx := testContext(
		Neighbor{Pos: geometry.Vector3D{X: 1}, Dist: 1},
		Neighbor{Pos: geometry.Vector3D{X: -10}, Dist: 10},
	)
	ctx.Dropoff = InverseProportionalDropoff{Const: 1}

	got := NewSeparationRule(1).CalculateVector(self, ctx)
	if got.X >= 0 {
		t.Errorf("Expected the near neighbor to win (negative X), got %s", got)
	}
}

func TestCohesionRule_PullsTowardCentroid(t *testing.T) {
	self := &Boid{Pos: geometry.Vector3D{}}
	ctx := testContext(
		Neighbor{Pos: geometry.Vector3D{X: 10, Z: 2}, Dist: 10.2},
		Neighbor{Pos: geometry.Vector3D{X: 10, Z: -2}, Dist: 10.2},
	)

	got := NewCohesionRule(1).CalculateVector(self, ctx)
	if got.X <= 0 {
		t.Errorf("Expected pull toward +X centroid, got %s", got)
	}
	if math.Abs(got.Z) > 1e-9 {
		t.Errorf("Symmetric neighbors: expected no Z pull, got %s", got)
	}
}

func TestAlignmentRule_MatchesHeadings(t *testing.T) {
	self := &Boid{Pos: geometry.Vector3D{}}
	ctx := testContext(
		Neighbor{Pos: geometry.Vector3D{X: 5}, Dist: 5, Vel: geometry.Vector3D{X: 3}},
		Neighbor{Pos: geometry.Vector3D{Z: 5}, Dist: 5, Vel: geometry.Vector3D{X: 1}},
	)

	got := NewAlignmentRule(2).CalculateVector(self, ctx)
	// Both neighbors head along +X at different speeds; normalized
	// directions agree, so the force is the full rule weight along +X.
	if math.Abs(got.X-2) > 1e-9 || got.Y != 0 || got.Z != 0 {
		t.Errorf("Expected (2, 0, 0), got %s", got)
	}
}

func TestContainmentRule_RestoresTowardInterior(t *testing.T) {
	r := NewContainmentRule(1)
	world := mustWorld("open") // x,z in [-200, 200], y in [0, 200]
	ctx := &Context{Params: DefaultParams(), World: world, Dropoff: NoDropoff{Const: 1}}

	// Dead center: no force at all.
	center := &Boid{Pos: geometry.Vector3D{Y: 100}}
	if got := r.CalculateVector(center, ctx); got != (geometry.Vector3D{}) {
		t.Errorf("Centered agent: expected zero force, got %s", got)
	}

	// Near the min-X face: pushed back toward +X.
	nearEdge := &Boid{Pos: geometry.Vector3D{X: -195, Y: 100}}
	inside := r.CalculateVector(nearEdge, ctx)
	if inside.X <= 0 {
		t.Errorf("Agent near min-X face: expected +X restore, got %s", inside)
	}

	// Beyond the face the force keeps growing; it steers, never clamps.
	outside := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: -230, Y: 100}}, ctx)
	if outside.X <= inside.X {
		t.Errorf("Force must grow past the boundary: inside=%f outside=%f", inside.X, outside.X)
	}

	// Above the ceiling: pushed down.
	high := r.CalculateVector(&Boid{Pos: geometry.Vector3D{Y: 250}}, ctx)
	if high.Y >= 0 {
		t.Errorf("Agent above ceiling: expected -Y restore, got %s", high)
	}
}

func TestObstacleAvoidance_MonotonicInDistance(t *testing.T) {
	// For a fixed obstacle and sharpness, the repulsion magnitude must be
	// non-increasing as the distance from the surface grows.
	world := &World{
		Name:      "one-pillar",
		Bounds:    CenteredBounds(400, 200, 400),
		Obstacles: []Cylinder{{X: 0, Z: 0, Radius: 10}},
	}
	ctx := &Context{Params: DefaultParams(), World: world, Dropoff: NoDropoff{Const: 1}}
	r := NewObstacleAvoidanceRule(1)

	prev := math.Inf(1)
	for _, x := range []float64{11, 15, 20, 30, 60, 120} {
		b := &Boid{Pos: geometry.Vector3D{X: x, Y: 50}}
		mag := r.CalculateVector(b, ctx).Len()
		if mag > prev {
			t.Errorf("Repulsion grew with distance at x=%f: %f > %f", x, mag, prev)
		}
		prev = mag
	}

	// Direction must point away from the axis in the XZ plane.
	force := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: 12, Y: 50}}, ctx)
	if force.X <= 0 || force.Y != 0 {
		t.Errorf("Expected planar +X repulsion, got %s", force)
	}
}

func TestObstacleAvoidance_InsideClampsToSurface(t *testing.T) {
	// The planar distance is clamped to zero inside the cylinder, so the
	// force inside equals the force at the surface, never less.
	world := &World{
		Name:      "one-pillar",
		Bounds:    CenteredBounds(400, 200, 400),
		Obstacles: []Cylinder{{X: 0, Z: 0, Radius: 10}},
	}
	ctx := &Context{Params: DefaultParams(), World: world, Dropoff: NoDropoff{Const: 1}}
	r := NewObstacleAvoidanceRule(1)

	atSurface := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: 10, Y: 50}}, ctx).Len()
	inside := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: 5, Y: 50}}, ctx).Len()
	if math.Abs(atSurface-inside) > 1e-9 {
		t.Errorf("Inside force %f differs from surface force %f", inside, atSurface)
	}
}

func TestObstacleAvoidance_AlwaysAppliesToLeaders(t *testing.T) {
	if !NewObstacleAvoidanceRule(1).AppliesToLeader() {
		t.Error("Obstacle avoidance must bind leader-role agents")
	}
	if !NewContainmentRule(1).AppliesToLeader() {
		t.Error("Containment must bind leader-role agents")
	}
	if NewCohesionRule(1).AppliesToLeader() {
		t.Error("Cohesion is a social rule; leaders are exempt")
	}
}

func TestFollowLeaderRule(t *testing.T) {
	self := &Boid{Pos: geometry.Vector3D{}}
	ctx := testContext(
		Neighbor{Pos: geometry.Vector3D{X: 30}, Dist: 30, Role: RoleFollower},
		Neighbor{Pos: geometry.Vector3D{X: -10}, Dist: 10, Role: RoleLeader},
		Neighbor{Pos: geometry.Vector3D{Z: 40}, Dist: 40, Role: RoleLeader},
	)

	r := NewFollowLeaderRule(1)
	got := r.CalculateVector(self, ctx)
	// Must steer toward the nearest leader (-X), not the follower or the
	// farther leader.
	if got.X >= 0 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("Expected steer toward nearest leader at -X, got %s", got)
	}

	// A leader ignores this rule entirely.
	self.Role = RoleLeader
	if got := r.CalculateVector(self, ctx); got != (geometry.Vector3D{}) {
		t.Errorf("Leader following leaders: expected zero, got %s", got)
	}
}

func TestPredatorAvoidanceRule(t *testing.T) {
	r := NewPredatorAvoidanceRule(1, 50)
	r.Predator = geometry.Vector3D{X: 10}
	ctx := testContext()

	// Inside the flee radius: pushed directly away, harder when closer.
	near := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: 15}}, ctx)
	far := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: 50}}, ctx)
	if near.X <= 0 || far.X <= 0 {
		t.Errorf("Expected +X flight, got near=%s far=%s", near, far)
	}
	if near.Len() <= far.Len() {
		t.Errorf("Closer predator must push harder: near=%f far=%f", near.Len(), far.Len())
	}

	// Outside the radius: no force.
	if got := r.CalculateVector(&Boid{Pos: geometry.Vector3D{X: 100}}, ctx); got != (geometry.Vector3D{}) {
		t.Errorf("Outside flee radius: expected zero, got %s", got)
	}
}

func TestRule_SetWeightBounds(t *testing.T) {
	r := NewSeparationRule(1)
	if err := r.SetWeight(MaxRuleWeight + 0.1); err == nil {
		t.Error("Expected an error for a weight above the declared bound")
	}
	if err := r.SetWeight(MinRuleWeight - 0.1); err == nil {
		t.Error("Expected an error for a weight below the declared bound")
	}
	if r.Weight() != 1 {
		t.Errorf("Failed writes must not change the weight, got %f", r.Weight())
	}
	if err := r.SetWeight(2.5); err != nil || r.Weight() != 2.5 {
		t.Errorf("Valid write failed: err=%v weight=%f", err, r.Weight())
	}
}
