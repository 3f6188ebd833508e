package flocking

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

func newTestSim(t *testing.T, mutate func(*Params)) *Simulation {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(p)
	}
	s, err := NewSimulation(p, DefaultRegistry(), 7)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

func TestSimulation_PopulationReconciliation(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.BoidCount = 50 })
	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(s.Boids()) != 50 {
		t.Fatalf("Expected 50 boids, got %d", len(s.Boids()))
	}

	// IDs are sequential and stable for the agent's lifetime.
	for i, b := range s.Boids() {
		if b.ID != i {
			t.Fatalf("Expected sequential ID %d, got %d", i, b.ID)
		}
	}

	// Shrinking to 30 removes exactly the last 20; the surviving 30 keep
	// their identity and state.
	survivors := make([]*Boid, 30)
	copy(survivors, s.Boids()[:30])

	s.Params().BoidCount = 30
	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(s.Boids()) != 30 {
		t.Fatalf("Expected 30 boids after shrink, got %d", len(s.Boids()))
	}
	for i, b := range s.Boids() {
		if b != survivors[i] {
			t.Fatalf("Survivor %d was replaced", i)
		}
	}

	// Shrinking an already-empty population is a no-op, not an error.
	s.Params().BoidCount = 0
	if err := s.Step(); err != nil {
		t.Fatalf("Step to empty: %v", err)
	}
	if err := s.Step(); err != nil {
		t.Fatalf("Step on empty: %v", err)
	}
}

func TestSimulation_SpawnInsideBounds(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.BoidCount = 200 })
	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	bounds := s.World().Bounds
	for _, b := range s.Boids() {
		// One integration step may have moved them a little; allow the
		// per-tick displacement as slack.
		slack := s.Params().MaxSpeed + s.Params().RandomnessLimit
		if b.Pos.X < bounds.Min.X-slack || b.Pos.X > bounds.Max.X+slack ||
			b.Pos.Y < bounds.Min.Y-slack || b.Pos.Y > bounds.Max.Y+slack ||
			b.Pos.Z < bounds.Min.Z-slack || b.Pos.Z > bounds.Max.Z+slack {
			t.Fatalf("Boid %d spawned outside bounds: %s", b.ID, b.Pos)
		}
	}
}

func TestSimulation_VisibilityIsStrict(t *testing.T) {
	s := newTestSim(t, func(p *Params) {
		p.BoidCount = 0
		p.VisibilityRadius = 10
		p.AngularVisibility = false
	})

	place := func(a, b geometry.Vector3D) []frozenAgent {
		s.boids = []*Boid{
			{ID: 0, Pos: a},
			{ID: 1, Pos: b},
		}
		return s.freeze()
	}

	// Exactly visibilityRadius apart: mutually invisible (strict <).
	frozen := place(geometry.Vector3D{}, geometry.Vector3D{X: 10})
	if n := s.neighborsOf(0, frozen); len(n) != 0 {
		t.Errorf("At exactly the radius: expected no neighbors, got %d", len(n))
	}
	if n := s.neighborsOf(1, frozen); len(n) != 0 {
		t.Errorf("At exactly the radius: expected no neighbors, got %d", len(n))
	}

	// A hair closer: mutually visible.
	frozen = place(geometry.Vector3D{}, geometry.Vector3D{X: 10 - 1e-9})
	if n := s.neighborsOf(0, frozen); len(n) != 1 {
		t.Errorf("Just inside the radius: expected 1 neighbor, got %d", len(n))
	}
	if n := s.neighborsOf(1, frozen); len(n) != 1 {
		t.Errorf("Just inside the radius: expected 1 neighbor, got %d", len(n))
	}
}

func TestSimulation_AngularVisibility(t *testing.T) {
	s := newTestSim(t, func(p *Params) {
		p.BoidCount = 0
		p.VisibilityRadius = 100
		p.AngularVisibility = true
		p.AngularThreshold = 1.0 // ~57 degrees half-angle
	})

	// Agent 0 flies along +X. Agent 1 sits ahead, agent 2 directly behind.
	s.boids = []*Boid{
		{ID: 0, Pos: geometry.Vector3D{}, Vel: geometry.Vector3D{X: 1}},
		{ID: 1, Pos: geometry.Vector3D{X: 20}},
		{ID: 2, Pos: geometry.Vector3D{X: -20}},
	}
	frozen := s.freeze()

	n := s.neighborsOf(0, frozen)
	if len(n) != 1 || n[0].ID != 1 {
		t.Fatalf("Expected only the agent ahead to be visible, got %+v", n)
	}
}

func TestSimulation_SingleBoidDriftOnly(t *testing.T) {
	// With one agent there are no neighbors and the open world has no
	// obstacles; with containment and randomness off no rule ever fires,
	// so the velocity never changes.
	s := newTestSim(t, func(p *Params) {
		p.BoidCount = 1
		p.ContainmentWeight = 0
		p.ObstacleWeight = 0
		p.RandomnessPerTick = 0
		p.MaxSpeed = 20
	})
	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	initial := s.Boids()[0].Vel

	for i := 0; i < 100; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if got := s.Boids()[0].Vel; !got.Eq(initial) {
		t.Errorf("Single agent with zero rules: velocity changed from %s to %s", initial, got)
	}
}

func TestSimulation_SpeedCapInvariantEndToEnd(t *testing.T) {
	s := newTestSim(t, func(p *Params) {
		p.BoidCount = 80
		p.WorldName = "pillars"
	})
	if err := s.SetWorld("pillars"); err != nil {
		t.Fatalf("SetWorld: %v", err)
	}
	for i := 0; i < 50; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		for _, b := range s.Boids() {
			limit := s.Params().MaxSpeed + b.RandomBias().Len() + geometry.Epsilon
			if b.Vel.Len() > limit {
				t.Fatalf("Tick %d: boid %d speed %f exceeds %f", i, b.ID, b.Vel.Len(), limit)
			}
		}
	}
}

func TestSimulation_Determinism(t *testing.T) {
	// The same seed must reproduce the same trajectories exactly.
	run := func() []AgentSnapshot {
		s := newTestSim(t, func(p *Params) { p.BoidCount = 40 })
		for i := 0; i < 30; i++ {
			if err := s.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("Population diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Trajectories diverged at agent %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulation_SetWorldAtomically(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.BoidCount = 10 })
	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	// Unknown names are errors and leave the active world untouched.
	if err := s.SetWorld("atlantis"); err == nil {
		t.Fatal("Expected an error for an unknown world name")
	}
	if s.World().Name != "open" {
		t.Fatalf("Failed switch must not change the world, got %q", s.World().Name)
	}

	// A valid switch replaces bounds and obstacles together.
	if err := s.SetWorld("pillars"); err != nil {
		t.Fatalf("SetWorld: %v", err)
	}
	w := s.World()
	if w.Name != "pillars" || len(w.Obstacles) == 0 {
		t.Fatalf("Expected the pillars world with its obstacles, got %q (%d obstacles)", w.Name, len(w.Obstacles))
	}
	if err := s.Step(); err != nil {
		t.Fatalf("Step after switch: %v", err)
	}
}

func TestSimulation_ApplyParamsRejectsInvalid(t *testing.T) {
	s := newTestSim(t, nil)
	before := *s.Params()

	bad := before
	bad.SeparationWeight = MaxRuleWeight + 1
	if err := s.ApplyParams(bad); err == nil {
		t.Fatal("Expected an error for an out-of-bounds weight")
	}
	bad = before
	bad.WorldName = "atlantis"
	if err := s.ApplyParams(bad); err == nil {
		t.Fatal("Expected an error for an unknown world")
	}
	if *s.Params() != before {
		t.Fatal("Rejected candidates must not leak into the live params")
	}

	good := before
	good.CohesionWeight = 1.5
	if err := s.ApplyParams(good); err != nil {
		t.Fatalf("ApplyParams: %v", err)
	}
	if s.Params().CohesionWeight != 1.5 {
		t.Fatal("Accepted candidate was not applied")
	}
}

func BenchmarkSimulationStep(b *testing.B) {
	p := DefaultParams()
	p.BoidCount = 200
	s, err := NewSimulation(p, DefaultRegistry(), 7)
	if err != nil {
		b.Fatalf("NewSimulation: %v", err)
	}
	_ = s.Step() // populate

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Step()
	}
}

func BenchmarkNeighborsOf(b *testing.B) {
	p := DefaultParams()
	p.BoidCount = 300
	s, err := NewSimulation(p, DefaultRegistry(), 7)
	if err != nil {
		b.Fatalf("NewSimulation: %v", err)
	}
	_ = s.Step()
	frozen := s.freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.neighborsOf(i%len(frozen), frozen)
	}
}
