package flocking

import (
	"math"
	"testing"
)

// straightBoid returns a boid whose heading history is a dead-straight
// path, so its eccentricity is ~1.
func straightBoid() *Boid {
	b := &Boid{}
	for i := 0; i < headingHistoryLen; i++ {
		b.recordHeading(0.8)
	}
	return b
}

func TestEccentricity(t *testing.T) {
	// Straight path: mean resultant length ~ 1.
	if ecc := straightBoid().Eccentricity(); math.Abs(ecc-1) > 1e-9 {
		t.Errorf("Straight path: expected eccentricity ~1, got %f", ecc)
	}

	// Circling path: headings spread over the full circle, resultant ~0.
	circling := &Boid{}
	for i := 0; i < headingHistoryLen; i++ {
		circling.recordHeading(float64(i) / headingHistoryLen * 2 * math.Pi)
	}
	if ecc := circling.Eccentricity(); ecc > 0.1 {
		t.Errorf("Circling path: expected eccentricity ~0, got %f", ecc)
	}

	// Too little history: no signal yet.
	young := &Boid{}
	young.recordHeading(0.5)
	if ecc := young.Eccentricity(); ecc != 0 {
		t.Errorf("Short history: expected 0, got %f", ecc)
	}
}

func TestUpdateRole_PromotionRequiresLowNeighborCount(t *testing.T) {
	p := DefaultParams()
	p.LeadersEnabled = true
	p.BecomeLeaderProbability = 1.0 // promote whenever eligible
	p.NeighbourCountThreshold = 3
	rng := testRNG()

	// Crowded agent: must never be promoted, even with probability 1.
	crowded := straightBoid()
	for i := 0; i < 100; i++ {
		crowded.updateRole(p.NeighbourCountThreshold+1, p, rng)
		if crowded.Role == RoleLeader {
			t.Fatal("Agent above the neighbor-count threshold was promoted")
		}
	}

	// Fringe agent with a straight path: promoted on the first sample.
	fringe := straightBoid()
	fringe.updateRole(p.NeighbourCountThreshold, p, rng)
	if fringe.Role != RoleLeader {
		t.Error("Eligible fringe agent was not promoted with probability 1")
	}
	if fringe.leaderTicksLeft != p.MaxLeaderTicks {
		t.Errorf("Expected full tenure %d, got %d", p.MaxLeaderTicks, fringe.leaderTicksLeft)
	}
}

func TestUpdateRole_PromotionRequiresEccentricity(t *testing.T) {
	p := DefaultParams()
	p.LeadersEnabled = true
	p.BecomeLeaderProbability = 1.0
	rng := testRNG()

	// A dithering agent never qualifies, regardless of isolation.
	circling := &Boid{}
	for i := 0; i < headingHistoryLen; i++ {
		circling.recordHeading(float64(i) / headingHistoryLen * 2 * math.Pi)
	}
	for i := 0; i < 100; i++ {
		circling.updateRole(0, p, rng)
	}
	if circling.Role == RoleLeader {
		t.Error("Agent below the eccentricity threshold was promoted")
	}
}

func TestUpdateRole_TenureExpiry(t *testing.T) {
	p := DefaultParams()
	p.LeadersEnabled = true
	rng := testRNG()

	b := straightBoid()
	b.Role = RoleLeader
	b.leaderTicksLeft = 3

	for i := 0; i < 2; i++ {
		b.updateRole(0, p, rng)
		if b.Role != RoleLeader {
			t.Fatalf("Leader relegated %d ticks early", 3-i)
		}
	}
	b.updateRole(0, p, rng)
	if b.Role != RoleFollower {
		t.Error("Leader kept the role past its tenure")
	}
}

func TestUpdateRole_CrowdingEndsLeadership(t *testing.T) {
	p := DefaultParams()
	p.LeadersEnabled = true
	rng := testRNG()

	b := straightBoid()
	b.Role = RoleLeader
	b.leaderTicksLeft = 1000

	// The moment the flock catches up, leadership ends immediately.
	b.updateRole(p.NeighbourCountThreshold+1, p, rng)
	if b.Role != RoleFollower {
		t.Error("Crowded leader kept the role")
	}
}

func TestUpdateRole_DisabledForcesFollower(t *testing.T) {
	p := DefaultParams()
	p.LeadersEnabled = false
	rng := testRNG()

	b := straightBoid()
	b.Role = RoleLeader
	b.leaderTicksLeft = 100
	b.updateRole(0, p, rng)
	if b.Role != RoleFollower {
		t.Error("Disabling leaders must relegate existing ones")
	}
}

func TestEffectiveMaxSpeed_Profile(t *testing.T) {
	p := DefaultParams()
	p.MaxSpeed = 2.0
	p.MaxLeaderTicks = 100
	p.PeakSpeedMultiplier = 2.0
	p.SpeedRampFraction = 0.5

	follower := &Boid{}
	if got := follower.effectiveMaxSpeed(p); got != 2.0 {
		t.Errorf("Follower: expected MaxSpeed, got %f", got)
	}

	leader := &Boid{Role: RoleLeader}

	// Fresh leader: no boost yet.
	leader.leaderTicksLeft = 100
	if got := leader.effectiveMaxSpeed(p); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Fresh leader: expected 2.0, got %f", got)
	}

	// Peak at the end of the ramp (progress 0.5).
	leader.leaderTicksLeft = 50
	if got := leader.effectiveMaxSpeed(p); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("Peak: expected 4.0, got %f", got)
	}

	// Relaxing back toward normal at the end of tenure.
	leader.leaderTicksLeft = 1
	got := leader.effectiveMaxSpeed(p)
	if got > 2.1 || got < 2.0 {
		t.Errorf("End of tenure: expected ~2.0, got %f", got)
	}
}
