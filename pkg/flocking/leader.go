package flocking

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

// Role is the behavioral role of an agent. Leadership is a probabilistic,
// time-boxed role, not a fixed agent: any follower on the fringe of the
// flock may be promoted, and every leader eventually relegates itself.
type Role int

const (
	RoleFollower Role = iota
	RoleLeader
)

func (r Role) String() string {
	if r == RoleLeader {
		return "leader"
	}
	return "follower"
}

// headingHistoryLen is how many recent yaw samples feed the eccentricity
// measure. Long enough to smooth jitter, short enough to react within a
// couple of seconds at 60 ticks/s.
const headingHistoryLen = 40

// recordHeading appends the agent's current yaw to its ring buffer of
// recent headings.
func (b *Boid) recordHeading(yaw float64) {
	if len(b.headings) < headingHistoryLen {
		b.headings = append(b.headings, yaw)
		return
	}
	b.headings[b.headingIdx] = yaw
	b.headingIdx = (b.headingIdx + 1) % headingHistoryLen
}

// Eccentricity measures path straightness as the mean resultant length of
// the recent heading history: 1.0 is a perfectly straight path, values
// near 0 mean the agent has been circling or dithering. Returns 0 until
// enough history has accumulated.
func (b *Boid) Eccentricity() float64 {
	if len(b.headings) < headingHistoryLen/2 {
		return 0
	}
	cosines := make([]float64, len(b.headings))
	sines := make([]float64, len(b.headings))
	for i, yaw := range b.headings {
		cosines[i] = math.Cos(yaw)
		sines[i] = math.Sin(yaw)
	}
	mc := stat.Mean(cosines, nil)
	ms := stat.Mean(sines, nil)
	return math.Hypot(mc, ms)
}

// updateRole runs the leader state machine for one agent, one tick.
//
// Follower -> Leader: a follower with at most NeighbourCountThreshold
// neighbors and an eccentricity above EccentricityThreshold is promoted
// with probability BecomeLeaderProbability, sampled independently per
// tick per agent.
//
// Leader -> Follower: automatic once the tenure countdown expires, or
// immediately when the agent's neighbor count rises back above threshold.
func (b *Boid) updateRole(neighborCount int, p *Params, rng *rand.Rand) {
	if !p.LeadersEnabled {
		b.Role = RoleFollower
		b.leaderTicksLeft = 0
		return
	}

	switch b.Role {
	case RoleLeader:
		b.leaderTicksLeft--
		if b.leaderTicksLeft <= 0 || neighborCount > p.NeighbourCountThreshold {
			b.Role = RoleFollower
			b.leaderTicksLeft = 0
		}
	case RoleFollower:
		if neighborCount > p.NeighbourCountThreshold {
			return
		}
		if b.Eccentricity() <= p.EccentricityThreshold {
			return
		}
		if rng.Float64() < p.BecomeLeaderProbability {
			b.Role = RoleLeader
			b.leaderTicksLeft = p.MaxLeaderTicks
		}
	}
}

// effectiveMaxSpeed returns the agent's speed cap for this tick. Followers
// use MaxSpeed directly. A leader's cap follows a tenure profile: it ramps
// from MaxSpeed toward PeakSpeedMultiplier*MaxSpeed over the first
// SpeedRampFraction of its leadership, then relaxes back toward MaxSpeed
// for the remainder.
func (b *Boid) effectiveMaxSpeed(p *Params) float64 {
	if b.Role != RoleLeader || p.MaxLeaderTicks <= 0 {
		return p.MaxSpeed
	}
	progress := 1 - float64(b.leaderTicksLeft)/float64(p.MaxLeaderTicks)
	peak := p.PeakSpeedMultiplier
	ramp := p.SpeedRampFraction

	var mult float64
	if progress < ramp {
		mult = 1 + (peak-1)*(progress/ramp)
	} else {
		mult = peak - (peak-1)*((progress-ramp)/(1-ramp))
	}
	return p.MaxSpeed * mult
}
