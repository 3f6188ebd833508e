package flocking

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// AgentSnapshot is the render-facing view of one agent: identity,
// position and derived orientation. The view layer creates/destroys one
// visual per ID as agents come and go.
type AgentSnapshot struct {
	ID    int
	Pos   geometry.Vector3D
	Vel   geometry.Vector3D
	Yaw   float64
	Pitch float64
	Role  Role
}

// Simulation owns the agent collection, the ordered rule list, the active
// world and the tunables. One call to Step is one tick; the engine is
// single-threaded and a tick always runs to completion before the next
// starts. All randomness flows through one seedable source so a given
// seed reproduces the same trajectories.
type Simulation struct {
	params   *Params
	registry *Registry
	world    *World
	rules    []Rule
	boids    []*Boid
	nextID   int
	tick     uint64
	rng      *rand.Rand

	// The predator rule keeps a mutable flee point the view layer moves;
	// held here so it survives weight re-syncs.
	predator *PredatorAvoidanceRule
}

// NewSimulation builds a simulation from validated params, resolving the
// active world from the registry. The seed fixes every random decision
// (spawn placement, bias drift, leader sampling).
func NewSimulation(p *Params, registry *Registry, seed uint64) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	world, err := registry.World(p.WorldName)
	if err != nil {
		return nil, err
	}

	predator := NewPredatorAvoidanceRule(p.PredatorWeight, 60.0)
	s := &Simulation{
		params:   p,
		registry: registry,
		world:    world,
		rng:      rand.New(rand.NewPCG(seed, seed)),
		predator: predator,
		rules: []Rule{
			NewSeparationRule(p.SeparationWeight),
			NewCohesionRule(p.CohesionWeight),
			NewAlignmentRule(p.AlignmentWeight),
			NewContainmentRule(p.ContainmentWeight),
			NewObstacleAvoidanceRule(p.ObstacleWeight),
			NewFollowLeaderRule(p.FollowLeaderWeight),
			predator,
		},
	}
	return s, nil
}

// Params exposes the live tunables. Mutate between ticks only, and go
// through ApplyParams for anything that needs validation.
func (s *Simulation) Params() *Params { return s.params }

// World returns the active world.
func (s *Simulation) World() *World { return s.world }

// Rules returns the ordered rule list. The slice is shared; callers must
// not grow or reorder it.
func (s *Simulation) Rules() []Rule { return s.rules }

// Boids returns the live agent collection, owned exclusively by the
// simulation. Read-only for callers.
func (s *Simulation) Boids() []*Boid { return s.boids }

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 { return s.tick }

// Predator exposes the predator-avoidance rule so the view layer can move
// the flee point.
func (s *Simulation) Predator() *PredatorAvoidanceRule { return s.predator }

// ApplyParams validates a candidate parameter set and installs it
// atomically between ticks. A candidate naming an unknown world is
// rejected as a whole: no partial application.
func (s *Simulation) ApplyParams(candidate Params) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	world, err := s.registry.World(candidate.WorldName)
	if err != nil {
		return err
	}
	*s.params = candidate
	s.world = world
	return nil
}

// SetWorld switches the active world by name, atomically: bounds and
// obstacles always change together, and only between ticks. Unknown names
// are errors, never a fallback.
func (s *Simulation) SetWorld(name string) error {
	world, err := s.registry.World(name)
	if err != nil {
		return err
	}
	s.world = world
	s.params.WorldName = name
	return nil
}

// Step advances the whole flock by one tick:
//
//	(a) reconcile the live population with the target count,
//	(b) freeze a snapshot of every agent's position/velocity/role,
//	(c) compute each agent's neighbor set against the snapshot,
//	(d) run the leader state machine and the per-agent update.
//
// Because neighbor queries read the frozen snapshot, no agent ever
// observes a partially-updated flock mid-tick and the result is
// independent of agent iteration order.
func (s *Simulation) Step() error {
	p := s.params
	dropoff, err := NewDropoff(p.DropoffKind, p.DropoffConst, p.VisibilityRadius)
	if err != nil {
		return err
	}
	if err := s.syncRuleWeights(); err != nil {
		return err
	}
	s.reconcilePopulation()

	frozen := s.freeze()
	ctx := Context{Params: p, World: s.world, Dropoff: dropoff}

	for i, b := range s.boids {
		ctx.Neighbors = s.neighborsOf(i, frozen)
		b.updateRole(len(ctx.Neighbors), p, s.rng)
		b.Update(&ctx, s.rules, s.rng)
	}

	s.tick++
	return nil
}

// syncRuleWeights re-reads the per-rule weights from the live params so
// slider edits take effect on the next tick. Params are validated on
// write, so these sets only fail on a direct out-of-bounds field poke.
func (s *Simulation) syncRuleWeights() error {
	p := s.params
	for _, r := range s.rules {
		var w float64
		switch r.Name() {
		case "separation":
			w = p.SeparationWeight
		case "cohesion":
			w = p.CohesionWeight
		case "alignment":
			w = p.AlignmentWeight
		case "containment":
			w = p.ContainmentWeight
		case "obstacleAvoidance":
			w = p.ObstacleWeight
		case "followLeader":
			w = p.FollowLeaderWeight
		case "predatorAvoidance":
			w = p.PredatorWeight
		default:
			continue
		}
		if err := r.SetWeight(w); err != nil {
			return err
		}
	}
	return nil
}

// reconcilePopulation grows or shrinks the agent collection toward the
// target count. New agents get sequential IDs and randomized state inside
// the current bounds; removal always trims from the end, preserving the
// identity and state of the survivors. Shrinking an empty collection is a
// no-op.
func (s *Simulation) reconcilePopulation() {
	target := s.params.BoidCount
	if target < 0 {
		target = 0
	}

	for len(s.boids) < target {
		s.boids = append(s.boids, s.spawn())
	}
	if len(s.boids) > target {
		s.boids = s.boids[:target]
	}
}

func (s *Simulation) spawn() *Boid {
	bounds := s.world.Bounds
	size := bounds.Size()
	pos := geometry.Vector3D{
		X: bounds.Min.X + s.rng.Float64()*size.X,
		Y: bounds.Min.Y + s.rng.Float64()*size.Y,
		Z: bounds.Min.Z + s.rng.Float64()*size.Z,
	}
	// Uniformly random direction at half cruise speed.
	theta := s.rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*s.rng.Float64() - 1)
	vel := geometry.NewVectorSpherical(s.params.MaxSpeed*0.5, theta, phi)

	b := &Boid{ID: s.nextID, Pos: pos, Vel: vel}
	s.nextID++
	return b
}

// frozenAgent is one entry of the pre-tick state snapshot.
type frozenAgent struct {
	id   int
	pos  geometry.Vector3D
	vel  geometry.Vector3D
	role Role
}

func (s *Simulation) freeze() []frozenAgent {
	frozen := make([]frozenAgent, len(s.boids))
	for i, b := range s.boids {
		frozen[i] = frozenAgent{id: b.ID, pos: b.Pos, vel: b.Vel, role: b.Role}
	}
	return frozen
}

// neighborsOf returns agent i's neighbor set from the frozen snapshot:
// every other agent strictly closer than the visibility radius, optionally
// restricted to those within the angular threshold of i's heading.
//
// O(n) per agent, O(n²) per tick. Fine at the target scale; this is the
// seam to put a spatial grid behind for bigger flocks, without touching
// any rule logic.
func (s *Simulation) neighborsOf(i int, frozen []frozenAgent) []Neighbor {
	p := s.params
	me := frozen[i]
	var neighbors []Neighbor

	for j := range frozen {
		if j == i {
			continue
		}
		other := frozen[j]
		dist := me.pos.DistanceTo(other.pos)
		if dist >= p.VisibilityRadius {
			continue
		}
		if p.AngularVisibility {
			toOther := other.pos.Sub(me.pos)
			if me.vel.AngleBetween(toOther) > p.AngularThreshold {
				continue
			}
		}
		neighbors = append(neighbors, Neighbor{
			ID:   other.id,
			Pos:  other.pos,
			Vel:  other.vel,
			Dist: dist,
			Role: other.role,
		})
	}
	return neighbors
}

// Snapshot exports the render-facing state of every live agent.
func (s *Simulation) Snapshot() []AgentSnapshot {
	out := make([]AgentSnapshot, len(s.boids))
	for i, b := range s.boids {
		out[i] = AgentSnapshot{
			ID:    b.ID,
			Pos:   b.Pos,
			Vel:   b.Vel,
			Yaw:   b.Yaw,
			Pitch: b.Pitch,
			Role:  b.Role,
		}
	}
	return out
}
