package simulation

import (
	"math"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// WorldActor owns the flocking engine. Its mailbox serializes every Tick
// and UpdateConfig, so the engine keeps its single-threaded tick
// semantics: one tick runs to completion before the next message is
// processed, and config changes land exactly between ticks.
type WorldActor struct {
	sim        *flocking.Simulation
	snapshotCh chan<- *pb.WorldSnapshot

	ticksDone  uint64
	lastReport time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor wraps an engine instance. Snapshots of each completed
// tick are pushed to snapshotCh; the send never blocks, a slow consumer
// just misses frames.
func NewWorldActor(sim *flocking.Simulation, snapshotCh chan<- *pb.WorldSnapshot) *WorldActor {
	return &WorldActor{sim: sim, snapshotCh: snapshotCh}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	w.lastReport = time.Now()
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		p := w.sim.Params()
		ctx.Logger().Infof("flock world started: %d agents in %q", p.BoidCount, p.WorldName)

	case *pb.Tick:
		w.movePredator()
		if err := w.sim.Step(); err != nil {
			ctx.Logger().Errorf("tick %d failed: %v", w.sim.Tick(), err)
			return
		}
		w.ticksDone++
		w.reportRate(ctx)

		snapshot := snapshotToProto(w.sim.Tick(), w.sim.Snapshot())

		// Non-blocking send so a busy renderer never stalls the engine
		select {
		case w.snapshotCh <- snapshot:
		default:
		}

	case *pb.UpdateConfig:
		candidate := paramsFromConfig(w.sim.Params(), msg)
		if err := w.sim.ApplyParams(candidate); err != nil {
			ctx.Logger().Warnf("rejected config update: %v", err)
		}

	default:
		ctx.Unhandled()
	}
}

// movePredator drifts the threat point on a slow orbit through the
// volume so the avoidance rule has something to flee from. Skipped
// entirely while the rule weight is zero.
func (w *WorldActor) movePredator() {
	if w.sim.Params().PredatorWeight <= 0 {
		return
	}
	bounds := w.sim.World().Bounds
	t := float64(w.sim.Tick()) * 0.004
	rx := bounds.Size().X * 0.35
	rz := bounds.Size().Z * 0.35
	w.sim.Predator().Predator = geometry.Vector3D{
		X: rx * math.Cos(t),
		Y: bounds.Min.Y + bounds.Size().Y*0.5,
		Z: rz * math.Sin(t),
	}
}

func (w *WorldActor) reportRate(ctx *actor.ReceiveContext) {
	if elapsed := time.Since(w.lastReport); elapsed >= 5*time.Second {
		rate := float64(w.ticksDone) / elapsed.Seconds()
		ctx.Logger().Infof("simulated %d agents at %.1f ticks/s", len(w.sim.Boids()), rate)
		w.ticksDone = 0
		w.lastReport = time.Now()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("flock world stopped after %d ticks", w.sim.Tick())
	return nil
}
