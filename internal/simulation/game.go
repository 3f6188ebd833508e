package simulation

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"

	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/ui"
)

const (
	ScreenWidth  = 1000
	ScreenHeight = 700
	panelWidth   = 260

	viewMargin = 20
)

// Game drives the actor-hosted simulation: it forwards the control panel
// state to the world actor, asks for one tick per frame and renders the
// latest snapshot it received back. The view is a top-down projection of
// the volume (X/Z plane), with altitude shown as marker size.
type Game struct {
	System actor.ActorSystem

	ctx      context.Context
	worldPID *actor.PID
	updates  chan *pb.WorldSnapshot
	last     *pb.WorldSnapshot

	registry *flocking.Registry
	panel    *ui.Panel

	// Widget handles, read back every frame
	wBoidCount   *ui.Slider
	wMaxSpeed    *ui.Slider
	wVisibility  *ui.Slider
	wAngularOn   *ui.Checkbox
	wAngular     *ui.Slider
	wRandomTick  *ui.Slider
	wRandomLimit *ui.Slider
	wWorld       *ui.Selector
	wDropoff     *ui.Selector
	wDropConst   *ui.Slider
	wSeparation  *ui.Slider
	wCohesion    *ui.Slider
	wAlignment   *ui.Slider
	wContainment *ui.Slider
	wObstacle    *ui.Slider
	wFollow      *ui.Slider
	wPredator    *ui.Slider
	wLeaders     *ui.Checkbox
	wObstaclesOn *ui.Checkbox // view-only, not forwarded to the actor

	lastSent *pb.UpdateConfig
}

// GetNewGame spawns the actor system with one world actor around a fresh
// engine and builds the control panel from the starting params.
func GetNewGame(ctx context.Context, p *flocking.Params, registry *flocking.Registry, seed uint64) (*Game, error) {
	sim, err := flocking.NewSimulation(p, registry, seed)
	if err != nil {
		return nil, err
	}

	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(golog.DefaultLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, err
	}
	if err := system.Start(ctx); err != nil {
		return nil, err
	}

	updates := make(chan *pb.WorldSnapshot, 8)
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(sim, updates))
	if err != nil {
		return nil, err
	}

	g := &Game{
		System:   system,
		ctx:      ctx,
		worldPID: worldPID,
		updates:  updates,
		registry: registry,
	}
	g.buildPanel(p)
	g.lastSent = g.configFromPanel()
	return g, nil
}

func (g *Game) buildPanel(p *flocking.Params) {
	panel := ui.NewPanel(ScreenWidth-panelWidth, 0, panelWidth, ScreenHeight, "Flock Controls")

	panel.AddSection("Flock")
	g.wBoidCount = panel.AddSlider("Agents", 0, 500, float64(p.BoidCount))
	g.wMaxSpeed = panel.AddSlider("Max speed", 0.1, 20, p.MaxSpeed)
	panel.EndSection()

	panel.AddSection("Perception")
	g.wVisibility = panel.AddSlider("Visibility radius", 1, 200, p.VisibilityRadius)
	g.wAngularOn = panel.AddCheckbox("Angular visibility", p.AngularVisibility)
	g.wAngular = panel.AddSlider("Angular threshold", 0, 3.14, p.AngularThreshold)
	g.wDropoff = panel.AddSelector("Dropoff", flocking.DropoffKinds(), p.DropoffKind)
	g.wDropConst = panel.AddSlider("Dropoff const", flocking.MinDropoffConst, flocking.MaxDropoffConst, p.DropoffConst)
	panel.EndSection()

	panel.AddSection("Rules")
	g.wSeparation = panel.AddSlider("Separation", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.SeparationWeight)
	g.wCohesion = panel.AddSlider("Cohesion", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.CohesionWeight)
	g.wAlignment = panel.AddSlider("Alignment", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.AlignmentWeight)
	g.wContainment = panel.AddSlider("Containment", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.ContainmentWeight)
	g.wObstacle = panel.AddSlider("Obstacles", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.ObstacleWeight)
	g.wFollow = panel.AddSlider("Follow leader", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.FollowLeaderWeight)
	g.wPredator = panel.AddSlider("Predator", flocking.MinRuleWeight, flocking.MaxRuleWeight, p.PredatorWeight)
	panel.EndSection()

	panel.AddSection("Leaders")
	g.wLeaders = panel.AddCheckbox("Enable leaders", p.LeadersEnabled)
	panel.EndSection()

	panel.AddSection("World")
	g.wWorld = panel.AddSelector("World", g.registry.Names(), p.WorldName)
	g.wObstaclesOn = panel.AddCheckbox("Show obstacles", true)
	panel.EndSection()

	panel.AddSection("Randomness")
	g.wRandomTick = panel.AddSlider("Drift per tick", 0, 1, p.RandomnessPerTick)
	g.wRandomLimit = panel.AddSlider("Drift limit", 0, 5, p.RandomnessLimit)
	panel.EndSection()

	panel.AddSection("Actions")
	panel.AddButton("Reset defaults", func() {
		g.resetPanel(flocking.DefaultParams())
	})
	panel.EndSection()

	g.panel = panel
}

// resetPanel writes a parameter set back into every widget. The next
// Update sees the changed panel state and forwards it to the world actor
// like any manual edit.
func (g *Game) resetPanel(p *flocking.Params) {
	g.wBoidCount.Value = float64(p.BoidCount)
	g.wMaxSpeed.Value = p.MaxSpeed
	g.wVisibility.Value = p.VisibilityRadius
	g.wAngularOn.Value = p.AngularVisibility
	g.wAngular.Value = p.AngularThreshold
	g.wRandomTick.Value = p.RandomnessPerTick
	g.wRandomLimit.Value = p.RandomnessLimit
	g.wWorld.Select(p.WorldName)
	g.wDropoff.Select(p.DropoffKind)
	g.wDropConst.Value = p.DropoffConst
	g.wSeparation.Value = p.SeparationWeight
	g.wCohesion.Value = p.CohesionWeight
	g.wAlignment.Value = p.AlignmentWeight
	g.wContainment.Value = p.ContainmentWeight
	g.wObstacle.Value = p.ObstacleWeight
	g.wFollow.Value = p.FollowLeaderWeight
	g.wPredator.Value = p.PredatorWeight
	g.wLeaders.Value = p.LeadersEnabled
}

// configFromPanel reads every widget into the wire config.
func (g *Game) configFromPanel() *pb.UpdateConfig {
	return &pb.UpdateConfig{
		BoidCount:          int32(g.wBoidCount.Value),
		MaxSpeed:           g.wMaxSpeed.Value,
		VisibilityRadius:   g.wVisibility.Value,
		AngularVisibility:  g.wAngularOn.Value,
		AngularThreshold:   g.wAngular.Value,
		RandomnessPerTick:  g.wRandomTick.Value,
		RandomnessLimit:    g.wRandomLimit.Value,
		WorldName:          g.wWorld.Value(),
		DropoffKind:        g.wDropoff.Value(),
		DropoffConst:       g.wDropConst.Value,
		SeparationWeight:   g.wSeparation.Value,
		CohesionWeight:     g.wCohesion.Value,
		AlignmentWeight:    g.wAlignment.Value,
		ContainmentWeight:  g.wContainment.Value,
		ObstacleWeight:     g.wObstacle.Value,
		FollowLeaderWeight: g.wFollow.Value,
		PredatorWeight:     g.wPredator.Value,
		LeadersEnabled:     g.wLeaders.Value,
	}
}

func (g *Game) Update() error {
	g.panel.Update()

	// Forward panel edits only when something actually changed
	cfg := g.configFromPanel()
	if !proto.Equal(cfg, g.lastSent) {
		g.System.NoSender().Tell(g.ctx, g.worldPID, cfg)
		g.lastSent = cfg
	}

	// One frame, one tick
	g.System.NoSender().Tell(g.ctx, g.worldPID, &pb.Tick{})

	// Keep only the freshest snapshot
Loop:
	for {
		select {
		case state := <-g.updates:
			g.last = state
		default:
			break Loop
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 24, A: 255})

	world, err := g.registry.World(g.wWorld.Value())
	if err != nil {
		// The selector only offers registered names, so this should not
		// happen; keep the panel interactive regardless.
		g.panel.Draw(screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("world %q not registered", g.wWorld.Value()))
		return
	}
	size := world.Bounds.Size()

	// Top-down projection: world X/Z onto the view area left of the panel
	viewW := float64(ScreenWidth-panelWidth) - 2*viewMargin
	viewH := float64(ScreenHeight) - 2*viewMargin
	scale := viewW / size.X
	if s := viewH / size.Z; s < scale {
		scale = s
	}
	toScreen := func(x, z float64) (float32, float32) {
		return float32(viewMargin + (x-world.Bounds.Min.X)*scale),
			float32(viewMargin + (z-world.Bounds.Min.Z)*scale)
	}

	// Volume outline
	x0, y0 := toScreen(world.Bounds.Min.X, world.Bounds.Min.Z)
	vector.StrokeRect(screen, x0, y0,
		float32(size.X*scale), float32(size.Z*scale),
		1, color.RGBA{R: 70, G: 70, B: 90, A: 255}, true)

	if g.wObstaclesOn.Value {
		for _, c := range world.Obstacles {
			cx, cz := toScreen(c.X, c.Z)
			vector.StrokeCircle(screen, cx, cz, float32(c.Radius*scale),
				2, color.RGBA{R: 140, G: 90, B: 60, A: 255}, true)
		}
	}

	if g.last == nil {
		g.panel.Draw(screen)
		return
	}

	for _, a := range g.last.Agents {
		px, pz := toScreen(a.GetPosition().GetX(), a.GetPosition().GetZ())

		// Altitude as marker size so the third axis stays readable
		r := float32(1.5 + 3*a.GetPosition().GetY()/size.Y)

		clr := color.RGBA{R: 120, G: 180, B: 255, A: 255}
		if a.GetLeader() {
			clr = color.RGBA{R: 255, G: 200, B: 60, A: 255}
		}
		vector.FillCircle(screen, px, pz, r, clr, true)
	}

	g.panel.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d  agents %d  fps %.0f",
		g.last.GetTick(), len(g.last.GetAgents()), ebiten.ActualFPS()))
}

func (g *Game) Layout(w, h int) (int, int) { return ScreenWidth, ScreenHeight }
