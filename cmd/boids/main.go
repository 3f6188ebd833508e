package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flocking"
)

const (
	screenWidth  = 800
	screenHeight = 600
	margin       = 20
)

// Game is the minimal synchronous runner: no actors, no control panel,
// just the engine stepped once per frame with the default tunables.
type Game struct {
	sim *flocking.Simulation
}

func (g *Game) Update() error {
	return g.sim.Step()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	world := g.sim.World()
	size := world.Bounds.Size()
	scale := math.Min(
		float64(screenWidth-2*margin)/size.X,
		float64(screenHeight-2*margin)/size.Z,
	)
	toScreen := func(x, z float64) (float64, float64) {
		return margin + (x-world.Bounds.Min.X)*scale,
			margin + (z-world.Bounds.Min.Z)*scale
	}

	for _, c := range world.Obstacles {
		cx, cz := toScreen(c.X, c.Z)
		vector.StrokeCircle(screen, float32(cx), float32(cz), float32(c.Radius*scale),
			2, color.RGBA{R: 140, G: 90, B: 60, A: 255}, true)
	}

	for _, b := range g.sim.Boids() {
		drawBoid(screen, b, toScreen, size.Y)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d  agents %d", g.sim.Tick(), len(g.sim.Boids())))
}

// drawBoid renders one agent as a triangle pointing along its planar
// heading, sized by altitude.
func drawBoid(screen *ebiten.Image, b *flocking.Boid, toScreen func(x, z float64) (float64, float64), height float64) {
	px, pz := toScreen(b.Pos.X, b.Pos.Z)

	// Planar heading: screen Y grows downward while world yaw is measured
	// from +X toward -Z, so the screen angle is the negated yaw.
	angle := -b.Yaw
	r := 3.0 + 4.0*b.Pos.Y/height

	tipX := px + math.Cos(angle)*r*1.6
	tipY := pz + math.Sin(angle)*r*1.6
	rightX := px + math.Cos(angle+2.5)*r
	rightY := pz + math.Sin(angle+2.5)*r
	leftX := px + math.Cos(angle-2.5)*r
	leftY := pz + math.Sin(angle-2.5)*r

	var cr, cg, cb float32 = 0.45, 0.7, 1.0
	if b.Role == flocking.RoleLeader {
		cr, cg, cb = 1.0, 0.78, 0.25
	}

	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}
	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(w, h int) (int, int) {
	return screenWidth, screenHeight
}

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

func main() {
	var (
		seed      = flag.Uint64("seed", 42, "simulation seed")
		worldName = flag.String("world", "open", "built-in world to run")
		count     = flag.Int("n", 0, "agent count (0 keeps the default)")
	)
	flag.Parse()

	params := flocking.DefaultParams()
	params.WorldName = *worldName
	if *count > 0 {
		params.BoidCount = *count
	}

	sim, err := flocking.NewSimulation(params, flocking.DefaultRegistry(), *seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Boids 3D")
	if err := ebiten.RunGame(&Game{sim: sim}); err != nil {
		log.Fatal(err)
	}
}
