package flocking

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Bounds3D is the axis-aligned simulation volume. Bounds are immutable
// once constructed; switching worlds replaces the whole World value.
type Bounds3D struct {
	Min geometry.Vector3D `json:"min"`
	Max geometry.Vector3D `json:"max"`
}

// CenteredBounds builds a box symmetric about the origin on X and Z, with
// the floor at Y=0 and the ceiling at height.
func CenteredBounds(width, height, depth float64) Bounds3D {
	return Bounds3D{
		Min: geometry.Vector3D{X: -width / 2, Y: 0, Z: -depth / 2},
		Max: geometry.Vector3D{X: width / 2, Y: height, Z: depth / 2},
	}
}

// Contains reports whether p lies inside the bounds on all three axes.
func (b Bounds3D) Contains(p geometry.Vector3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Size returns the extents of the box on each axis.
func (b Bounds3D) Size() geometry.Vector3D {
	return b.Max.Sub(b.Min)
}

// Cylinder is a vertical obstacle of infinite height, described by its
// axis position in the XZ plane and its radius.
type Cylinder struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
}

// SurfaceDistance returns the planar (same-height) distance from p to the
// cylinder surface. Inside the cylinder the distance is clamped to zero.
func (c Cylinder) SurfaceDistance(p geometry.Vector3D) float64 {
	d := math.Hypot(p.X-c.X, p.Z-c.Z) - c.Radius
	if d < 0 {
		return 0
	}
	return d
}

// World is one named simulation volume with its static obstacles.
type World struct {
	Name      string     `json:"name"`
	Bounds    Bounds3D   `json:"bounds"`
	Obstacles []Cylinder `json:"obstacles"`
}

// Registry holds the available world definitions by name. The simulation
// consumes the currently-selected world by name and treats an unknown
// name as a configuration error, never a silent fallback.
type Registry struct {
	worlds map[string]*World
	order  []string
}

// NewRegistry builds a registry from explicit world definitions.
// Duplicate names are rejected.
func NewRegistry(worlds ...World) (*Registry, error) {
	r := &Registry{worlds: make(map[string]*World, len(worlds))}
	for i := range worlds {
		w := worlds[i]
		if w.Name == "" {
			return nil, fmt.Errorf("world at index %d has no name", i)
		}
		if _, dup := r.worlds[w.Name]; dup {
			return nil, fmt.Errorf("duplicate world name %q", w.Name)
		}
		r.worlds[w.Name] = &w
		r.order = append(r.order, w.Name)
	}
	return r, nil
}

// DefaultRegistry provides the built-in worlds used when no worlds file
// is supplied: an open volume and one with a ring of cylinder obstacles.
func DefaultRegistry() *Registry {
	ring := make([]Cylinder, 0, 6)
	for i := 0; i < 6; i++ {
		a := float64(i) / 6 * 2 * math.Pi
		ring = append(ring, Cylinder{X: 120 * math.Cos(a), Z: 120 * math.Sin(a), Radius: 18})
	}
	r, err := NewRegistry(
		World{Name: "open", Bounds: CenteredBounds(400, 200, 400)},
		World{Name: "pillars", Bounds: CenteredBounds(400, 160, 400), Obstacles: ring},
	)
	if err != nil {
		// Built-in definitions are static; a failure here is a programming error.
		panic(err)
	}
	return r
}

// World looks up a world definition by name.
func (r *Registry) World(name string) (*World, error) {
	w, ok := r.worlds[name]
	if !ok {
		return nil, fmt.Errorf("unknown world %q (have %v)", name, r.order)
	}
	return w, nil
}

// Names returns the registered world names in load order, for the UI
// selector.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// worldsFile is the on-disk shape of a worlds definition file.
type worldsFile struct {
	Worlds []World `json:"worlds"`
}

// LoadRegistry loads world definitions from a JSON file and validates it
// against the schema before unmarshalling.
func LoadRegistry(worldsPath string, schemaPath string) (*Registry, error) {
	sch, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile worlds schema: %w", err)
	}

	b, err := os.ReadFile(worldsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read worlds file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode worlds json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("worlds validation failed: %w", err)
	}

	var wf worldsFile
	if err := json.Unmarshal(b, &wf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal worlds: %w", err)
	}
	if len(wf.Worlds) == 0 {
		return nil, fmt.Errorf("worlds file %s defines no worlds", worldsPath)
	}
	return NewRegistry(wf.Worlds...)
}
