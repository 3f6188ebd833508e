package flocking

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Rule weight bounds. Every rule weight is user-tunable within these
// bounds; writes outside them are errors, never clamped.
const (
	MinRuleWeight = 0.0
	MaxRuleWeight = 5.0
)

// Params is the flat set of live tunables driving the engine. The control
// surface mutates it between ticks only; the engine re-reads it every tick
// rather than caching values, so any change takes effect on the next tick.
type Params struct {
	// Population
	BoidCount int `json:"boidCount"`

	// Kinematics
	MaxSpeed float64 `json:"maxSpeed"`

	// Visibility
	VisibilityRadius  float64 `json:"visibilityRadius"`
	AngularVisibility bool    `json:"angularVisibility"`
	AngularThreshold  float64 `json:"angularThreshold"` // radians, used when AngularVisibility is on

	// Randomness injection (per-agent drifting bias, see Boid.Update)
	RandomnessPerTick float64 `json:"randomnessPerTick"`
	RandomnessLimit   float64 `json:"randomnessLimit"`

	// World and neighbor weighting
	WorldName    string  `json:"worldName"`
	DropoffKind  string  `json:"dropoffKind"`
	DropoffConst float64 `json:"dropoffConst"`

	// Rule weights
	SeparationWeight   float64 `json:"separationWeight"`
	CohesionWeight     float64 `json:"cohesionWeight"`
	AlignmentWeight    float64 `json:"alignmentWeight"`
	ContainmentWeight  float64 `json:"containmentWeight"`
	ObstacleWeight     float64 `json:"obstacleWeight"`
	FollowLeaderWeight float64 `json:"followLeaderWeight"`
	PredatorWeight     float64 `json:"predatorWeight"`

	// Leader role
	LeadersEnabled          bool    `json:"leadersEnabled"`
	NeighbourCountThreshold int     `json:"neighbourCountThreshold"`
	EccentricityThreshold   float64 `json:"eccentricityThreshold"`
	BecomeLeaderProbability float64 `json:"becomeLeaderProbability"`
	MaxLeaderTicks          int     `json:"maxLeaderTicks"`
	PeakSpeedMultiplier     float64 `json:"peakSpeedMultiplier"`
	SpeedRampFraction       float64 `json:"speedRampFraction"`
}

// DefaultParams returns a parameter set that produces stable flocking in
// the built-in worlds.
func DefaultParams() *Params {
	return &Params{
		BoidCount:         120,
		MaxSpeed:          2.5,
		VisibilityRadius:  45.0,
		AngularVisibility: false,
		AngularThreshold:  2.0,
		RandomnessPerTick: 0.12,
		RandomnessLimit:   0.8,

		WorldName:    "open",
		DropoffKind:  DropoffProportional,
		DropoffConst: 1.0,

		SeparationWeight:   0.6,
		CohesionWeight:     0.3,
		AlignmentWeight:    0.4,
		ContainmentWeight:  1.2,
		ObstacleWeight:     1.5,
		FollowLeaderWeight: 0.0,
		PredatorWeight:     0.0,

		LeadersEnabled:          false,
		NeighbourCountThreshold: 3,
		EccentricityThreshold:   0.85,
		BecomeLeaderProbability: 0.005,
		MaxLeaderTicks:          240,
		PeakSpeedMultiplier:     1.6,
		SpeedRampFraction:       0.3,
	}
}

// Validate checks every tunable against its declared bounds. Values
// outside bounds indicate a caller/config bug and are reported as errors,
// never silently clamped.
func (p *Params) Validate() error {
	if p.BoidCount < 0 || p.BoidCount > 2000 {
		return fmt.Errorf("boidCount %d outside [0, 2000]", p.BoidCount)
	}
	if p.MaxSpeed < 0.1 || p.MaxSpeed > 20 {
		return fmt.Errorf("maxSpeed %.3f outside [0.1, 20]", p.MaxSpeed)
	}
	if p.VisibilityRadius < 1 || p.VisibilityRadius > 500 {
		return fmt.Errorf("visibilityRadius %.3f outside [1, 500]", p.VisibilityRadius)
	}
	if p.AngularThreshold < 0 || p.AngularThreshold > math.Pi {
		return fmt.Errorf("angularThreshold %.3f outside [0, Pi]", p.AngularThreshold)
	}
	if p.RandomnessPerTick < 0 || p.RandomnessPerTick > 2 {
		return fmt.Errorf("randomnessPerTick %.3f outside [0, 2]", p.RandomnessPerTick)
	}
	if p.RandomnessLimit < 0 || p.RandomnessLimit > 10 {
		return fmt.Errorf("randomnessLimit %.3f outside [0, 10]", p.RandomnessLimit)
	}
	if p.DropoffConst < MinDropoffConst || p.DropoffConst > MaxDropoffConst {
		return fmt.Errorf("dropoffConst %.3f outside [%.2f, %.2f]", p.DropoffConst, MinDropoffConst, MaxDropoffConst)
	}
	known := false
	for _, k := range DropoffKinds() {
		if p.DropoffKind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown dropoff kind %q", p.DropoffKind)
	}

	weights := map[string]float64{
		"separationWeight":   p.SeparationWeight,
		"cohesionWeight":     p.CohesionWeight,
		"alignmentWeight":    p.AlignmentWeight,
		"containmentWeight":  p.ContainmentWeight,
		"obstacleWeight":     p.ObstacleWeight,
		"followLeaderWeight": p.FollowLeaderWeight,
		"predatorWeight":     p.PredatorWeight,
	}
	for name, w := range weights {
		if w < MinRuleWeight || w > MaxRuleWeight {
			return fmt.Errorf("%s %.3f outside [%.1f, %.1f]", name, w, MinRuleWeight, MaxRuleWeight)
		}
	}

	if p.NeighbourCountThreshold < 0 || p.NeighbourCountThreshold > 50 {
		return fmt.Errorf("neighbourCountThreshold %d outside [0, 50]", p.NeighbourCountThreshold)
	}
	if p.EccentricityThreshold < 0 || p.EccentricityThreshold > 1 {
		return fmt.Errorf("eccentricityThreshold %.3f outside [0, 1]", p.EccentricityThreshold)
	}
	if p.BecomeLeaderProbability < 0 || p.BecomeLeaderProbability > 1 {
		return fmt.Errorf("becomeLeaderProbability %.4f outside [0, 1]", p.BecomeLeaderProbability)
	}
	if p.MaxLeaderTicks < 1 || p.MaxLeaderTicks > 100000 {
		return fmt.Errorf("maxLeaderTicks %d outside [1, 100000]", p.MaxLeaderTicks)
	}
	if p.PeakSpeedMultiplier < 1 || p.PeakSpeedMultiplier > 5 {
		return fmt.Errorf("peakSpeedMultiplier %.3f outside [1, 5]", p.PeakSpeedMultiplier)
	}
	if p.SpeedRampFraction <= 0 || p.SpeedRampFraction >= 1 {
		return fmt.Errorf("speedRampFraction %.3f outside (0, 1)", p.SpeedRampFraction)
	}
	return nil
}

// LoadParams loads tunables from a JSON file and validates them against
// the schema, then against the declared bounds.
func LoadParams(configPath string, schemaPath string) (*Params, error) {
	sch, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}

	b, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Defaults first, so a partial config file only overrides what it names.
	p := DefaultParams()
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
