package flocking

import (
	"fmt"
	"math"
)

// Dropoff maps a neighbor distance to an influence weight in [0, +inf).
// Rules use the active dropoff to attenuate how strongly each neighbor
// contributes to the accumulated force. Exactly one dropoff is active at a
// time; switching takes effect on the next tick with no smoothing.
type Dropoff interface {
	Name() string
	Evaluate(distance float64) float64
}

// Dropoff kind names, as they appear in config files and the UI selector.
const (
	DropoffNone         = "none"
	DropoffExponential  = "exponential"
	DropoffInverse      = "inverse"
	DropoffProportional = "proportional"
)

// Bounds for the tunable dropoff constant, shared across variants.
const (
	MinDropoffConst = 0.01
	MaxDropoffConst = 10.0
)

// minEvalDistance guards the inverse variant against division blow-up at
// distance ~ 0.
const minEvalDistance = 1e-6

// NoDropoff weights every neighbor uniformly, regardless of distance.
type NoDropoff struct {
	Const float64
}

func (d NoDropoff) Name() string { return DropoffNone }

func (d NoDropoff) Evaluate(distance float64) float64 { return d.Const }

// ExponentialDropoff returns base^(-distance): smooth decay that never
// reaches exactly zero. Larger bases favor near neighbors more strongly.
type ExponentialDropoff struct {
	Base float64
}

func (d ExponentialDropoff) Name() string { return DropoffExponential }

func (d ExponentialDropoff) Evaluate(distance float64) float64 {
	return math.Pow(d.Base, -distance)
}

// InverseProportionalDropoff returns Const/distance, with the distance
// floored at minEvalDistance so overlapping agents never divide by zero.
type InverseProportionalDropoff struct {
	Const float64
}

func (d InverseProportionalDropoff) Name() string { return DropoffInverse }

func (d InverseProportionalDropoff) Evaluate(distance float64) float64 {
	return d.Const / math.Max(distance, minEvalDistance)
}

// ProportionalDropoff falls off linearly from Const at distance 0 to
// exactly zero at the visibility radius and beyond.
type ProportionalDropoff struct {
	Radius float64
	Const  float64
}

func (d ProportionalDropoff) Name() string { return DropoffProportional }

func (d ProportionalDropoff) Evaluate(distance float64) float64 {
	if d.Radius <= 0 || distance >= d.Radius {
		return 0
	}
	return d.Const * (1 - distance/d.Radius)
}

// DropoffKinds lists the selectable dropoff names in a stable order for
// the config surface and the UI selector.
func DropoffKinds() []string {
	return []string{DropoffNone, DropoffExponential, DropoffInverse, DropoffProportional}
}

// NewDropoff builds the named dropoff variant. The constant doubles as the
// base for the exponential variant. visibilityRadius is only used by the
// proportional variant, which reaches zero exactly at that radius.
func NewDropoff(kind string, konst, visibilityRadius float64) (Dropoff, error) {
	if konst < MinDropoffConst || konst > MaxDropoffConst {
		return nil, fmt.Errorf("dropoff constant %.3f outside [%.2f, %.2f]", konst, MinDropoffConst, MaxDropoffConst)
	}
	switch kind {
	case DropoffNone:
		return NoDropoff{Const: konst}, nil
	case DropoffExponential:
		return ExponentialDropoff{Base: konst}, nil
	case DropoffInverse:
		return InverseProportionalDropoff{Const: konst}, nil
	case DropoffProportional:
		return ProportionalDropoff{Radius: visibilityRadius, Const: konst}, nil
	default:
		return nil, fmt.Errorf("unknown dropoff kind %q", kind)
	}
}
