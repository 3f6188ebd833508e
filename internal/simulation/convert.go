package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids3d/pb"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-boids3d/pkg/geometry"
)

// configFromParams builds the wire form of the full tunable set.
func configFromParams(p *flocking.Params) *pb.UpdateConfig {
	return &pb.UpdateConfig{
		BoidCount:          int32(p.BoidCount),
		MaxSpeed:           p.MaxSpeed,
		VisibilityRadius:   p.VisibilityRadius,
		AngularVisibility:  p.AngularVisibility,
		AngularThreshold:   p.AngularThreshold,
		RandomnessPerTick:  p.RandomnessPerTick,
		RandomnessLimit:    p.RandomnessLimit,
		WorldName:          p.WorldName,
		DropoffKind:        p.DropoffKind,
		DropoffConst:       p.DropoffConst,
		SeparationWeight:   p.SeparationWeight,
		CohesionWeight:     p.CohesionWeight,
		AlignmentWeight:    p.AlignmentWeight,
		ContainmentWeight:  p.ContainmentWeight,
		ObstacleWeight:     p.ObstacleWeight,
		FollowLeaderWeight: p.FollowLeaderWeight,
		PredatorWeight:     p.PredatorWeight,
		LeadersEnabled:     p.LeadersEnabled,
	}
}

// paramsFromConfig overlays the wire config onto the current params,
// producing a full candidate set for atomic validation. Fields the wire
// form does not carry (the leader state machine internals) keep their
// current values.
func paramsFromConfig(current *flocking.Params, msg *pb.UpdateConfig) flocking.Params {
	candidate := *current
	candidate.BoidCount = int(msg.GetBoidCount())
	candidate.MaxSpeed = msg.GetMaxSpeed()
	candidate.VisibilityRadius = msg.GetVisibilityRadius()
	candidate.AngularVisibility = msg.GetAngularVisibility()
	candidate.AngularThreshold = msg.GetAngularThreshold()
	candidate.RandomnessPerTick = msg.GetRandomnessPerTick()
	candidate.RandomnessLimit = msg.GetRandomnessLimit()
	candidate.WorldName = msg.GetWorldName()
	candidate.DropoffKind = msg.GetDropoffKind()
	candidate.DropoffConst = msg.GetDropoffConst()
	candidate.SeparationWeight = msg.GetSeparationWeight()
	candidate.CohesionWeight = msg.GetCohesionWeight()
	candidate.AlignmentWeight = msg.GetAlignmentWeight()
	candidate.ContainmentWeight = msg.GetContainmentWeight()
	candidate.ObstacleWeight = msg.GetObstacleWeight()
	candidate.FollowLeaderWeight = msg.GetFollowLeaderWeight()
	candidate.PredatorWeight = msg.GetPredatorWeight()
	candidate.LeadersEnabled = msg.GetLeadersEnabled()
	return candidate
}

func vecToProto(v geometry.Vector3D) *pb.Vec3 {
	return &pb.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// snapshotToProto converts a completed tick's agent states to the wire
// form pushed to the render loop.
func snapshotToProto(tick uint64, agents []flocking.AgentSnapshot) *pb.WorldSnapshot {
	out := &pb.WorldSnapshot{
		Tick:   tick,
		Agents: make([]*pb.AgentState, 0, len(agents)),
	}
	for _, a := range agents {
		out.Agents = append(out.Agents, &pb.AgentState{
			Id:       int64(a.ID),
			Position: vecToProto(a.Pos),
			Velocity: vecToProto(a.Vel),
			Yaw:      a.Yaw,
			Pitch:    a.Pitch,
			Leader:   a.Role == flocking.RoleLeader,
		})
	}
	return out
}
