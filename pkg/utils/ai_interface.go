package utils

import "context"

// PlanClientInterface is the capability boundary to an external generative
// model: one prompt in, one raw JSON document out. The response is untrusted;
// validating, defaulting and budget recomputation happen in the planner
// service regardless of which provider produced it.
type PlanClientInterface interface {
	GeneratePlanJSON(ctx context.Context, prompt string) (string, error)
}
