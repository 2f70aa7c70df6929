package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name given to the
// underlying [httpclient.Client] in cmd/server.
func (c *PostClient) Name() string {
	return "supabase"
}

// HealthCheck reports the database service's availability based on the
// circuit breaker state. No network call is made.
func (c *PostClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("supabase: degraded (circuit breaker half-open)")
	case "open":
		return fmt.Errorf("supabase: failing (circuit breaker open)")
	default:
		return fmt.Errorf("supabase: unknown circuit breaker state %q", state)
	}
}
