// Package resilience provides client-side guards for outbound API calls.
//
// It includes:
//   - Limiter: token bucket rate limiting to stay polite toward shared APIs
//   - Breaker: circuit breaking to fail fast when a backend is unhealthy
//
// Both are optional collaborators of the API client and are disabled unless
// configured.
package resilience
