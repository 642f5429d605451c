// Package result provides a generic success-or-failure value for operations
// whose failures carry classification.
//
// A Result[T] holds either a value or a *Failure, never both. Failures
// classify their cause (validation, not found, timeout, ...) so callers
// branch on Kind instead of parsing messages. Same-type transformations are
// methods (Tap, Ensure, Recover); cross-type transformations are package
// functions (Map, Bind, Match) because methods cannot introduce type
// parameters.
//
//	res := fetchUser(ctx, 7)
//	name := result.Match(res,
//	    func(u User) string { return u.Name },
//	    func(f *result.Failure) string { return "unknown" },
//	)
package result
