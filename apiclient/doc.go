// Package apiclient provides a typed JSON API client that reports every
// outcome through a result.Result instead of returning bare errors.
//
// The package is layered. Client performs single HTTP exchanges and
// classifies each outcome (status codes, transport errors, timeouts,
// cancellation) onto a result.Failure. Retrier decorates any Caller
// with bounded, idempotency-aware retries and exponential backoff.
// The typed helpers (Get, GetList, Post, Put, Delete) sit on top of
// either and decode JSON bodies into concrete types:
//
//	client, err := apiclient.New(apiclient.Config{BaseURL: baseURL})
//	if err != nil {
//		return err
//	}
//	caller := apiclient.NewRetrier(client, client.Config().RetryPolicy())
//
//	res := apiclient.GetList[Post](ctx, caller, "/posts")
//	for _, post := range res.ValueOr(nil) {
//		...
//	}
//
// Because Client and Retrier both implement Caller, retry behavior is
// opt-in composition rather than a mode of the client.
package apiclient
