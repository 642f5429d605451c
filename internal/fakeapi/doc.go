// Package fakeapi serves the JSONPlaceholder contract from an embedded
// deterministic dataset. It backs `analyzer serve` for offline demos and
// the integration tests that need a real HTTP endpoint.
//
// Like the public sandbox, writes are accepted and echoed but never
// persisted: POST /posts answers with id 101, PUT echoes the submitted
// body, DELETE answers with an empty object. Reads are served from the
// fixture set built at startup.
package fakeapi
