// Package metadata implements a client for version 4 of the ECS task
// metadata endpoint. It resolves the endpoint URL from the environment,
// fetches the container metadata document in a single request and exposes
// the parsed result through read-only accessors.
//
// Each call to Fetch is independent: nothing is cached, retried or shared
// between calls, and the returned Metadata value never changes after
// construction. Callers that want fresh metadata simply call Fetch again.
package metadata
