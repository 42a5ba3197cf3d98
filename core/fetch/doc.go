// Package fetch provides the HTTP client used to retrieve export files and
// asset bytes from the content origin.
//
// # Retry Model
//
// Transient failures — broken connections and the gateway statuses 502, 503
// and 504 — are retried inside an explicit bounded loop with exponential
// backoff. The attempt budget is configuration-driven and visibly finite:
// once exhausted, the terminal error propagates and the whole run fails.
// A missing asset with an already-updated database reference is considered
// worse than a failed run.
//
// Non-retryable statuses (404, 403, ...) fail on the first attempt.
package fetch
