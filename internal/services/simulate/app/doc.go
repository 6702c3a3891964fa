// Package app serves word simulations over HTTP.
//
// It is the request boundary: it validates words, applies the configured case
// policy, maps simulation failures to error responses and hands free-text
// prompts to the prompt tool. Simulation semantics live in pkg/sims/life.
package app
