// Package mcp exposes word simulations as Model Context Protocol tools so an
// LLM client can ask for a word's outcome, a best-of-N random word run, or
// hand over a free-text prompt.
//
// Handlers carry no transport state; the same tool set is served over stdio
// or streamable HTTP.
package mcp
