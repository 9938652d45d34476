/*
Package observability provides tools for monitoring the Tendril engine.

It adapts the resolver's hook callbacks to Prometheus collectors: cache
hit/miss counts and per-reference dependency function invocations. The
engine never imports Prometheus itself; hosts opt in by wiring Hooks into
their resolver.
*/
package observability
