// Package metrics records numeric operations on a private Prometheus
// registry and reads runtime memory statistics for the REPL stats command.
package metrics
