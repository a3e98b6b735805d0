/*
Package observability turns engine lifecycle hooks into Prometheus metrics.

Attach Metrics.Hooks to a Machine or Harness and expose the registry through
promhttp to monitor runs, halts and failure kinds per machine.
*/
package observability
