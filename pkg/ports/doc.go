// Package ports defines the interfaces adapters implement to plug into the simulator.
package ports
