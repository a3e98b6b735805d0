/*
Package domain contains the core domain models of the Turing machine simulator.

It defines the vocabulary shared by the transition table, the execution engine
and every adapter. This package is kept pure and free of external dependencies
like I/O or persistence.

# Key Entities

  - State: a non-negative integer identifier. State 0 is always the start state.
  - Symbol: a single raw byte read from or written to the tape.
  - Key: the (state, symbol-under-head) pair that selects a rule.
  - Action: the (next-state, symbol-to-write, head-movement) outcome of a rule.
  - Result: the snapshot returned by a run (final tape, state, head, steps).
*/
package domain
