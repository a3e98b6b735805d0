/*
Package turing is a deterministic single-tape Turing machine simulator.

A machine is a transition table mapping (state, symbol-under-head) to
(next-state, symbol-to-write, head-movement). Running a machine on a tape
applies rules from state 0, with the head at index 1, until a final state is
reached. A state is final when it is not lower than the highest state any
rule refers to.

# Concept

The table is built once, programmatically, and then only read. Each run works
on its own copy of the tape, so one Machine can serve many concurrent runs.
Tapes are fixed-size: the caller pads them with enough sentinel cells for
every move the machine makes. A head that leaves the tape, a missing rule,
or an exhausted step budget aborts the run with an error; the engine never
guesses a transition.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/turing"
		"github.com/aretw0/turing/pkg/dsl"
	)

	func main() {
		b := dsl.New()
		b.On(0, '0').Write('0').Right().Go(0)
		b.On(0, '1').Write('1').Right().Go(0)
		b.On(0, '#').Write('#').Left().Go(1)
		b.On(1, '1').Write('0').Left().Go(1)
		b.On(1, '0').Write('1').Hold().Go(2)
		b.On(1, '>').Write('>').Hold().Go(2)

		tbl, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		m := turing.New(tbl, turing.WithMaxSteps(10_000))
		out, err := m.Run(context.Background(), ">0011#")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out) // >0100#
	}
*/
package turing
