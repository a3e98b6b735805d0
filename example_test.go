package turing_test

import (
	"context"
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
)

func Example() {
	// Binary increment: scan to '#', then carry leftward.
	tbl, err := dsl.New().
		Pass(0, domain.Right, "01").
		On(0, '#').Left().Go(1).
		On(1, '1').Write('0').Left().Go(1).
		On(1, '0').Write('1').Go(2).
		On(1, '>').Go(2).
		Build()
	if err != nil {
		panic(err)
	}

	m := turing.New(tbl)
	out, err := m.Run(context.Background(), ">0111#")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: >1000#
}

func ExampleMachine_Execute() {
	tbl, _ := dsl.New().On(0, '#').Write('0').Right().Go(1).Build()

	res, err := turing.New(tbl).Execute(context.Background(), []byte(">#01#"))
	fmt.Println(res.TapeString(), res.State, res.Head, res.Steps, err)

	_, err = turing.New(tbl).Execute(context.Background(), []byte(">x"))
	fmt.Println(err)
	// Output:
	// >001# 1 2 1 <nil>
	// undefined transition for (0, 'x') at head 1 after 0 steps
}
