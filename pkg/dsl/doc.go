/*
Package dsl provides a fluent Go builder for transition tables.

Tables are defined in code, rule by rule, instead of being parsed from a
textual format. The builder keeps going after a bad rule and reports every
failure at once from Build.

Example usage:

	b := dsl.New()

	// scan right over the number
	b.Pass(0, domain.Right, "01")
	b.On(0, '#').Left().Go(1)

	// propagate the carry
	b.On(1, '1').Write('0').Left().Go(1)
	b.On(1, '0').Write('1').Go(2)
	b.On(1, '>').Go(2)

	tbl, err := b.Build()
*/
package dsl
