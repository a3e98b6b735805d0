/*
Package harness feeds (input, expected) tape pairs through a machine and
reports the outcome of each case.

A failing case, whether the machine halts on the wrong tape or aborts with an
error, is recorded and the harness moves on; one bad case never stops the
batch. Cases of a problem run in parallel against the same read-only table,
and results are reported in declaration order.
*/
package harness
