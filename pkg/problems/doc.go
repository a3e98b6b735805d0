/*
Package problems defines example machines as plain data.

A Problem is a value holding its rules and its (input, expected) tape pairs.
Problems are collected in a Registry and iterated by the harness; there is no
per-problem behavior beyond the data it carries.
*/
package problems
