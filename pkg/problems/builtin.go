package problems

import "github.com/aretw0/turing/pkg/domain"

// Empty has no rules: state 0 is already final and every tape is returned untouched.
var Empty = Problem{
	Name:        "empty",
	Description: "No rules; the tape must remain the same.",
	Cases: []Case{
		{">#01#", ">#01#"},
		{">", ">"},
		{">9$1#", ">9$1#"},
	},
}

// Dummy has a single rule; its target state is the highest and therefore final.
var Dummy = Problem{
	Name:        "dummy",
	Description: "Overwrites the first '#' with '0' and halts.",
	Transitions: []domain.Transition{
		domain.T(0, '#', 1, '0', domain.Right),
	},
	Cases: []Case{
		{">#01#", ">001#"},
	},
}

// Increment adds one to a binary number bounded by '>' and '#'.
var Increment = Problem{
	Name:        "increment",
	Description: "Scans right to '#', then carries leftward until a 0 or the '>' sentinel.",
	Transitions: []domain.Transition{
		// In state 0 reading '0': stay in 0, write '0', go right.
		domain.T(0, '0', 0, '0', domain.Right),
		domain.T(0, '1', 0, '1', domain.Right),
		domain.T(0, '#', 1, '#', domain.Left),

		domain.T(1, '1', 1, '0', domain.Left),
		domain.T(1, '0', 2, '1', domain.Hold),
		domain.T(1, '>', 2, '>', domain.Hold),
	},
	Cases: []Case{
		{">0100#", ">0101#"},
		{">0000#", ">0001#"},
		{">0001#", ">0010#"},
		{">0101#", ">0110#"},
		{">1111#", ">0000#"},
		{">00010#", ">00011#"},
	},
}

// CountZeros appends a '1' after '#' for every '0' in the word.
// The tape must carry one blank '_' cell per zero after the '#'.
var CountZeros = Problem{
	Name:        "count-zeros",
	Description: "Writes the number of zeros of the word in unary after '#'.",
	Transitions: []domain.Transition{
		// 0: find the next unmarked zero
		domain.T(0, '1', 0, '1', domain.Right),
		domain.T(0, 'x', 0, 'x', domain.Right),
		domain.T(0, '0', 1, 'x', domain.Right),
		domain.T(0, '#', 4, '#', domain.Left),

		// 1: walk to the separator
		domain.T(1, '0', 1, '0', domain.Right),
		domain.T(1, '1', 1, '1', domain.Right),
		domain.T(1, '#', 2, '#', domain.Right),

		// 2: append a tally mark
		domain.T(2, '1', 2, '1', domain.Right),
		domain.T(2, '_', 3, '1', domain.Left),

		// 3: rewind to the sentinel
		domain.T(3, '0', 3, '0', domain.Left),
		domain.T(3, '1', 3, '1', domain.Left),
		domain.T(3, 'x', 3, 'x', domain.Left),
		domain.T(3, '#', 3, '#', domain.Left),
		domain.T(3, '>', 0, '>', domain.Right),

		// 4: restore marked zeros, then halt on the sentinel
		domain.T(4, 'x', 4, '0', domain.Left),
		domain.T(4, '0', 4, '0', domain.Left),
		domain.T(4, '1', 4, '1', domain.Left),
		domain.T(4, '>', 5, '>', domain.Hold),
	},
	Cases: []Case{
		{">0101#___", ">0101#11_"},
		{">111#_", ">111#_"},
		{">00#__", ">00#11"},
		{">#", ">#"},
		{">1000#___", ">1000#111"},
	},
}

// Palindrome decides whether a binary word reads the same both ways.
// Matched symbols are erased to '_'; the verdict (Y or N) is written in the
// blank cell after '#'.
var Palindrome = Problem{
	Name:        "palindrome",
	Description: "Erases matching ends of the word and writes Y or N after '#'.",
	Transitions: []domain.Transition{
		// 0: take the leftmost remaining symbol
		domain.T(0, '0', 1, '_', domain.Right),
		domain.T(0, '1', 3, '_', domain.Right),
		domain.T(0, '_', 6, '_', domain.Right),
		domain.T(0, '#', 7, '#', domain.Right),

		// 1, 2: carrying a 0 to the right end
		domain.T(1, '0', 1, '0', domain.Right),
		domain.T(1, '1', 1, '1', domain.Right),
		domain.T(1, '_', 2, '_', domain.Left),
		domain.T(1, '#', 2, '#', domain.Left),
		domain.T(2, '0', 5, '_', domain.Left),
		domain.T(2, '1', 8, '1', domain.Right),
		domain.T(2, '_', 6, '_', domain.Right),

		// 3, 4: carrying a 1 to the right end
		domain.T(3, '0', 3, '0', domain.Right),
		domain.T(3, '1', 3, '1', domain.Right),
		domain.T(3, '_', 4, '_', domain.Left),
		domain.T(3, '#', 4, '#', domain.Left),
		domain.T(4, '1', 5, '_', domain.Left),
		domain.T(4, '0', 8, '0', domain.Right),
		domain.T(4, '_', 6, '_', domain.Right),

		// 5: back to the left end
		domain.T(5, '0', 5, '0', domain.Left),
		domain.T(5, '1', 5, '1', domain.Left),
		domain.T(5, '_', 0, '_', domain.Right),

		// 6, 7: accept
		domain.T(6, '_', 6, '_', domain.Right),
		domain.T(6, '#', 7, '#', domain.Right),
		domain.T(7, '_', 10, 'Y', domain.Hold),

		// 8, 9: reject
		domain.T(8, '0', 8, '0', domain.Right),
		domain.T(8, '1', 8, '1', domain.Right),
		domain.T(8, '_', 8, '_', domain.Right),
		domain.T(8, '#', 9, '#', domain.Right),
		domain.T(9, '_', 10, 'N', domain.Hold),
	},
	Cases: []Case{
		{">#_", ">#Y"},
		{">1#_", ">_#Y"},
		{">010#_", ">___#Y"},
		{">0110#_", ">____#Y"},
		{">01#_", ">_1#N"},
		{">0100#_", ">__0_#N"},
	},
}

// Builtin returns a registry with every bundled problem.
func Builtin() *Registry {
	r, err := NewRegistry(Empty, Dummy, Increment, CountZeros, Palindrome)
	if err != nil {
		panic(err)
	}
	return r
}
