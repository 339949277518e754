// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import (
	"testing"

	"github.com/derat/intcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part func(lines []string) (string, error)

func checkPart(t *testing.T, f part, prog, want string) {
	t.Helper()
	got, err := f([]string{prog})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDay02(t *testing.T) {
	// Cell 12 holds 7, so with noun 12 and verb 2 the add leaves 7+2 in cell 0.
	const prog = "1,0,0,0,99,0,0,0,0,0,0,0,7"
	checkPart(t, day02{}.PartOne, prog, "9")

	_, err := day02{}.PartTwo([]string{prog})
	assert.Error(t, err)

	_, err = day02{}.PartOne([]string{"1,0,0,0,99"}) // noun 12 points past the end of memory
	var ie *intcode.IndexError
	assert.ErrorAs(t, err, &ie)
}

func TestDay05(t *testing.T) {
	const prog = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0," +
		"1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	checkPart(t, day05{}.PartOne, prog, "999")
	checkPart(t, day05{}.PartTwo, prog, "999")

	// Outputs its input twice.
	checkPart(t, day05{}.PartTwo, "3,0,4,0,4,0,99", "5")

	_, err := day05{}.PartOne([]string{"99"})
	assert.Error(t, err)
	_, err = day05{}.PartOne([]string{"3,0,3,0,99"})
	assert.Error(t, err)
}

func TestDay07(t *testing.T) {
	for _, tc := range []struct {
		prog string
		f    part
		want string
	}{
		{"3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0", day07{}.PartOne, "43210"},
		{"3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0", day07{}.PartOne, "54321"},
		{
			"3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
			day07{}.PartTwo, "139629729",
		},
		{
			"3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53," +
				"1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10",
			day07{}.PartTwo, "18216",
		},
	} {
		checkPart(t, tc.f, tc.prog, tc.want)
	}

	// Every amplifier reads forever without writing anything.
	_, err := day07{}.PartTwo([]string{"3,7,3,7,1105,1,0,0"})
	assert.ErrorIs(t, err, errStalled)
}

func TestPermutation(t *testing.T) {
	seen := make(map[[4]int64]bool)
	for i := 0; i < factorial(4); i++ {
		p := permutation(i, 4)
		require.Len(t, p, 4)
		assert.ElementsMatch(t, []int64{0, 1, 2, 3}, p)
		seen[[4]int64(p)] = true
	}
	assert.Len(t, seen, 24)
	assert.Equal(t, 1, factorial(0))
	assert.Equal(t, 120, factorial(5))
}

func TestDay09(t *testing.T) {
	checkPart(t, day09{}.PartOne, "104,1125899906842624,99", "1125899906842624")
	checkPart(t, day09{}.PartTwo, "1102,34915192,34915192,7,4,7,99,0", "1219070632396864")
	checkPart(t, day09{}.PartOne, "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99", "109")
	// Echoes its input through a cell far past the end of the listing.
	checkPart(t, day09{}.PartTwo, "3,5000,4,5000,99", "2")
}

func TestDay11(t *testing.T) {
	// Paints the first panel white and turns left, then paints the next panel black and turns left.
	const prog = "3,100,104,1,104,0,3,100,104,0,104,0,99"
	checkPart(t, day11{}.PartOne, prog, "2")
	checkPart(t, day11{}.PartTwo, prog, "#")

	_, err := day11{}.PartOne([]string{"3,100,104,1,3,100,99"})
	assert.ErrorContains(t, err, "stalled")
}

func TestRender(t *testing.T) {
	hull := map[point]int64{
		{0, 0}:  white,
		{2, 1}:  white,
		{1, 1}:  black,
		{-5, 9}: black,
	}
	assert.Equal(t, "#..\n..#", render(hull))
	assert.Equal(t, "", render(map[point]int64{{1, 1}: black}))
}

func TestDay13(t *testing.T) {
	checkPart(t, day13{}.PartOne, "104,1,104,2,104,2,104,5,104,6,104,1,99", "1")

	// Draws a score of 7, the paddle at x=3 and the ball at x=5, then reads the
	// joystick and reports its position as the final score.
	const game = "1,0,0,40,104,-1,104,0,104,7,104,3,104,4,104,3,104,5,104,6,104,4,3,41,104,-1,104,0,4,41,99"
	checkPart(t, day13{}.PartOne, game, "0")
	checkPart(t, day13{}.PartTwo, game, "1")

	assert.Equal(t, int64(-1), sign(int64(-12)))
	assert.Equal(t, 0, sign(0))
	assert.Equal(t, int8(1), sign(int8(3)))
}
