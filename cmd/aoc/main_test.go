// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSolveAll(t *testing.T) {
	dir := t.TempDir()
	const day05 = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0," +
		"1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99\r\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day05.txt"), []byte(day05), 0644))
	// Ignores its input and outputs 7. Day 11 has no input file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day09.txt"), []byte("4,3,99,7\n"), 0644))

	core, logs := observer.New(zap.DebugLevel)
	var out bytes.Buffer
	failed := solveAll(zap.New(core), []int{5, 9, 11, 4}, dir, &out)

	assert.Equal(t, "day 5 part 1: 999\nday 5 part 2: 999\nday 9 part 1: 7\nday 9 part 2: 7\n", out.String())
	assert.Equal(t, 2, failed)
	assert.Equal(t, 1, logs.FilterMessage("failed reading input").Len())
	assert.Equal(t, 1, logs.FilterMessage("no solution registered").Len())
}

func TestReadLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(p, []byte("a\r\nb\n\nc"), 0644))
	lines, err := readLines(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)

	_, err = readLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
