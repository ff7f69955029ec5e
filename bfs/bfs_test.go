package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/realtransducer/bfs"
	"github.com/katalvlaran/realtransducer/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 0)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex(0))
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(int, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_DirectedReachability checks that edges are only followed forward.
func TestBFS_DirectedReachability(t *testing.T) {
	g := core.NewGraph()
	// 0 -> 1 -> 2, 3 -> 0 (3 unreachable from 0)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(3, 0)
	_, _ = g.AddEdge(2, 2)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, res.Depth)
	assert.False(t, res.Reached(3))

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_DepthAndHook covers MaxDepth, the visit hook and parallel edges.
func TestBFS_DepthAndHook(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 2, core.WithReads("1"))
	_, _ = g.AddEdge(0, 1, core.WithReads("0"))
	_, _ = g.AddEdge(0, 1, core.WithReads("1"))
	_, _ = g.AddEdge(1, 3, core.WithReads("0"))

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))

	type visit struct{ id, depth int }
	var visited []visit
	res, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(id, depth int) error {
		visited = append(visited, visit{id, depth})
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []visit{{0, 0}, {1, 1}, {2, 1}, {3, 2}}, visited)
	assert.Equal(t, 1, res.Parent[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}
