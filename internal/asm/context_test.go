package asm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwipplinger/avian/internal/asm"
)

// recordingTask appends its own name to a shared log when Run.
type recordingTask struct {
	name string
	log  *[]string
}

func (t *recordingTask) Run(c *asm.Context) { *t.log = append(*t.log, t.name) }

func TestRunTasksReverseInsertionOrder(t *testing.T) {
	var log []string
	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)

	ctx.AppendTask(&recordingTask{name: "first", log: &log})
	ctx.AppendTask(&recordingTask{name: "second", log: &log})
	ctx.AppendTask(&recordingTask{name: "third", log: &log})

	ctx.RunTasks()

	assert.Equal(t, []string{"third", "second", "first"}, log,
		"tasks are prepended, so RunTasks sees them in reverse insertion order")
}

func TestAppendTaskGrowsZoneAccounting(t *testing.T) {
	zone := asm.NewZone()
	ctx := asm.NewContext(asm.PanicSystem{}, zone, nil)
	require.Zero(t, zone.Allocated(), "a fresh Zone starts with no attributed growth")

	ctx.AppendTask(&recordingTask{name: "first"})
	afterOne := zone.Allocated()
	assert.Positive(t, afterOne, "appending a task must attribute its node's size to the owning Zone")

	ctx.AppendTask(&recordingTask{name: "second"})
	assert.Equal(t, 2*afterOne, zone.Allocated(), "each task node is the same fixed size, so growth is linear in task count")
}

func TestResolveBlocksLaysOutSequentially(t *testing.T) {
	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)

	ctx.Code.Append4(0x11111111)
	ctx.Code.Append4(0x22222222)
	first := ctx.EndBlock(true)

	ctx.Code.Append4(0x33333333)
	second := ctx.EndBlock(false)

	ctx.ResolveBlocks()

	require.True(t, first.Resolved())
	require.True(t, second.Resolved())
	assert.EqualValues(t, 0, first.Start)
	assert.EqualValues(t, 8, second.Start)
}

func TestWriteToCopiesBlocksToResolvedPositionsAndRunsTasks(t *testing.T) {
	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)

	ctx.Code.Append4(0xAAAAAAAA)
	ctx.Code.Append4(0xBBBBBBBB)
	ctx.EndBlock(false)
	ctx.ResolveBlocks()

	var log []string
	ctx.AppendTask(&recordingTask{name: "x", log: &log})

	dst := make([]byte, 8)
	ctx.WriteTo(dst)

	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xBB, 0xBB, 0xBB, 0xBB}, dst)
	assert.Same(t, &dst[0], &ctx.Result[0], "Result must alias the destination passed to WriteTo")
	assert.Equal(t, []string{"x"}, log, "WriteTo must run queued tasks after copying blocks")
}

func TestOffsetTracksCurrentEmissionPosition(t *testing.T) {
	ctx := asm.NewContext(asm.PanicSystem{}, asm.NewZone(), nil)

	ctx.Code.Append4(0x1)
	off := ctx.Offset()
	require.False(t, off.Resolved())

	ctx.Code.Append4(0x2)
	ctx.EndBlock(false)
	ctx.ResolveBlocks()

	require.True(t, off.Resolved())
	assert.EqualValues(t, 4, off.Value())
}
