package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelinePhases(t *testing.T) {
	var out bytes.Buffer
	p := NewPipelineWithOutput(RenderPhases, &out)
	assert.Equal(t, Phase(""), p.Current())

	load := p.NextPhase(2)
	require.NotNil(t, load)
	assert.Equal(t, PhaseLoading, p.Current())
	require.NoError(t, load.Increment())
	require.NoError(t, load.Add(1))

	assemble := p.NextPhase(1)
	require.NotNil(t, assemble)
	assert.Equal(t, PhaseAssembling, p.Current())
	assemble.Describe("3 schemas")

	export := p.NextPhase(2)
	require.NotNil(t, export)
	assert.Equal(t, PhaseExporting, p.Current())
	export.SetTotal(4)
	require.NoError(t, export.Set(4))

	assert.Nil(t, p.NextPhase(1))
	assert.Equal(t, Phase(""), p.Current())
	p.Finish()

	p.PrintSummary(RenderSummary{Groups: 2, Schemas: 3, CustomTypes: 1})
	assert.Contains(t, out.String(), "2 groups, 3 schemas, 1 custom types")
}

func TestPipelineDisabled(t *testing.T) {
	var out bytes.Buffer
	p := NewRenderPipeline(&out, true)

	bar := p.NextPhase(10)
	require.NotNil(t, bar)
	require.NoError(t, bar.Increment())
	require.NoError(t, bar.Finish())
	p.Finish()
	p.PrintSummary(RenderSummary{Schemas: 1})

	assert.Empty(t, out.String())
}
