package postprocess

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riglogger/dataformats"
)

func Test_ChartRenders(t *testing.T) {
	blocks := []Block{
		{Label: "0.1", Points: []dataformats.Measurement{
			{Force: 1, Shrinkage: 1},
			{Force: 2, Shrinkage: 2},
			{Force: 3, Shrinkage: 2.5},
		}},
		{Label: "0.3", Points: []dataformats.Measurement{
			{Force: 1, Shrinkage: 2},
			{Force: 2, Shrinkage: 4},
			{Force: 3, Shrinkage: 5},
		}},
	}
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, Chart(blocks, "Force vs Contraction Rate", path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
