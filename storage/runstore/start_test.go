package runstore

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riglogger/dataformats"
	"riglogger/support/globals"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "runstore")
	if err != nil {
		fmt.Println("Unable to set the test archive folder")
		os.Exit(0)
	}
	globals.ArchivePath = dir
	if err = Start(); err != nil {
		fmt.Println(err)
		os.Exit(0)
	}
	code := m.Run()
	Close()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func Test_ArchiveFlow(t *testing.T) {
	count, err := Runs()
	require.NoError(t, err)
	require.Equal(t, 0, count)

	record := dataformats.RunRecord{
		Started:  1,
		Finished: 2,
		State:    "done",
		Sessions: 1,
		Samples:  3,
		Artifact: "structured_experiment_1.xlsx",
	}
	id, err := Record(record)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	count, err = Runs()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	loaded, err := Load(id)
	require.NoError(t, err)
	assert.Equal(t, "done", loaded.State)
	assert.Equal(t, 3, loaded.Samples)
	assert.Equal(t, "structured_experiment_1.xlsx", loaded.Artifact)

	last, err := Last()
	require.NoError(t, err)
	assert.Equal(t, id, last.Id)

	_, err = Load("missing")
	assert.Equal(t, globals.KeyInvalid, err)
}
