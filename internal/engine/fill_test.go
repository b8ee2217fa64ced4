package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
	"github.com/danieljhkim/tfscaffold/internal/gitx"
)

func TestFill_RecordsPlaceholdersOnly(t *testing.T) {
	env := newTestEnv(t)
	env.mkdir(t, "live/dev/app")
	env.mkdir(t, "live/prod/app")
	env.write(t, "live/prod/db/main.tf", "")

	result, err := env.engine.Fill(context.Background(), &FillRequest{Root: "live"})
	require.NoError(t, err)

	assert.Equal(t, paths("live/dev/app/main.tf", "live/prod/app/main.tf"), result.Created)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, paths("live/dev/app")[0], result.Rows[0].Name)
	assert.True(t, result.Rows[0].PlaceholderAdded)
}

func TestFill_DefaultRootSkipsStateDir(t *testing.T) {
	env := newTestEnv(t)
	env.mkdir(t, "envs/dev")

	// a first run creates the state directory
	_, err := env.engine.Fill(context.Background(), &FillRequest{})
	require.NoError(t, err)

	env.mkdir(t, "envs/stage")
	result, err := env.engine.Fill(context.Background(), &FillRequest{})
	require.NoError(t, err)

	assert.Equal(t, paths("envs/stage/main.tf"), result.Created)
}

func TestFill_OutsideWorkingDirectoryIsAbsolute(t *testing.T) {
	env := newTestEnv(t)
	other := t.TempDir()

	result, err := env.engine.Fill(context.Background(), &FillRequest{Root: other})
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	assert.Equal(t, filepath.Join(other, "main.tf"), result.Created[0])
}

func TestFill_GitAddWithoutRepository(t *testing.T) {
	env := newTestEnv(t)
	env.git.SetError(gitx.ErrNotRepository)
	env.mkdir(t, "a")

	result, err := env.engine.Fill(context.Background(), &FillRequest{GitAdd: true})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	require.NotNil(t, result.Rows[0].Staged)
	assert.False(t, *result.Rows[0].Staged)
	assert.FileExists(t, env.abs("a/main.tf"))
}

func TestFill_RootNotDirectory(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, "main.tf", "")

	_, err := env.engine.Fill(context.Background(), &FillRequest{Root: "main.tf"})
	assert.True(t, errors.Is(err, fsops.ErrNotDirectory), "got %v", err)
}
