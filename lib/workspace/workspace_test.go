package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/devhours/lib/config"
	"github.com/pescuma/devhours/lib/consoles"
	"github.com/pescuma/devhours/lib/model"
)

func createRepo(t *testing.T, dir string, email string, when time.Time) {
	require.NoError(t, os.MkdirAll(dir, 0o755))

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("readme"), 0o644))
	_, err = wt.Add("README")
	require.NoError(t, err)

	sig := &object.Signature{Name: "Me", Email: email, When: when}
	_, err = wt.Commit("initial", &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)
}

func newTestConfig(t *testing.T, dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.DevDir = dir
	cfg.Workers = 2
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestImportAndWriteReport(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	createRepo(t, filepath.Join(base, "one"), "me@hackery.site", time.Date(2024, 1, 1, 14, 0, 0, 0, time.FixedZone("", 3600)))
	createRepo(t, filepath.Join(base, "two"), "me@som.codes", time.Date(2024, 1, 1, 14, 59, 0, 0, time.FixedZone("", -3600)))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "three", ".git"), 0o755))

	var diag bytes.Buffer
	ws := NewWorkspaceWithConsole(newTestConfig(t, base), consoles.NewWriterConsole(&diag))

	result, err := ws.ImportCommitHours()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, ws.WriteHoursReport(&out, result))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "[14:xx] 100.000%", lines[14])
	assert.Equal(t, "[13:xx] 0.000%", lines[13])

	assert.Equal(t, 3, strings.Count(diag.String(), "Processing: "))
	assert.True(t, strings.HasSuffix(diag.String(), "…\n\n"))
}

func TestVerboseSummary(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	createRepo(t, filepath.Join(base, "one"), "me@hackery.site", time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC))

	cfg := newTestConfig(t, base)
	cfg.Verbose = true

	var diag bytes.Buffer
	ws := NewWorkspaceWithConsole(cfg, consoles.NewWriterConsole(&diag))

	_, err := ws.ImportCommitHours()
	require.NoError(t, err)

	assert.Equal(t, "Processing: one…\nCounted 1 commit in 1 repository\n\n", diag.String())
}

func TestSummary(t *testing.T) {
	t.Parallel()

	result := &model.HoursReport{Total: 12345, Repositories: 3, Skipped: 2}

	assert.Equal(t, "Counted 12,345 commits in 3 repositories (skipped 2)", summary(result))
}

func TestNoMatchesStillPrintsFullReport(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	createRepo(t, filepath.Join(base, "one"), "other@example.com", time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC))

	var diag bytes.Buffer
	ws := NewWorkspaceWithConsole(newTestConfig(t, base), consoles.NewWriterConsole(&diag))

	result, err := ws.ImportCommitHours()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)

	var out bytes.Buffer
	require.NoError(t, ws.WriteHoursReport(&out, result))

	assert.Equal(t, 24, strings.Count(out.String(), "NaN%\n"))
}
