package git

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

const (
	myEmail    = "sam@hackery.site"
	otherEmail = "someone@example.com"
)

var myEmails = []string{"@hackery.site", "@som.codes"}

type fixtureRepo struct {
	t       *testing.T
	dir     string
	repo    *git.Repository
	commits int
}

func newFixtureRepo(t *testing.T, dir string) *fixtureRepo {
	require.NoError(t, os.MkdirAll(dir, 0o755))

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return &fixtureRepo{
		t:    t,
		dir:  dir,
		repo: repo,
	}
}

// at returns a time with the given local hour in a fixed offset (in hours).
func at(hour int, offsetHours float64) time.Time {
	zone := time.FixedZone("", int(offsetHours*3600))
	return time.Date(2024, 5, 17, hour, 25, 0, 0, zone)
}

func signature(email string, when time.Time) *object.Signature {
	return &object.Signature{
		Name:  "Someone",
		Email: email,
		When:  when,
	}
}

func (r *fixtureRepo) commit(email string, when time.Time, parents ...plumbing.Hash) plumbing.Hash {
	sig := signature(email, when)
	return r.commitAs(sig, sig, parents...)
}

func (r *fixtureRepo) commitAs(author, committer *object.Signature, parents ...plumbing.Hash) plumbing.Hash {
	r.commits++

	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)

	file := filepath.Join(r.dir, "file.txt")
	require.NoError(r.t, os.WriteFile(file, []byte(fmt.Sprintf("change %v\n", r.commits)), 0o644))

	_, err = wt.Add("file.txt")
	require.NoError(r.t, err)

	hash, err := wt.Commit(fmt.Sprintf("commit %v", r.commits), &git.CommitOptions{
		Author:    author,
		Committer: committer,
		Parents:   parents,
	})
	require.NoError(r.t, err)

	return hash
}

func mkdir(t *testing.T, parts ...string) string {
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}
