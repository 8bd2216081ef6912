package git

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
)

const gitDirGlob = "**/.git"

const unknownRepoName = "<unknown>"

// walkRootDirs calls cb for every directory under baseDir that holds a .git entry, as they are found.
// Entries that can't be read are skipped and symlinks are not followed. Errors returned by cb stop the walk.
func walkRootDirs(baseDir string, cb func(rootDir string) error) error {
	if !doublestar.ValidatePattern(gitDirGlob) {
		return errors.Errorf("invalid glob pattern: %v", gitDirGlob)
	}

	found := set.New[string](100)

	return doublestar.GlobWalk(os.DirFS(baseDir), gitDirGlob, func(p string, _ fs.DirEntry) error {
		rootDir, ok := rootDirOf(baseDir, p)
		if !ok || !found.Insert(rootDir) {
			return nil
		}

		return cb(rootDir)
	}, doublestar.WithNoFollow())
}

// rootDirOf maps a slash separated .git path, relative to baseDir, to the repository root.
func rootDirOf(baseDir string, gitPath string) (string, bool) {
	if path.Base(gitPath) != ".git" {
		return "", false
	}

	return filepath.Join(baseDir, filepath.FromSlash(path.Dir(gitPath))), true
}

func repoName(rootDir string) string {
	name := filepath.Base(rootDir)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return unknownRepoName
	}

	return name
}

// openRepo never looks into parent dirs, so a broken .git does not resolve to an enclosing repository.
func openRepo(rootDir string) (*git.Repository, bool) {
	gitRepo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{
		DetectDotGit:          false,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, false
	}

	return gitRepo, true
}

func findHeadHash(gitRepo *git.Repository) (plumbing.Hash, bool) {
	gitHead, err := gitRepo.Head()
	if err != nil {
		return plumbing.ZeroHash, false
	}

	return gitHead.Hash(), true
}

// walkCommits calls cb once for every commit reachable from the given hash, in no particular order.
// Commits that can't be loaded are dropped, and so are the parents only reachable through them.
func walkCommits(gitRepo *git.Repository, from plumbing.Hash, cb func(gitCommit *object.Commit)) {
	seen := set.New[plumbing.Hash](1000)
	seen.Insert(from)

	pending := []plumbing.Hash{from}
	for len(pending) > 0 {
		hash := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		gitCommit, err := gitRepo.CommitObject(hash)
		if err != nil {
			continue
		}

		cb(gitCommit)

		for _, parent := range gitCommit.ParentHashes {
			if seen.Insert(parent) {
				pending = append(pending, parent)
			}
		}
	}
}
