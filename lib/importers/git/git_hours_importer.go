package git

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"

	"github.com/pescuma/devhours/lib/consoles"
	"github.com/pescuma/devhours/lib/model"
	"github.com/pescuma/devhours/lib/utils"
)

type HoursImporter struct {
	console  consoles.Console
	identity *model.Identity
}

type HoursOptions struct {
	Workers int
}

type repoHours struct {
	opened bool
	hours  model.HourHistogram
}

var errAborted = errors.New("aborted")

func NewHoursImporter(console consoles.Console, identity *model.Identity) *HoursImporter {
	return &HoursImporter{
		console:  console,
		identity: identity,
	}
}

// Import finds all repositories under baseDir and sums the hours of the commits reachable from their HEADs.
// Only problems with baseDir itself are returned as errors, bad repositories are just skipped.
func (i *HoursImporter) Import(baseDir string, opts *HoursOptions) (*model.HoursReport, error) {
	group := utils.NewProcessGroup(func(rootDir string) (*repoHours, error) {
		return i.importRepo(rootDir), nil
	}, utils.ParallelOptions{
		Routines: opts.Workers,
	})

	go func() {
		err := walkRootDirs(baseDir, func(rootDir string) error {
			if !group.Send(rootDir) {
				return errAborted
			}
			return nil
		})
		if err != nil {
			group.Abort(errors.Wrapf(err, "searching for repositories in %v", baseDir))
		}

		group.FinishedInput()
	}()

	var hs []model.HourHistogram
	skipped := 0
	for r := range group.Output {
		if r.opened {
			hs = append(hs, r.hours)
		} else {
			skipped++
		}
	}

	if err := group.Error(); err != nil {
		return nil, err
	}

	report := model.NewHoursReport(hs)
	report.Skipped = skipped

	return report, nil
}

func (i *HoursImporter) importRepo(rootDir string) *repoHours {
	i.console.Printf("Processing: %v…\n", repoName(rootDir))

	result := &repoHours{}

	gitRepo, ok := openRepo(rootDir)
	if !ok {
		return result
	}

	result.opened = true
	result.hours = i.computeHours(gitRepo)

	return result
}

func (i *HoursImporter) computeHours(gitRepo *git.Repository) model.HourHistogram {
	var hours model.HourHistogram

	head, ok := findHeadHash(gitRepo)
	if !ok {
		return hours
	}

	walkCommits(gitRepo, head, func(gitCommit *object.Commit) {
		author := model.Author{
			Name:  gitCommit.Author.Name,
			Email: gitCommit.Author.Email,
		}
		if !i.identity.Matches(author) {
			return
		}

		hours.Increment(model.NewCommitTime(gitCommit.Committer.When).Hour())
	})

	return hours
}
