package workspace

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/devhours/lib/config"
	"github.com/pescuma/devhours/lib/consoles"
	"github.com/pescuma/devhours/lib/importers/git"
	"github.com/pescuma/devhours/lib/model"
	"github.com/pescuma/devhours/lib/report"
)

type Workspace struct {
	console consoles.Console
	config  *config.Config
}

func NewWorkspace(cfg *config.Config) *Workspace {
	var console consoles.Console
	if cfg.Progress {
		console = consoles.NewStdErrProgressConsole()
	} else {
		console = consoles.NewStdErrConsole()
	}

	return NewWorkspaceWithConsole(cfg, console)
}

func NewWorkspaceWithConsole(cfg *config.Config, console consoles.Console) *Workspace {
	return &Workspace{
		console: console,
		config:  cfg,
	}
}

func (w *Workspace) ImportCommitHours() (*model.HoursReport, error) {
	importer := git.NewHoursImporter(w.console, model.NewIdentity(w.config.Emails, w.config.IgnoreCase))

	result, err := importer.Import(w.config.DevDir, &git.HoursOptions{
		Workers: w.config.Workers,
	})
	if err != nil {
		return nil, err
	}

	if w.config.Verbose {
		w.printSummary(result)
	}

	w.console.Printf("\n")
	w.console.Finish()

	return result, nil
}

func (w *Workspace) printSummary(result *model.HoursReport) {
	w.console.Printf("%v\n", summary(result))
}

func summary(result *model.HoursReport) string {
	pc := pluralize.NewClient()

	msg := fmt.Sprintf("Counted %v %v in %v %v",
		humanize.Comma(int64(result.Total)), pc.Pluralize("commit", result.Total, false),
		humanize.Comma(int64(result.Repositories)), pc.Pluralize("repository", result.Repositories, false))

	if result.Skipped > 0 {
		msg += fmt.Sprintf(" (skipped %v)", humanize.Comma(int64(result.Skipped)))
	}

	return msg
}

func (w *Workspace) WriteHoursReport(out io.Writer, result *model.HoursReport) error {
	return report.WriteHours(out, result)
}
