package main

import (
	"io"

	"github.com/pescuma/devhours/lib/config"
	"github.com/pescuma/devhours/lib/workspace"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()

	if cli.Dir != "" {
		cfg.DevDir = cli.Dir
	}
	if len(cli.Email) > 0 {
		cfg.Emails = cli.Email
	}
	if cli.IgnoreCase {
		cfg.IgnoreCase = true
	}
	if cli.Workers != 0 {
		cfg.Workers = cli.Workers
	}
	cfg.Progress = cli.Progress
	cfg.Verbose = cli.Verbose

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ws := workspace.NewWorkspace(cfg)

	result, err := ws.ImportCommitHours()
	if err != nil {
		return err
	}

	return ws.WriteHoursReport(out, result)
}
