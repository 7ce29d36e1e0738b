// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-field-validator/internal/app"
	"github.com/MKhiriev/go-field-validator/internal/config"
	"github.com/MKhiriev/go-field-validator/internal/logger"
	"github.com/MKhiriev/go-field-validator/internal/tui"
	"github.com/MKhiriev/go-field-validator/internal/validators"
	"github.com/MKhiriev/go-field-validator/models"
)

type App struct {
	cfg       *config.StructuredConfig
	runner    FormRunner
	out       io.Writer
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

// NewApp returns an App showing the contact form through runner and
// printing the outcome to out.
func NewApp(cfg *config.StructuredConfig, runner FormRunner, out io.Writer, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if runner == nil {
		return nil, errors.New("form runner is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{cfg: cfg, runner: runner, out: out, buildInfo: buildInfo, log: log}, nil
}

// Run shows the contact form once. Cancelling the form is not an error.
func (a *App) Run(ctx context.Context) error {
	form, err := NewContactForm(a.cfg, validators.NewDefaults(), validators.NewToolkit(a.log.GetChildLogger()), a.log)
	if err != nil {
		return fmt.Errorf("build contact form: %w", err)
	}
	form.WithBuildInfo(a.buildInfo)

	submission, err := a.runner.Run(ctx, form)
	if errors.Is(err, tui.ErrUserQuit) {
		a.log.Info().Msg("form cancelled")
		fmt.Fprintln(a.out, app.MsgFormCancelled)
		return nil
	}
	if err != nil {
		return fmt.Errorf("run contact form: %w", err)
	}

	a.log.Info().Int("fields", len(submission.Values)).Msg("form submitted")
	fmt.Fprintf(a.out, "%s\n\n%s\n%s:\n%s\n",
		app.MsgFormSubmitted,
		tui.RenderSubmission(submission),
		app.MsgValidationReport,
		tui.RenderReport(submission.Result),
	)
	return nil
}
