// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

package client

import (
	"context"

	"github.com/MKhiriev/go-field-validator/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// FormRunner shows a form to the user and blocks until it is submitted or
// cancelled. *tui.TUI implements it.
type FormRunner interface {
	Run(ctx context.Context, form *tui.FormModel) (tui.Submission, error)
}
