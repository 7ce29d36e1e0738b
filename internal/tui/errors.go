// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by TUI.Run when the form was cancelled.
	ErrUserQuit = errors.New("вышел из программы")
	// ErrUnknownOption is returned by Field.SetValue for a value that is not
	// one of the options of a choice field.
	ErrUnknownOption = errors.New("unknown option")
	// ErrNoFields is returned when a form without fields is started.
	ErrNoFields = errors.New("form has no fields")
)
