// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// formdemo terminal UI and its runner.
//
// All Msg* constants are human-readable message strings shown in the status
// line of the form or printed after it closes.
package app

const (
	// MsgFormHasErrors is shown when enter is pressed while the form status
	// is not OK.
	MsgFormHasErrors = "Форма содержит ошибки, отправка невозможна"

	// MsgReportCopied is shown after the validation report was copied to the
	// clipboard.
	MsgReportCopied = "Отчёт скопирован"

	// MsgCopyFailed prefixes the clipboard error.
	MsgCopyFailed = "Ошибка копирования"

	// MsgNothingToCopy is shown when there is no validation result yet.
	MsgNothingToCopy = "Нечего копировать"

	// MsgFormSubmitted heads the summary printed after a successful submit.
	MsgFormSubmitted = "Форма отправлена"

	// MsgFormCancelled is printed when the user leaves the form.
	MsgFormCancelled = "Ввод отменён"

	// MsgValidationReport heads the validation report in the summary.
	MsgValidationReport = "Отчёт проверки"
)
