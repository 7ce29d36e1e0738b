// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive formdemo runtime.
//
// It builds the contact form from configuration, wires its validators, runs
// it through a FormRunner and prints the submitted values together with the
// validation report.
package client
