// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the page interaction layer, the terminal UI, the asset cache and
// the connectivity prober into a single process lifecycle.
package client
