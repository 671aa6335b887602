// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the storefront client application runtime.
//
// It runs a script of commands against the synchronized stores, prints the
// resulting state, and hosts the long-running watch and dashboard modes
// together with the background refresh job.
package client
