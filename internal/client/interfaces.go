// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the commands in args and blocks until they finish.
	Run(ctx context.Context, args []string) error
}

// Dashboard is an interactive view over the stores. It blocks until the
// user quits or ctx is cancelled.
type Dashboard interface {
	Run(ctx context.Context) error
}
