// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingID      = errors.New("command requires an item id")
	ErrNoDashboard    = errors.New("dashboard is not available")
)
