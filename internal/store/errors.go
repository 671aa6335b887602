// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrInvalidID is returned, without any remote call, when a mutation
// receives the zero identifier.
var ErrInvalidID = errors.New("invalid item identifier")
