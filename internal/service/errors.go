// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-storefront/internal/validators"
)

var (
	ErrUnknownCollection  = validators.ErrUnknownCollection
	ErrReadOnlyCollection = validators.ErrReadOnlyCollection
	ErrEmptyItemID        = validators.ErrEmptyItemID
	ErrInvalidUserID      = validators.ErrInvalidUserID
	ErrUnknownUser        = errors.New("unknown user")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
