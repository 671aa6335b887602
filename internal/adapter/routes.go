// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Storefront API paths, relative to the configured base URL.
const (
	pathFetchCollection  = "/api/fetch/{collection}"
	pathAddToCollection  = "/api/add/{collection}/{id}"
	pathRemoveCollection = "/api/remove/{collection}/{id}"
	pathMe               = "/api/me"
	pathLoginGoogle      = "/api/login/google"
	pathCheckout         = "/api/checkout"
)
