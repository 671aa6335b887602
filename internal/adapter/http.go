// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpStorefrontAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPStorefrontAdapter constructs an HTTP/REST implementation of
// [StorefrontAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and stores session cookies in jar.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPStorefrontAdapter(adapterCfg config.ClientAdapter, jar http.CookieJar, logger *logger.Logger) (StorefrontAdapter, error) {
	baseURL, err := NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(jar)
	client.
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpStorefrontAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

// NormalizeBaseURL trims raw, defaults a missing scheme to http and strips
// trailing slashes. The result must have both scheme and host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchCollection implements [StorefrontAdapter]. It GETs
// /api/fetch/{collection} and decodes the item listing.
func (h *httpStorefrontAdapter) FetchCollection(ctx context.Context, c models.Collection) ([]models.CollectionItem, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}

	resp, err := h.request(ctx).
		SetPathParam("collection", c.String()).
		Get(pathFetchCollection)
	if err != nil {
		return nil, transportError("fetch "+c.String(), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.CollectionItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %w", ErrTransport, c, err)
	}

	return items, nil
}

// AddToCollection implements [StorefrontAdapter]. It GETs
// /api/add/{collection}/{id}.
func (h *httpStorefrontAdapter) AddToCollection(ctx context.Context, c models.Collection, bookID string) error {
	return h.mutate(ctx, pathAddToCollection, "add to "+c.String(), c, bookID)
}

// RemoveFromCollection implements [StorefrontAdapter]. It GETs
// /api/remove/{collection}/{id}.
func (h *httpStorefrontAdapter) RemoveFromCollection(ctx context.Context, c models.Collection, bookID string) error {
	return h.mutate(ctx, pathRemoveCollection, "remove from "+c.String(), c, bookID)
}

func (h *httpStorefrontAdapter) mutate(ctx context.Context, path, op string, c models.Collection, bookID string) error {
	if !c.Mutable() {
		return fmt.Errorf("%w: %q", ErrReadOnlyCollection, c)
	}

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{
			"collection": c.String(),
			"id":         bookID,
		}).
		Get(path)
	if err != nil {
		return transportError(op, err)
	}

	return mapHTTPError(resp)
}

// Checkout implements [StorefrontAdapter]. It POSTs /api/checkout.
func (h *httpStorefrontAdapter) Checkout(ctx context.Context) error {
	resp, err := h.request(ctx).Post(pathCheckout)
	if err != nil {
		return transportError("checkout", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser implements [StorefrontAdapter]. It GETs /api/me.
func (h *httpStorefrontAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.request(ctx).Get(pathMe)
	if err != nil {
		return models.User{}, transportError("current user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("%w: decode current user: %w", ErrTransport, err)
	}

	return user, nil
}

// LoginURL implements [StorefrontAdapter].
func (h *httpStorefrontAdapter) LoginURL() string {
	return h.baseURL + pathLoginGoogle
}

// Navigate implements [StorefrontAdapter]. rawURL may be absolute or
// relative to the base URL.
func (h *httpStorefrontAdapter) Navigate(ctx context.Context, rawURL string) error {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/html,application/json").
		Get(rawURL)
	if err != nil {
		return transportError("navigate", err)
	}

	return mapHTTPError(resp)
}

// request starts a resty request bound to ctx with a trace ID header taken
// from ctx or freshly generated.
func (h *httpStorefrontAdapter) request(ctx context.Context) *resty.Request {
	traceID := utils.GetTraceIDFromContext(ctx)
	if traceID == "" {
		traceID = utils.NewTraceID()
	}
	h.logger.Debug().Str("trace_id", traceID).Msg("storefront request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
}
