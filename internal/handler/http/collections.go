package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) fetchCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	items, err := h.services.StorefrontService.List(ctx, userID, collectionParam(r))
	if err != nil {
		writeError(w, r, err, "error listing collection")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addToCollection(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.services.StorefrontService.Add, "error adding to collection")
}

func (h *Handler) removeFromCollection(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.services.StorefrontService.Remove, "error removing from collection")
}

type mutation func(ctx context.Context, userID int64, c models.Collection, bookID string) error

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op mutation, failMsg string) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	bookID, err := idParam(r)
	if err != nil {
		writeError(w, r, service.ErrEmptyItemID, "malformed item id")
		return
	}

	if err = op(ctx, userID, collectionParam(r), bookID); err != nil {
		writeError(w, r, err, failMsg)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	moved, err := h.services.StorefrontService.Checkout(ctx, userID)
	if err != nil {
		writeError(w, r, err, "error during checkout")
		return
	}

	utils.WriteJSON(w, moved, http.StatusOK)
}

func collectionParam(r *http.Request) models.Collection {
	return models.Collection(chi.URLParam(r, "collection"))
}

// idParam returns the decoded item id. chi matches against the escaped path
// whenever the request carried escapes, so the parameter may need unescaping.
func idParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id, nil
	}
	return url.PathUnescape(id)
}
