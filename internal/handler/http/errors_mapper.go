package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownCollection:       http.StatusNotFound,
	service.ErrReadOnlyCollection:      http.StatusForbidden,
	service.ErrEmptyItemID:             http.StatusBadRequest,
	service.ErrInvalidUserID:           http.StatusUnauthorized,
	service.ErrUnknownUser:             http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)
	http.Error(w, http.StatusText(status), status)
}
