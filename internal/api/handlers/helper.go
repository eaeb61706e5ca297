package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/errors"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/utils/response"
)

// MergeHeader reports how a guest cart merge went: merged, failed or skipped.
const MergeHeader = "X-Cart-Merge"

func relay(w http.ResponseWriter, resp *upstream.Response, fallbackMessage string) {
	response.Passthrough(w, resp.StatusCode, resp.Body, fallbackMessage)
}

func isUnauthorized(err error) bool {
	appErr, ok := errors.IsAppError(err)
	return ok && appErr.StatusCode == http.StatusUnauthorized
}
