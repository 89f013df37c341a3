package handlers

import (
	"net/http"

	apperrors "github.com/oakfieldhq/oakfield/pkg/errors"
)

// Authorizer decides whether a cache-invalidation request may proceed. The
// handler delegates the access decision instead of baking a trust
// assumption into the invalidation logic; deployments needing real
// authentication swap in a stronger implementation.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// MethodAuthorizer permits invalidation over POST only. This is the sole
// guard on the endpoint and is not sufficient for production exposure.
type MethodAuthorizer struct{}

// Authorize rejects every method other than POST.
func (MethodAuthorizer) Authorize(r *http.Request) error {
	if r == nil || r.Method != http.MethodPost {
		return apperrors.ErrMethodNotAllowed
	}
	return nil
}
