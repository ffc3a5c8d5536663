package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/scholars-chronicle/api/internal/api/shared"
)

// validate is the shared request validator. validator.Validate is
// concurrency-safe and caches struct metadata, so one instance serves
// every handler.
var validate = validator.New()

// DecodeAndValidate decodes the request body into dst and runs struct
// validation. On failure it writes the error response and returns false;
// handlers should simply return.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return false
	}

	return true
}
