package validation

import (
	"net/http"

	"github.com/goccy/go-json"
)

// MaxBodyBytes bounds every JSON request body.
const MaxBodyBytes = 1 << 20

// DecodeRequest reads a bounded JSON body into dst, rejecting unknown
// fields, then validates it. A nil result means dst is ready to use.
func DecodeRequest(w http.ResponseWriter, r *http.Request, dst any) *APIError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &APIError{Code: "BAD_JSON", Message: "bad json"}
	}
	if verr := ValidateStruct(dst); verr != nil {
		return verr.ToAPIError()
	}
	return nil
}
