// SPDX-License-Identifier: MIT

package restapi

import (
	"encoding/json"
	"net/http"
)

// ImplResponse defines an implementation response with an error code and the
// associated body.
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response returns an ImplResponse struct filled.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{Code: code, Body: body}
}

// EncodeJSONResponse uses the json encoder to write an interface to the http
// response with the given status code.
func EncodeJSONResponse(body interface{}, status int, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
