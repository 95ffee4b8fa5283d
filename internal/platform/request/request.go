// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ianbriton/blogapi/internal/platform/constants"
	"github.com/ianbriton/blogapi/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if the body is missing or malformed.
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
BearerToken returns the raw token carried by the Authorization header.

The "Bearer" scheme is matched case-insensitively and any surrounding spaces
are dropped, so "Bearer abc", "bearer  abc" and "Bearerabc" all yield "abc".
A header without the scheme is returned trimmed as-is. The boolean is false
when no token remains.
*/
func BearerToken(request *http.Request) (string, bool) {
	return ParseBearer(request.Header.Get(constants.HeaderAuthorization))
}

// ParseBearer applies the [BearerToken] rules to a raw header value.
func ParseBearer(header string) (string, bool) {
	token := strings.TrimSpace(header)

	scheme := constants.BearerScheme
	if len(token) >= len(scheme) && strings.EqualFold(token[:len(scheme)], scheme) {
		token = strings.TrimSpace(token[len(scheme):])
	}

	return token, token != ""
}
