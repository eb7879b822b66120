package auth

import (
	"errors"
	"net/http"
	"strings"
)

const bearerScheme = "Bearer"

var ErrMalformedHeader = errors.New("authorization header must be 'Bearer <token>'")

// BearerToken returns the token from "Authorization: Bearer <token>". A
// request without the header yields an empty token and no error; any other
// scheme or an empty token is ErrMalformedHeader. Cookies are not read.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", nil
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrMalformedHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedHeader
	}
	return token, nil
}
