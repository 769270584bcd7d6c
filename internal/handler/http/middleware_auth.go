// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// The token is accepted when it equals the configured static token (owner
// [DefaultOwner]) or when it is an HS256 JWT signed with the configured key
// and issued by [utils.TokenIssuer] (owner is the token subject). The owner
// is stored in the request context under [utils.OwnerCtxKey].
//
// Rejections are answered with 401 and one of the app.Msg* texts so the
// client can tell an expired token from a wrong one.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Str("func", "*Handler.auth").Msg("request without authorization header")
			utils.WriteError(w, app.MsgNoAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		owner, err := h.authenticate(token)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Str("func", "*Handler.auth").Msg("token expired")
				utils.WriteError(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Str("func", "*Handler.auth").Msg("token rejected")
				utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		ctx := context.WithValue(r.Context(), utils.OwnerCtxKey, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate resolves a bearer token to a dataset owner.
func (h *Handler) authenticate(token string) (string, error) {
	if h.staticToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(h.staticToken)) == 1 {
		return DefaultOwner, nil
	}
	if h.signKey == "" {
		return "", ErrTokenRejected
	}

	subject, err := utils.ValidateAndParseJWTToken(token, h.signKey, utils.TokenIssuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}
	return subject, nil
}
