// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/clock"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	testToken   = "static-secret"
	testSignKey = "jwt-sign-key"
)

var testNow = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

// ---- Stubs ----

type stubServerInfoService struct {
	info models.ServerInfo
}

func (s *stubServerInfoService) GetServerInfo(context.Context) models.ServerInfo { return s.info }

// stubSyncService records the owner it was called with.
type stubSyncService struct {
	owner string
	req   models.SyncRequest
	resp  models.SyncResponse
	err   error
}

func (s *stubSyncService) Sync(_ context.Context, owner string, req models.SyncRequest) (models.SyncResponse, error) {
	s.owner = owner
	s.req = req
	return s.resp, s.err
}

type panickingSyncService struct{}

func (panickingSyncService) Sync(context.Context, string, models.SyncRequest) (models.SyncResponse, error) {
	panic("boom")
}

// ---- Helpers ----

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		HTTPAddress:  "127.0.0.1:0",
		Token:        testToken,
		TokenSignKey: testSignKey,
		Version:      "1.2.3",
	}
}

// newTestHandler собирает Handler с заглушками сервисов.
func newTestHandler(syncSvc service.SyncServerService) *Handler {
	return NewHandler(&service.ServerServices{
		SyncService: syncSvc,
		ServerInfo:  &stubServerInfoService{info: models.ServerInfo{Version: "1.2.3", StartedAt: testNow, ServerTime: testNow}},
	}, testServerConfig(), logger.Nop())
}

// newRealHandler wires the in-memory server behind the validation wrapper.
func newRealHandler(t *testing.T) (*Handler, *clock.FakeClock) {
	t.Helper()
	clk := clock.NewFakeClock(testNow)
	services, err := service.NewServerServices(testServerConfig(), clk, logger.Nop())
	require.NoError(t, err)
	return NewHandler(services, testServerConfig(), logger.Nop()), clk
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

func signedToken(t *testing.T, subject string, expiresAt time.Time, key string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{
		Issuer:    utils.TokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}
