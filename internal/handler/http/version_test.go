// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/models"
)

func TestGetServerVersion(t *testing.T) {
	router := newTestHandler(&stubSyncService{}).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, VersionRoute, nil))

	require.Equal(t, http.StatusOK, rr.Code, "no token needed")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var info models.ServerInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.True(t, info.ServerTime.Equal(testNow))
}
