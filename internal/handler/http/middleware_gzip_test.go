// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/app"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func jsonReply(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(body))
	})
}

func TestCompressedResponses_WhenAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withCompressedResponses()(jsonReply(`{"ok":true}`)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"ok":true}`, gunzip(t, rr.Body.Bytes()))
}

func TestCompressedResponses_PlainWithoutAcceptEncoding(t *testing.T) {
	rr := httptest.NewRecorder()
	withCompressedResponses()(jsonReply(`{"ok":true}`)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"ok":true}`, rr.Body.String())
}

func TestGzipRequest_DecompressesBody(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"changes":[]}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGzipRequest(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"changes":[]}`, got)
}

func TestGzipRequest_PassThroughPlainBody(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"changes":[]}`))
	withGzipRequest(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"changes":[]}`, got)
}

func TestGzipRequest_InvalidBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGzipRequest(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgInvalidDataProvided)
	assert.False(t, called)
}
