// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// compressionLevel is the gzip level of JSON replies.
const compressionLevel = 5

// withCompressedResponses gzips JSON replies for clients that accept it.
func withCompressedResponses() func(http.Handler) http.Handler {
	return middleware.Compress(compressionLevel, "application/json")
}

// withGzipRequest inflates request bodies sent with "Content-Encoding: gzip".
// A body that is not valid gzip is rejected with 400 before the route runs.
func withGzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "withGzipRequest").Msg("bad gzip body")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		r.Body = gzipBody{Reader: zr, zr: zr, orig: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}

// gzipBody closes both the inflater and the original body.
type gzipBody struct {
	io.Reader
	zr   *gzip.Reader
	orig io.ReadCloser
}

func (b gzipBody) Close() error {
	zerr := b.zr.Close()
	if err := b.orig.Close(); err != nil {
		return err
	}
	return zerr
}
