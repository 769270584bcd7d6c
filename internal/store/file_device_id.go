// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// LoadOrCreateDeviceID returns the device id stored at path. A missing or
// unparsable file yields a fresh random id which is then written back. A
// write failure is logged and the fresh id is still returned, so the device
// gets a new identity on the next start.
func LoadOrCreateDeviceID(path string, log *logger.Logger) uuid.UUID {
	if data, err := os.ReadFile(path); err == nil {
		if id, parseErr := uuid.Parse(strings.TrimSpace(string(data))); parseErr == nil {
			return id
		}
		log.Warn().Str("func", "LoadOrCreateDeviceID").Str("path", path).Msg("device id file is corrupt, minting a new id")
	} else if !os.IsNotExist(err) {
		log.Warn().Err(err).Str("func", "LoadOrCreateDeviceID").Str("path", path).Msg("cannot read device id file")
	}

	id := uuid.New()
	if err := writeDeviceID(path, id); err != nil {
		log.Err(err).Str("func", "LoadOrCreateDeviceID").Str("path", path).Msg("failed to persist device id")
		return id
	}

	log.Info().Str("device_id", id.String()).Msg("minted new device id")
	return id
}

func writeDeviceID(path string, id uuid.UUID) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(id.String()+"\n"), 0o600)
}
