// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type SyncValidationService struct {
	inner     SyncServerService
	validator validators.Validator
}

func NewSyncValidationService() SyncServerServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *SyncValidationService) Sync(ctx context.Context, owner string, req models.SyncRequest) (models.SyncResponse, error) {
	if strings.TrimSpace(owner) == "" {
		return models.SyncResponse{}, fmt.Errorf("%w: empty owner", ErrInvalidDataProvided)
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: error during change set validation: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Sync(ctx, owner, req)
}

func (v *SyncValidationService) Wrap(wrapper SyncServerService) SyncServerService {
	v.inner = wrapper
	return v
}
