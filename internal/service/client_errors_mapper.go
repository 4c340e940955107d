// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/qa-console/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain, so callers can
// still reach the [*adapter.APIError].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrKnowledgeNotFound, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnprocessable),
		errors.Is(err, adapter.ErrInvalidID):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return err
}
