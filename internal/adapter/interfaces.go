// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the consoles and the
// QA backend.
//
// The primary abstraction is [ServerAdapter], which groups the backend calls
// into [ChatAPI] and [KnowledgeAPI]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Every call goes through the same interceptors. The request interceptor
// stamps a trace id. The response interceptor unwraps the {code, message,
// data} envelope, and the error hook logs each failure and turns it into a
// user-facing notification. Callers still receive the error, so they can
// react locally. Use [errors.Is] with the sentinels in errors.go (e.g.
// [ErrNotFound]) or [errors.As] with [*APIError].
package adapter

import (
	"context"

	"github.com/MKhiriev/qa-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter groups the backend API by resource.
type ServerAdapter interface {
	// Chat returns the chat call group.
	Chat() ChatAPI

	// Knowledge returns the knowledge-base call group.
	Knowledge() KnowledgeAPI
}

// ChatAPI is the chat call group.
type ChatAPI interface {
	// SendMessage posts a user message to POST /chat and returns the answer.
	// When req.SessionID is empty the backend opens a new session and
	// reports its id in the response.
	SendMessage(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// KnowledgeAPI is the knowledge-base call group.
type KnowledgeAPI interface {
	// GetList fetches one page of entries via GET /knowledge. Zero-valued
	// params are omitted so the backend defaults apply.
	GetList(ctx context.Context, params models.KnowledgeListParams) (models.KnowledgeList, error)

	// Get fetches a single entry via GET /knowledge/{id}.
	Get(ctx context.Context, id int64) (models.Knowledge, error)

	// Create adds an entry via POST /knowledge.
	Create(ctx context.Context, item models.KnowledgeCreate) (models.KnowledgeRef, error)

	// Update applies a partial update via PUT /knowledge/{id}.
	Update(ctx context.Context, id int64, update models.KnowledgeUpdate) (models.KnowledgeRef, error)

	// Delete removes an entry via DELETE /knowledge/{id}.
	Delete(ctx context.Context, id int64) (models.KnowledgeRef, error)

	// Search looks entries up by keyword via GET /knowledge/search?q=.
	Search(ctx context.Context, keyword string) (models.KnowledgeList, error)
}
