// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/qa-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewQAValidator(t *testing.T) {
	require.NotNil(t, NewQAValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewQAValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ChatRequest{Message: "hi"}))
	assert.NoError(t, v.Validate(ctx, &models.ChatRequest{Message: "hi"}))
	assert.NoError(t, v.Validate(ctx, models.KnowledgeCreate{Question: "q", Answer: "a"}))
	assert.NoError(t, v.Validate(ctx, &models.KnowledgeUpdate{Status: intPtr(1)}))
	assert.NoError(t, v.Validate(ctx, models.KnowledgeListParams{}))
	assert.NoError(t, v.Validate(ctx, &models.KnowledgeSearch{Keyword: "refund"}))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.ChatRequest{Message: "hi"}, "bogus"), ErrUnknownField)
}

func TestValidate_ChatRequest(t *testing.T) {
	v := NewQAValidator()

	tests := []struct {
		name    string
		message string
		wantErr error
	}{
		{name: "ok", message: "How do I reset my password?"},
		{name: "empty", message: "", wantErr: ErrEmptyMessage},
		{name: "whitespace", message: "  \n\t", wantErr: ErrEmptyMessage},
		{name: "exactly max runes", message: strings.Repeat("问", models.MaxChatMessageLength)},
		{name: "too long", message: strings.Repeat("a", models.MaxChatMessageLength+1), wantErr: ErrMessageTooLong},
		{name: "surrounding spaces not counted", message: "  " + strings.Repeat("a", models.MaxChatMessageLength) + "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.ChatRequest{Message: tt.message})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_KnowledgeCreate(t *testing.T) {
	v := NewQAValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.KnowledgeCreate{Answer: "a"}), ErrEmptyQuestion)
	assert.ErrorIs(t, v.Validate(ctx, models.KnowledgeCreate{Question: "q", Answer: " "}), ErrEmptyAnswer)
	assert.NoError(t, v.Validate(ctx, models.KnowledgeCreate{Answer: "a"}, FieldAnswer))
}

func TestValidate_KnowledgeUpdate(t *testing.T) {
	v := NewQAValidator()

	tests := []struct {
		name    string
		update  models.KnowledgeUpdate
		wantErr error
	}{
		{name: "empty", update: models.KnowledgeUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "question only", update: models.KnowledgeUpdate{Question: strPtr("new")}},
		{name: "blank question", update: models.KnowledgeUpdate{Question: strPtr(" ")}, wantErr: ErrEmptyQuestion},
		{name: "blank answer", update: models.KnowledgeUpdate{Answer: strPtr("")}, wantErr: ErrEmptyAnswer},
		{name: "draft status", update: models.KnowledgeUpdate{Status: intPtr(0)}},
		{name: "bad status", update: models.KnowledgeUpdate{Status: intPtr(2)}, wantErr: ErrInvalidStatus},
		{name: "keywords only", update: models.KnowledgeUpdate{Keywords: &[]string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ListParams(t *testing.T) {
	v := NewQAValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.KnowledgeListParams{Skip: 20, Limit: MaxListLimit}))
	assert.ErrorIs(t, v.Validate(ctx, models.KnowledgeListParams{Skip: -1}), ErrInvalidSkip)
	assert.ErrorIs(t, v.Validate(ctx, models.KnowledgeListParams{Limit: MaxListLimit + 1}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.KnowledgeListParams{Limit: -5}), ErrInvalidLimit)
}

func TestValidate_Search(t *testing.T) {
	v := NewQAValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.KnowledgeSearch{Keyword: "退款"}))
	assert.ErrorIs(t, v.Validate(ctx, models.KnowledgeSearch{Keyword: "   "}), ErrEmptyKeyword)
}
