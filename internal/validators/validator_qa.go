package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/qa-console/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldMessage  = "message"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
	FieldStatus   = "status"
	FieldKeyword  = "keyword"
	FieldSkip     = "skip"
	FieldLimit    = "limit"
	// FieldAnyField requires at least one field of a partial update.
	FieldAnyField = "any_field"
)

// MaxListLimit is the largest page size the backend accepts.
const MaxListLimit = 100

type QAValidator struct {
}

func NewQAValidator() Validator {
	return &QAValidator{}
}

func (v *QAValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(ctx, *value, fields...)

	case models.KnowledgeCreate:
		return v.validateKnowledgeCreate(ctx, value, fields...)
	case *models.KnowledgeCreate:
		return v.validateKnowledgeCreate(ctx, *value, fields...)

	case models.KnowledgeUpdate:
		return v.validateKnowledgeUpdate(ctx, value, fields...)
	case *models.KnowledgeUpdate:
		return v.validateKnowledgeUpdate(ctx, *value, fields...)

	case models.KnowledgeListParams:
		return v.validateListParams(ctx, value, fields...)
	case *models.KnowledgeListParams:
		return v.validateListParams(ctx, *value, fields...)

	case models.KnowledgeSearch:
		return v.validateSearch(ctx, value, fields...)
	case *models.KnowledgeSearch:
		return v.validateSearch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *QAValidator) validateChatRequest(ctx context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			message := strings.TrimSpace(req.Message)
			if message == "" {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(message) > models.MaxChatMessageLength {
				return ErrMessageTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QAValidator) validateKnowledgeCreate(ctx context.Context, req models.KnowledgeCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion, FieldAnswer}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			if isBlank(req.Question) {
				return ErrEmptyQuestion
			}
		case FieldAnswer:
			if isBlank(req.Answer) {
				return ErrEmptyAnswer
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QAValidator) validateKnowledgeUpdate(ctx context.Context, req models.KnowledgeUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyField, FieldQuestion, FieldAnswer, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyField:
			if req.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldQuestion:
			if req.Question != nil && isBlank(*req.Question) {
				return ErrEmptyQuestion
			}
		case FieldAnswer:
			if req.Answer != nil && isBlank(*req.Answer) {
				return ErrEmptyAnswer
			}
		case FieldStatus:
			if req.Status != nil && !isValidStatus(*req.Status) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QAValidator) validateListParams(ctx context.Context, params models.KnowledgeListParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSkip:
			if params.Skip < 0 {
				return ErrInvalidSkip
			}
		case FieldLimit:
			if params.Limit < 0 || params.Limit > MaxListLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QAValidator) validateSearch(ctx context.Context, search models.KnowledgeSearch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyword}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyword:
			if isBlank(search.Keyword) {
				return ErrEmptyKeyword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidStatus(status int) bool {
	return status == models.KnowledgeStatusDraft || status == models.KnowledgeStatusPublished
}
