package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qa-console/internal/adapter"
	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/validators"
	"github.com/MKhiriev/qa-console/models"
)

type clientKnowledgeService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	notifier      notify.Notifier
	logger        *logger.Logger
}

func NewClientKnowledgeService(serverAdapter adapter.ServerAdapter, notifier notify.Notifier, logger *logger.Logger) ClientKnowledgeService {
	return &clientKnowledgeService{
		serverAdapter: serverAdapter,
		validator:     validators.NewQAValidator(),
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *clientKnowledgeService) List(ctx context.Context, params models.KnowledgeListParams) (models.KnowledgeList, error) {
	if err := s.validate(ctx, params); err != nil {
		return models.KnowledgeList{}, err
	}

	list, err := s.serverAdapter.Knowledge().GetList(ctx, params)
	if err != nil {
		return models.KnowledgeList{}, mapAdapterError(err)
	}

	return list, nil
}

func (s *clientKnowledgeService) Get(ctx context.Context, id int64) (models.Knowledge, error) {
	item, err := s.serverAdapter.Knowledge().Get(ctx, id)
	if err != nil {
		return models.Knowledge{}, mapAdapterError(err)
	}

	return item, nil
}

func (s *clientKnowledgeService) Create(ctx context.Context, item models.KnowledgeCreate) (models.KnowledgeRef, error) {
	if err := s.validate(ctx, item); err != nil {
		return models.KnowledgeRef{}, err
	}

	ref, err := s.serverAdapter.Knowledge().Create(ctx, item)
	if err != nil {
		return models.KnowledgeRef{}, mapAdapterError(err)
	}

	s.logger.Debug().Int64("knowledge_id", ref.ID).Msg("knowledge entry created")
	notify.Success(s.notifier, app.MsgKnowledgeCreated)
	return ref, nil
}

func (s *clientKnowledgeService) Update(ctx context.Context, id int64, update models.KnowledgeUpdate) (models.KnowledgeRef, error) {
	if err := s.validate(ctx, update); err != nil {
		return models.KnowledgeRef{}, err
	}

	ref, err := s.serverAdapter.Knowledge().Update(ctx, id, update)
	if err != nil {
		return models.KnowledgeRef{}, mapAdapterError(err)
	}

	s.logger.Debug().Int64("knowledge_id", id).Msg("knowledge entry updated")
	notify.Success(s.notifier, app.MsgKnowledgeUpdated)
	return ref, nil
}

func (s *clientKnowledgeService) Delete(ctx context.Context, id int64) (models.KnowledgeRef, error) {
	ref, err := s.serverAdapter.Knowledge().Delete(ctx, id)
	if err != nil {
		return models.KnowledgeRef{}, mapAdapterError(err)
	}

	s.logger.Debug().Int64("knowledge_id", id).Msg("knowledge entry deleted")
	notify.Success(s.notifier, app.MsgKnowledgeDeleted)
	return ref, nil
}

func (s *clientKnowledgeService) Search(ctx context.Context, keyword string) (models.KnowledgeList, error) {
	if err := s.validate(ctx, models.KnowledgeSearch{Keyword: keyword}); err != nil {
		return models.KnowledgeList{}, err
	}

	list, err := s.serverAdapter.Knowledge().Search(ctx, keyword)
	if err != nil {
		return models.KnowledgeList{}, mapAdapterError(err)
	}

	return list, nil
}

// validate runs the validator and surfaces a failure as a warning toast.
func (s *clientKnowledgeService) validate(ctx context.Context, obj any) error {
	if err := s.validator.Validate(ctx, obj); err != nil {
		notify.Warning(s.notifier, err.Error())
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
