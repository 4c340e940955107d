package service

import (
	"github.com/MKhiriev/qa-console/internal/adapter"
	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/store"
)

type ClientServices struct {
	ChatService      ClientChatService
	KnowledgeService ClientKnowledgeService
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	notifier notify.Notifier,
	cfg config.ClientApp,
	logger *logger.Logger,
) *ClientServices {
	history := store.NewNoopConversationRepository()
	if storages != nil && storages.ConversationRepository != nil {
		history = storages.ConversationRepository
	}

	return &ClientServices{
		ChatService:      NewClientChatService(history, serverAdapter, notifier, cfg.UserID, logger),
		KnowledgeService: NewClientKnowledgeService(serverAdapter, notifier, logger),
	}
}
