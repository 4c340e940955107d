// Package tui is the terminal console: a bubbletea program whose root model
// resolves paths through the shared route table and renders the chat and
// knowledge-base views.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/internal/service"
	"github.com/MKhiriev/qa-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	toasts    *notify.Toasts
	notifier  notify.Notifier
	routes    *router.Table
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the terminal console. Toasts receive every notification the
// views should show; notifier is used by the views for their own messages.
func New(
	services *service.ClientServices,
	toasts *notify.Toasts,
	notifier notify.Notifier,
	routes *router.Table,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || services.ChatService == nil || services.KnowledgeService == nil {
		return nil, errors.New("tui: services are not configured")
	}
	if toasts == nil {
		return nil, errors.New("tui: toasts are not configured")
	}
	if routes == nil {
		routes = router.Default()
	}
	if notifier == nil {
		notifier = toasts
	}

	return &TUI{
		services:  services,
		toasts:    toasts,
		notifier:  notifier,
		routes:    routes,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Model builds the root model opened at startPath.
func (t *TUI) Model(ctx context.Context, startPath string) RootModel {
	pages := map[router.View]tea.Model{
		router.ViewChat:      newChatModel(ctx, t.services.ChatService, t.notifier),
		router.ViewKnowledge: newKnowledgeModel(ctx, t.services.KnowledgeService),
	}
	return NewRootModel(t.routes, pages, t.toasts, startPath, t.buildInfo)
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, startPath string) error {
	root := t.Model(ctx, startPath)
	t.logger.Info().Str("path", root.Path()).Msg("starting terminal console")

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("terminal console closed by user")
	}

	return nil
}
