package tui

import (
	"time"

	"github.com/MKhiriev/qa-console/models"
)

// NavigateTo asks the root model to show the view routed at Path.
type NavigateTo struct {
	Path string
}

// toastTickMsg expires old toasts.
type toastTickMsg time.Time

type chatAnsweredMsg struct {
	question string
	turn     models.ChatTurn
	response models.ChatResponse
	err      error
}

type historyLoadedMsg struct {
	sessionID string
	turns     []models.ChatTurn
	err       error
}

type copiedMsg struct {
	err error
}

type knowledgeLoadedMsg struct {
	list    models.KnowledgeList
	keyword string
	err     error
}

type knowledgeSavedMsg struct {
	err error
}

type knowledgeDeletedMsg struct {
	err error
}
