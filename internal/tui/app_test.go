package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initMsg struct{ name string }

// stubPage records the messages it receives.
type stubPage struct {
	name     string
	received *[]tea.Msg
}

func (p stubPage) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{name: p.name} }
}

func (p stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	*p.received = append(*p.received, msg)
	return p, nil
}

func (p stubPage) View() string {
	return "page " + p.name
}

func newTestRoot(t *testing.T, startPath string) (RootModel, *[]tea.Msg, *[]tea.Msg, *notify.Toasts) {
	t.Helper()

	chatMsgs := &[]tea.Msg{}
	knowledgeMsgs := &[]tea.Msg{}
	pages := map[router.View]tea.Model{
		router.ViewChat:      stubPage{name: "chat", received: chatMsgs},
		router.ViewKnowledge: stubPage{name: "knowledge", received: knowledgeMsgs},
	}
	toasts := notify.NewToasts(3*time.Second, notify.DefaultCapacity)

	return NewRootModel(router.Default(), pages, toasts, startPath, models.AppBuildInfo{}), chatMsgs, knowledgeMsgs, toasts
}

func TestRootModel_RootPathOpensChat(t *testing.T) {
	r, _, _, _ := newTestRoot(t, "/")
	assert.Equal(t, router.PathChat, r.Path())
	assert.Contains(t, r.View(), "page chat")
}

func TestRootModel_UnknownStartPathFallsBack(t *testing.T) {
	r, _, _, _ := newTestRoot(t, "/settings")
	assert.Equal(t, router.PathChat, r.Path())
}

func TestRootModel_NavigateTo(t *testing.T) {
	r, _, _, _ := newTestRoot(t, "/chat")

	updated, cmd := r.Update(NavigateTo{Path: "/knowledge/"})
	r = updated.(RootModel)

	assert.Equal(t, router.PathKnowledge, r.Path())
	require.NotNil(t, cmd)
	assert.Equal(t, initMsg{name: "knowledge"}, cmd())
	assert.Contains(t, r.View(), "page knowledge")
}

func TestRootModel_NavigateToSameViewDoesNotReinit(t *testing.T) {
	r, _, _, _ := newTestRoot(t, "/chat")

	updated, cmd := r.Update(NavigateTo{Path: "/"})
	assert.Nil(t, cmd)
	assert.Equal(t, router.PathChat, updated.(RootModel).Path())
}

func TestRootModel_NavigateToUnknownPath(t *testing.T) {
	r, _, _, toasts := newTestRoot(t, "/chat")

	updated, cmd := r.Update(NavigateTo{Path: "/missing"})
	assert.Nil(t, cmd)
	assert.Equal(t, router.PathChat, updated.(RootModel).Path())

	active := toasts.Active(time.Now())
	require.Len(t, active, 1)
	assert.Equal(t, notify.LevelError, active[0].Level)
	assert.Contains(t, active[0].Message, "/missing")
}

func TestRootModel_FunctionKeys(t *testing.T) {
	r, _, _, _ := newTestRoot(t, "/chat")

	updated, _ := r.Update(tea.KeyMsg{Type: tea.KeyF2})
	r = updated.(RootModel)
	assert.Equal(t, router.PathKnowledge, r.Path())

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyF1})
	r = updated.(RootModel)
	assert.Equal(t, router.PathChat, r.Path())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r, _, _, _ := newTestRoot(t, "/chat")

	updated, cmd := r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_KeysGoToActivePageOnly(t *testing.T) {
	r, chatMsgs, knowledgeMsgs, _ := newTestRoot(t, "/chat")

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	r.Update(key)

	assert.Equal(t, []tea.Msg{key}, *chatMsgs)
	assert.Empty(t, *knowledgeMsgs)
}

func TestRootModel_OtherMessagesAreBroadcast(t *testing.T) {
	r, chatMsgs, knowledgeMsgs, _ := newTestRoot(t, "/chat")

	msg := knowledgeDeletedMsg{}
	r.Update(msg)

	assert.Equal(t, []tea.Msg{msg}, *chatMsgs)
	assert.Equal(t, []tea.Msg{msg}, *knowledgeMsgs)
}

func TestRootModel_ToastTickPrunes(t *testing.T) {
	r, _, _, toasts := newTestRoot(t, "/chat")

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	toasts.Notify(notify.Notification{Level: notify.LevelError, Message: "boom", CreatedAt: created})
	r.now = func() time.Time { return created.Add(time.Second) }
	assert.Contains(t, r.View(), "boom")

	_, cmd := r.Update(toastTickMsg(created.Add(10 * time.Second)))
	assert.NotNil(t, cmd)
	assert.Zero(t, toasts.Len())
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	r, chatMsgs, _, _ := newTestRoot(t, "/chat")

	updated, _ := r.Update(tea.KeyMsg{Type: tea.KeyF10})
	r = updated.(RootModel)
	assert.Contains(t, r.View(), "ABOUT")

	// keys do not reach the page while the window is open
	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	r = updated.(RootModel)
	assert.Empty(t, *chatMsgs)

	updated, _ = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, updated.(RootModel).View(), "ABOUT")
}
