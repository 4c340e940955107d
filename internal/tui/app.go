package tui

import (
	"time"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel is a TUI router:
// 1) resolves NavigateTo paths through the route table
// 2) handles global keys (f1, f2, f10, ctrl+c)
// 3) renders toasts under the active view
// 4) delegates key messages to the active view and everything else to all
// views, so replies of async commands reach the view that issued them
type RootModel struct {
	routes  *router.Table
	pages   map[router.View]tea.Model
	current router.View
	path    string

	toasts    *notify.Toasts
	now       func() time.Time
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers the pages and opens the view routed at startPath.
// An unknown start path falls back to the root path.
func NewRootModel(routes *router.Table, pages map[router.View]tea.Model, toasts *notify.Toasts, startPath string, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		routes:    routes,
		pages:     pages,
		toasts:    toasts,
		now:       time.Now,
		buildInfo: buildInfo,
	}

	route, err := routes.Resolve(startPath)
	if err != nil {
		route, _ = routes.Resolve(router.PathRoot)
	}
	r.current = route.View
	r.path = route.Path

	return r
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{toastTick()}
	if page := r.page(); page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global hotkeys for every page.
		switch {
		case key.Matches(msg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.chat):
			return r.navigate(router.PathChat)
		case key.Matches(msg, keys.knowledge):
			return r.navigate(router.PathKnowledge)
		case key.Matches(msg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		page := r.page()
		if page == nil {
			return r, nil
		}
		updated, cmd := page.Update(msg)
		r.pages[r.current] = updated
		return r, cmd

	case NavigateTo:
		return r.navigate(msg.Path)

	case toastTickMsg:
		if r.toasts != nil {
			r.toasts.Prune(time.Time(msg))
		}
		return r, toastTick()
	}

	return r, r.broadcast(msg)
}

func (r RootModel) View() string {
	var body string
	switch {
	case r.showBuildInfo:
		body = renderBuildInfoWindow(r.buildInfo)
	case r.page() == nil:
		body = renderPage("qa-console", "", "")
	default:
		body = r.page().View()
	}

	header := r.renderTabs()
	out := lipgloss.JoinVertical(lipgloss.Left, header, "", body)

	if r.toasts != nil {
		if toasts := renderToasts(r.toasts.Active(r.now())); toasts != "" {
			out = lipgloss.JoinVertical(lipgloss.Left, out, "", toasts)
		}
	}

	return appStyle.Render(out)
}

// Path returns the path of the active view.
func (r RootModel) Path() string {
	return r.path
}

func (r RootModel) navigate(path string) (tea.Model, tea.Cmd) {
	route, err := r.routes.Resolve(path)
	if err != nil {
		notify.Error(r.toasts, app.MsgPageNotFound+": "+path)
		return r, nil
	}

	page, ok := r.pages[route.View]
	if !ok {
		notify.Error(r.toasts, app.MsgPageNotFound+": "+path)
		return r, nil
	}

	r.showBuildInfo = false
	if route.View == r.current {
		return r, nil
	}

	r.current = route.View
	r.path = route.Path
	return r, page.Init()
}

func (r RootModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for view, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[view] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, route := range r.routes.Views() {
		style := tabStyle
		if route.View == r.current {
			style = activeTab
		}
		tabs = append(tabs, style.Render(route.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
