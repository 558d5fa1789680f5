package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the app shell and TUI router:
// 1) keeps the current path and the view it resolves to
// 2) handles global keys (quit, about overlay, view switching)
// 3) handles NavigateTo messages
// 4) sends key presses to the active view and every other message to all
// views, so a result arriving after the user switched away is not lost
type RootModel struct {
	pages map[app.Route]tea.Model
	path  string
	route app.Route

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool

	now func() time.Time
}

// NewRootModel registers the two views and opens startPath, resolved
// through the usual fallback.
func NewRootModel(upload, chat tea.Model, startPath string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages: map[app.Route]tea.Model{
			app.RouteUpload: upload,
			app.RouteChat:   chat,
		},
		path:      startPath,
		route:     app.ResolveRoute(startPath),
		buildInfo: buildInfo,
		now:       time.Now,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, route := range []app.Route{app.RouteUpload, app.RouteChat} {
		cmds = append(cmds, r.pages[route].Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.about):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.back):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}

		switch {
		case key.Matches(keyMsg, keys.switchTab):
			return r.navigate(r.route.Other().Path())
		case key.Matches(keyMsg, keys.toUpload):
			return r.navigate(app.PathUpload)
		case key.Matches(keyMsg, keys.toChat):
			return r.navigate(app.PathChat)
		}

		updated, cmd := r.pages[r.route].Update(msg)
		r.pages[r.route] = updated
		return r, cmd
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav.Path)
	}

	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, route := range []app.Route{app.RouteUpload, app.RouteChat} {
		updated, cmd := r.pages[route].Update(msg)
		r.pages[route] = updated
		cmds = append(cmds, cmd)
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) navigate(path string) (tea.Model, tea.Cmd) {
	r.showBuildInfo = false
	r.path = path
	r.route = app.ResolveRoute(path)
	return r, nil
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	b.WriteString(r.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(r.renderHero())
	b.WriteString("\n\n")
	b.WriteString(r.pages[r.route].View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(app.Footer(r.now())))

	return appStyle.Render(b.String())
}

func (r RootModel) renderHeader() string {
	var b strings.Builder
	b.WriteString(brandStyle.Render(app.Brand))
	for _, route := range []app.Route{app.RouteUpload, app.RouteChat} {
		b.WriteString("   ")
		if route == r.route {
			b.WriteString(navActiveStyle.Render(route.String()))
		} else {
			b.WriteString(navStyle.Render(route.String()))
		}
	}
	b.WriteString("   ")
	b.WriteString(buttonStyle.Render(app.LaunchLabel))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render("(" + keys.toChat.Help().Key + ")"))
	return b.String()
}

func (r RootModel) renderHero() string {
	hero := app.HeroFor(r.path)
	return eyebrowStyle.Render(hero.Eyebrow) + "\n" +
		titleStyle.Render(hero.Title) + "\n" +
		hero.Body
}

// Path returns the current path.
func (r RootModel) Path() string {
	return r.path
}

// Route returns the view the current path resolves to.
func (r RootModel) Route() app.Route {
	return r.route
}
