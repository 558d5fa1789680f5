package http

import (
	"github.com/MKhiriev/cheddup/internal/app"
)

type navLink struct {
	Label  string
	Path   string
	Active bool
}

type pageData struct {
	Brand       string
	LaunchLabel string
	LaunchPath  string
	Path        string
	Nav         []navLink
	Hero        app.Hero
	Card        app.Card
	Footer      string

	Upload *uploadForm
	Chat   *chatForm
}

type uploadForm struct {
	Action      string
	Label       string
	BusyLabel   string
	Placeholder string
	Hint        string

	Status     string
	Success    bool
	ChunksLine string
	FileLine   string
}

type chatForm struct {
	Action      string
	Label       string
	BusyLabel   string
	Placeholder string

	Question string
	Answer   string
	Success  bool
	Sources  []string
}

// newPage builds the shell for path: the view comes from the route table
// with its fallback, the hero from the path itself.
func (h *Handler) newPage(path string) pageData {
	route := app.ResolveRoute(path)

	nav := make([]navLink, 0, 2)
	for _, r := range []app.Route{app.RouteUpload, app.RouteChat} {
		nav = append(nav, navLink{Label: r.String(), Path: r.Path(), Active: r == route})
	}

	data := pageData{
		Brand:       app.Brand,
		LaunchLabel: app.LaunchLabel,
		LaunchPath:  app.PathChat,
		Path:        path,
		Nav:         nav,
		Hero:        app.HeroFor(path),
		Card:        app.CardFor(route),
		Footer:      app.Footer(h.now()),
	}

	if route == app.RouteChat {
		data.Chat = &chatForm{
			Action:      app.PathChat,
			Label:       app.LabelSend,
			BusyLabel:   app.LabelSending,
			Placeholder: app.ChatPlaceholder,
		}
	} else {
		data.Upload = &uploadForm{
			// the form always posts to the upload endpoint, even from a
			// fallback path
			Action:      app.PathUpload,
			Label:       app.LabelUpload,
			BusyLabel:   app.LabelUploading,
			Placeholder: app.PickerPlaceholder,
			Hint:        app.PickerHint,
		}
	}

	return data
}
