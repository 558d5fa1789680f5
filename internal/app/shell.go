// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"strings"
	"time"
)

// Route identifies one of the two client views.
type Route int

const (
	// RouteUpload renders the upload form. It is also the fallback route.
	RouteUpload Route = iota
	// RouteChat renders the chat form.
	RouteChat
)

// Canonical paths of the two views.
const (
	PathUpload = "/upload"
	PathChat   = "/chat"
)

// Path returns the canonical path of r.
func (r Route) Path() string {
	if r == RouteChat {
		return PathChat
	}
	return PathUpload
}

// String returns the navigation label of r.
func (r Route) String() string {
	if r == RouteChat {
		return "Chat"
	}
	return "Upload"
}

// Other returns the route that is not r.
func (r Route) Other() Route {
	if r == RouteChat {
		return RouteUpload
	}
	return RouteChat
}

// ResolveRoute maps a path to a view. "/chat" selects the chat view,
// ignoring case and trailing slashes; every other path, including "/" and
// "/chat/history", falls back to the upload view.
func ResolveRoute(path string) Route {
	if strings.EqualFold(strings.TrimRight(path, "/"), PathChat) {
		return RouteChat
	}
	return RouteUpload
}

// Hero is the headline block rendered above the routed view.
type Hero struct {
	Eyebrow string
	Title   string
	Body    string
}

const heroEyebrow = "AI Knowledge Infrastructure"

var (
	chatHero = Hero{
		Eyebrow: heroEyebrow,
		Title:   "Knowledge copilots engineered for clarity",
		Body:    "Every chat turns your scattered files into reliable answers with citations and tone you control.",
	}
	uploadHero = Hero{
		Eyebrow: heroEyebrow,
		Title:   "Centralize documents. Answer anything.",
		Body:    "Upload contracts, financials, research, or playbooks. Cheddup makes them searchable with instant chat.",
	}
)

// HeroFor picks hero copy by substring: any path containing "chat" gets the
// chat copy, even when the routed view is the upload fallback.
func HeroFor(path string) Hero {
	if strings.Contains(path, "chat") {
		return chatHero
	}
	return uploadHero
}

// Card is the heading block of a view.
type Card struct {
	Badge string
	Title string
	Body  string
}

// CardFor returns the heading block of r.
func CardFor(r Route) Card {
	if r == RouteChat {
		return Card{
			Badge: "AI Workspace",
			Title: "Chat with your knowledge",
			Body:  "Ask natural language questions. The assistant cites the documents you uploaded.",
		}
	}
	return Card{
		Badge: "Knowledge Intake",
		Title: "Upload Files",
		Body:  "Feed PDFs, docs, or spreadsheets. We will embed and index them for lightning fast answers.",
	}
}

// Brand is the logo text shown in the header.
const Brand = "cheddup"

// LaunchLabel is the header call to action that opens the chat view.
const LaunchLabel = "Launch workspace"

// Footer returns the footer line for the year of now.
func Footer(now time.Time) string {
	return fmt.Sprintf("© %d %s. Knowledge infrastructure for lean teams.", now.Year(), Brand)
}
