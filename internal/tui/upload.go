// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/service"
	"github.com/MKhiriev/cheddup/models"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// UploadModel is the upload view. The user browses with a file picker,
// selects one file and submits it with ctrl+s. While the upload is in
// flight further submits are ignored.
type UploadModel struct {
	ctx    context.Context
	upload service.UploadService

	picker     filepicker.Model
	spinner    spinner.Model
	selected   string
	size       string
	submitting bool
	status     string
	success    bool
	chunks     int
}

// NewUploadModel creates an [UploadModel] browsing dir. An empty dir means
// the working directory.
func NewUploadModel(ctx context.Context, upload service.UploadService, dir string) *UploadModel {
	picker := filepicker.New()
	picker.CurrentDirectory = dir
	if picker.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			picker.CurrentDirectory = wd
		}
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &UploadModel{
		ctx:     ctx,
		upload:  upload,
		picker:  picker,
		spinner: s,
	}
}

// Init implements [tea.Model]. Reads the starting directory.
func (m *UploadModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements [tea.Model]. Handled messages:
//   - [uploadDoneMsg]  clears the loading state and shows the result.
//   - ctrl+s           submits the selected file.
//
// Everything else goes to the file picker and the spinner.
func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		m.submitting = false
		m.status = msg.result.Message
		m.success = msg.result.Success
		m.chunks = msg.result.ChunksAdded
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.upload) {
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selectFile(path)
	}
	return m, cmd
}

func (m *UploadModel) selectFile(path string) {
	m.selected = path
	m.size = ""
	if info, err := os.Stat(path); err == nil {
		m.size = humanize.Bytes(uint64(info.Size()))
	}
}

func (m *UploadModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	if m.selected == "" {
		m.status = app.MsgSelectFile
		m.success = false
		m.chunks = 0
		return nil
	}

	m.submitting = true
	m.status = ""
	m.chunks = 0
	return tea.Batch(m.spinner.Tick, m.cmdUpload(m.selected))
}

func (m *UploadModel) cmdUpload(path string) tea.Cmd {
	ctx := m.ctx
	upload := m.upload

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return uploadDoneMsg{result: models.UploadResult{
				Message: fmt.Sprintf("%s %v", app.MsgUploadFailed, err),
			}}
		}

		return uploadDoneMsg{result: upload.Upload(ctx, &models.UploadFile{
			Name: filepath.Base(path),
			Data: data,
		})}
	}
}

// View implements [tea.Model].
func (m *UploadModel) View() string {
	var b strings.Builder
	card := app.CardFor(app.RouteUpload)

	b.WriteString(card.Body)
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")

	if m.selected != "" {
		b.WriteString(filepath.Base(m.selected))
		if m.size != "" {
			b.WriteString(" (" + m.size + ")")
		}
	} else {
		b.WriteString(app.PickerPlaceholder)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(app.PickerHint))
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(renderButton(app.LabelUploading, true))
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	} else {
		b.WriteString(renderButton(app.LabelUpload, false))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(renderStatus(m.status, m.success))
		b.WriteString("\n")
		if m.success && m.chunks > 0 {
			b.WriteString(fmt.Sprintf(app.MsgIndexedChunks, m.chunks))
			b.WriteString("\n")
		}
	}

	return renderPage(cardTitle(card), strings.TrimRight(b.String(), "\n"), hotKeys(keys.upload))
}
