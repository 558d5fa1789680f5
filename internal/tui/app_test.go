package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/mock"
	"github.com/MKhiriev/cheddup/internal/service"
	"github.com/MKhiriev/cheddup/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T, startPath string) (RootModel, *UploadModel, *ChatModel) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	upload := NewUploadModel(context.Background(), mock.NewMockUploadService(ctrl), t.TempDir())
	chat := NewChatModel(context.Background(), mock.NewMockChatService(ctrl))
	root := NewRootModel(upload, chat, startPath, models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"))
	root.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }

	return root, upload, chat
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_StartPathRouting(t *testing.T) {
	tests := []struct {
		path      string
		wantRoute app.Route
		wantHero  string
	}{
		{app.PathUpload, app.RouteUpload, "Centralize documents. Answer anything."},
		{app.PathChat, app.RouteChat, "Knowledge copilots engineered for clarity"},
		{"/", app.RouteUpload, "Centralize documents. Answer anything."},
		{"/settings", app.RouteUpload, "Centralize documents. Answer anything."},
		{"/chat/history", app.RouteUpload, "Knowledge copilots engineered for clarity"},
		{"/chat/", app.RouteChat, "Knowledge copilots engineered for clarity"},
		{"/Chat", app.RouteChat, "Centralize documents. Answer anything."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			root, _, _ := newTestRoot(t, tt.path)

			assert.Equal(t, tt.wantRoute, root.Route())
			view := root.View()
			assert.Contains(t, view, tt.wantHero)
			assert.Contains(t, view, app.CardFor(tt.wantRoute).Title)
			assert.Contains(t, view, "© 2026 cheddup. Knowledge infrastructure for lean teams.")
			assert.Contains(t, view, app.LaunchLabel)
		})
	}
}

func TestRootModel_Navigation(t *testing.T) {
	root, _, _ := newTestRoot(t, app.PathUpload)

	root, _ = update(t, root, keyPress(tea.KeyTab))
	assert.Equal(t, app.RouteChat, root.Route())
	assert.Equal(t, app.PathChat, root.Path())

	root, _ = update(t, root, keyPress(tea.KeyTab))
	assert.Equal(t, app.RouteUpload, root.Route())

	root, _ = update(t, root, keyPress(tea.KeyCtrlT))
	assert.Equal(t, app.RouteChat, root.Route())

	root, _ = update(t, root, keyPress(tea.KeyCtrlU))
	assert.Equal(t, app.RouteUpload, root.Route())

	root, _ = update(t, root, NavigateTo{Path: "/nowhere"})
	assert.Equal(t, app.RouteUpload, root.Route())
	assert.Equal(t, "/nowhere", root.Path())
}

func TestRootModel_AboutOverlay(t *testing.T) {
	root, _, _ := newTestRoot(t, app.PathChat)

	root, _ = update(t, root, keyPress(tea.KeyF1))
	view := root.View()
	assert.Contains(t, view, "Version: v1.2.3")
	assert.Contains(t, view, "Commit: abc123")

	// keys are swallowed while the overlay is open
	root, _ = update(t, root, keyPress(tea.KeyTab))
	assert.Equal(t, app.RouteChat, root.Route())

	root, _ = update(t, root, keyPress(tea.KeyEsc))
	assert.NotContains(t, root.View(), "Version: v1.2.3")
}

func TestRootModel_Quit(t *testing.T) {
	root, _, _ := newTestRoot(t, app.PathUpload)

	root, cmd := update(t, root, keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, root.quitByUser)
}

func TestRootModel_ResultReachesInactiveView(t *testing.T) {
	root, upload, chat := newTestRoot(t, app.PathUpload)
	upload.submitting = true

	root, _ = update(t, root, keyPress(tea.KeyCtrlT))
	root, _ = update(t, root, uploadDoneMsg{result: models.UploadResult{Success: true, Message: app.MsgUploadSuccessful}})

	assert.False(t, upload.submitting)
	assert.Equal(t, app.MsgUploadSuccessful, upload.status)
	assert.Empty(t, chat.answer)

	root, _ = update(t, root, keyPress(tea.KeyCtrlU))
	assert.Contains(t, root.View(), app.MsgUploadSuccessful)
}

func TestRootModel_KeysGoToActiveViewOnly(t *testing.T) {
	root, _, chat := newTestRoot(t, app.PathChat)

	_, _ = update(t, root, typeText("q"))
	assert.Equal(t, "q", chat.input.Value())
}

func TestNew(t *testing.T) {
	_, err := New(nil, models.NewAppBuildInfo("", "", ""), app.PathUpload, logger.Nop())
	assert.ErrorIs(t, err, errNilServices)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.ClientServices{
		UploadService: mock.NewMockUploadService(ctrl),
		ChatService:   mock.NewMockChatService(ctrl),
	}
	ui, err := New(services, models.NewAppBuildInfo("", "", ""), app.PathChat, logger.Nop())
	require.NoError(t, err)

	root := ui.NewRootModel(context.Background())
	assert.Equal(t, app.RouteChat, root.Route())
	assert.NotNil(t, root.Init())
}
