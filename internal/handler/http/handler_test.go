package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/mock"
	"github.com/MKhiriev/cheddup/internal/service"
	"github.com/MKhiriev/cheddup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	uploadHeroTitle = "Centralize documents. Answer anything."
	chatHeroTitle   = "Knowledge copilots engineered for clarity"
)

func newTestWebHandler(t *testing.T) (*Handler, *mock.MockUploadService, *mock.MockChatService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	upload := mock.NewMockUploadService(ctrl)
	chat := mock.NewMockChatService(ctrl)

	h, err := NewHandler(&service.ClientServices{UploadService: upload, ChatService: chat}, logger.Nop())
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	return h, upload, chat
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func multipartRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, app.PathUpload, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func chatRequest(question string) *http.Request {
	form := url.Values{"question": {question}}
	req := httptest.NewRequest(http.MethodPost, app.PathChat, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestNewHandler_NilServices(t *testing.T) {
	_, err := NewHandler(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilServices)
}

// ---- Routing ----

func TestPages_Routing(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantCard  string
		wantHero  string
		wantInput string
	}{
		{"upload", "/upload", "Upload Files", uploadHeroTitle, `name="file"`},
		{"chat", "/chat", "Chat with your knowledge", chatHeroTitle, `name="question"`},
		{"chat with trailing slash", "/chat/", "Chat with your knowledge", chatHeroTitle, `name="question"`},
		{"chat in upper case keeps upload hero", "/CHAT", "Chat with your knowledge", uploadHeroTitle, `name="question"`},
		{"root falls back to upload", "/", "Upload Files", uploadHeroTitle, `name="file"`},
		{"unknown path falls back to upload", "/settings/team", "Upload Files", uploadHeroTitle, `name="file"`},
		{"chat-like path keeps upload view with chat hero", "/chat/archive", "Upload Files", chatHeroTitle, `name="file"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestWebHandler(t)

			rr := serve(h, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			body := rr.Body.String()
			assert.Contains(t, body, tt.wantCard)
			assert.Contains(t, body, tt.wantHero)
			assert.Contains(t, body, tt.wantInput)
			assert.Contains(t, body, "© 2026 cheddup. Knowledge infrastructure for lean teams.")
			assert.Contains(t, body, app.LaunchLabel)
		})
	}
}

func TestPages_UploadFormCopy(t *testing.T) {
	h, _, _ := newTestWebHandler(t)

	body := serve(h, httptest.NewRequest(http.MethodGet, "/anything", nil)).Body.String()

	assert.Contains(t, body, `action="/upload"`)
	assert.Contains(t, body, "Upload &amp; index")
	assert.Contains(t, body, `data-busy-label="Uploading..."`)
	assert.Contains(t, body, app.PickerPlaceholder)
	assert.Contains(t, body, app.PickerHint)
}

func TestPages_UnsupportedMethod(t *testing.T) {
	h, _, _ := newTestWebHandler(t)

	rr := serve(h, httptest.NewRequest(http.MethodDelete, app.PathChat, nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, POST", rr.Header().Get("Allow"))
}

func TestPages_TraceIDHeader(t *testing.T) {
	h, _, _ := newTestWebHandler(t)

	req := httptest.NewRequest(http.MethodGet, app.PathUpload, nil)
	req.Header.Set(traceIDHeader, "trace-123")

	assert.Equal(t, "trace-123", serve(h, req).Header().Get(traceIDHeader))
}

// ---- Upload ----

func TestUploadFile_Success(t *testing.T) {
	h, upload, _ := newTestWebHandler(t)
	upload.EXPECT().
		Upload(gomock.Any(), &models.UploadFile{Name: "a.txt", Data: []byte("hello")}).
		Return(models.UploadResult{Success: true, Message: app.MsgUploadSuccessful, ChunksAdded: 4})

	rr := serve(h, multipartRequest(t, "a.txt", []byte("hello")))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, app.MsgUploadSuccessful)
	assert.Contains(t, body, "Indexed 4 chunks.")
	assert.Contains(t, body, "a.txt · 5 B")
	assert.Contains(t, body, `class="status ok"`)
}

func TestUploadFile_NoFile(t *testing.T) {
	h, upload, _ := newTestWebHandler(t)
	upload.EXPECT().Upload(gomock.Any(), gomock.Nil()).Return(models.UploadResult{Message: app.MsgSelectFile})

	rr := serve(h, multipartRequest(t, "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgSelectFile)
}

func TestUploadFile_Failure(t *testing.T) {
	h, upload, _ := newTestWebHandler(t)
	upload.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.UploadResult{Message: "Upload failed: 500", ChunksAdded: 9})

	rr := serve(h, multipartRequest(t, "a.txt", []byte("x")))

	body := rr.Body.String()
	assert.Contains(t, body, "Upload failed: 500")
	assert.Contains(t, body, `class="status fail"`)
	assert.NotContains(t, body, "Indexed")
}

func TestUploadFile_BrokenMultipart(t *testing.T) {
	h, _, _ := newTestWebHandler(t)

	req := httptest.NewRequest(http.MethodPost, app.PathUpload, strings.NewReader("file=x"))
	req.Header.Set("Content-Type", "multipart/form-data")

	rr := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgUploadFailed)
}

// ---- Chat ----

func TestAskQuestion_Answer(t *testing.T) {
	h, _, chat := newTestWebHandler(t)
	chat.EXPECT().Ask(gomock.Any(), " hi ").Return(models.ChatResult{
		Success: true,
		Answer:  "42",
		Sources: []string{"guide.pdf", "faq.md"},
	})

	rr := serve(h, chatRequest(" hi "))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `<p class="answer ">42</p>`)
	assert.Contains(t, body, "<li>guide.pdf</li>")
	assert.Contains(t, body, "<li>faq.md</li>")
	assert.Contains(t, body, `value=" hi "`)
	assert.Contains(t, body, chatHeroTitle)
}

func TestAskQuestion_BlankAndFailure(t *testing.T) {
	tests := []struct {
		question string
		result   models.ChatResult
	}{
		{"", models.ChatResult{Answer: app.MsgEnterQuestion}},
		{"why?", models.ChatResult{Answer: "Chat failed: 502"}},
	}

	for _, tt := range tests {
		t.Run(tt.result.Answer, func(t *testing.T) {
			h, _, chat := newTestWebHandler(t)
			chat.EXPECT().Ask(gomock.Any(), tt.question).Return(tt.result)

			body := serve(h, chatRequest(tt.question)).Body.String()

			assert.Contains(t, body, tt.result.Answer)
			assert.Contains(t, body, "status fail")
			assert.NotContains(t, body, "Sources:")
		})
	}
}

func TestAskQuestion_EscapesAnswer(t *testing.T) {
	h, _, chat := newTestWebHandler(t)
	chat.EXPECT().Ask(gomock.Any(), "q").Return(models.ChatResult{Success: true, Answer: "<script>alert(1)</script>"})

	body := serve(h, chatRequest("q")).Body.String()

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
