package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/cheddup/internal/adapter"
	"github.com/MKhiriev/cheddup/internal/app"
	"github.com/MKhiriev/cheddup/internal/logger"
	"github.com/MKhiriev/cheddup/internal/mock"
	"github.com/MKhiriev/cheddup/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (ChatService, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	return NewChatService(mockAdapter, logger.Nop()), mockAdapter
}

func strPtr(s string) *string { return &s }

func TestChatService_BlankQuestion(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n  "} {
		ctrl := gomock.NewController(t)
		svc, _ := newTestChatSvc(t, ctrl)

		result := svc.Ask(context.Background(), q)

		assert.False(t, result.Success)
		assert.Equal(t, app.MsgEnterQuestion, result.Answer)
		ctrl.Finish()
	}
}

func TestChatService_SendsQuestionUntrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	mockAdapter.EXPECT().
		Chat(gomock.Any(), models.ChatRequest{Question: "  what is 6*7?  "}).
		Return(models.ChatResponse{Answer: strPtr("42")}, nil)

	result := svc.Ask(context.Background(), "  what is 6*7?  ")

	assert.True(t, result.Success)
	assert.Equal(t, "42", result.Answer)
	assert.Empty(t, result.Sources)
}

func TestChatService_Answers(t *testing.T) {
	tests := []struct {
		name        string
		resp        models.ChatResponse
		wantAnswer  string
		wantSources []string
	}{
		{
			name:       "no answer field",
			resp:       models.ChatResponse{},
			wantAnswer: app.MsgNoResponse,
		},
		{
			name:       "empty answer",
			resp:       models.ChatResponse{Answer: strPtr("")},
			wantAnswer: app.MsgNoResponse,
		},
		{
			name: "answer with sources",
			resp: models.ChatResponse{
				Answer: strPtr("Revenue grew 12%."),
				Documents: []models.ChatDocument{
					{ID: "1", Filename: "q3.pdf"},
					{ID: "2", Filename: "q3.pdf"},
					{ID: "3", Filename: "board.docx"},
				},
			},
			wantAnswer:  "Revenue grew 12%.",
			wantSources: []string{"q3.pdf", "board.docx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := newTestChatSvc(t, ctrl)
			mockAdapter.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(tt.resp, nil)

			result := svc.Ask(context.Background(), "q")

			assert.True(t, result.Success)
			assert.Equal(t, tt.wantAnswer, result.Answer)
			assert.Equal(t, tt.wantSources, result.Sources)
		})
	}
}

func TestChatService_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bad gateway", &adapter.StatusError{StatusCode: http.StatusBadGateway}, "Chat failed: 502"},
		{"timeout", errors.New("chat: context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), app.MsgServerUnavailable},
		{"decode", errors.New("decode chat response: invalid character '<'"), "decode chat response: invalid character '<'"},
		{"blank", errors.New(""), app.MsgChatFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := newTestChatSvc(t, ctrl)
			mockAdapter.EXPECT().Chat(gomock.Any(), gomock.Any()).Return(models.ChatResponse{}, tt.err)

			result := svc.Ask(context.Background(), "q")

			assert.False(t, result.Success)
			assert.Equal(t, tt.want, result.Answer)
			assert.Nil(t, result.Sources)
		})
	}
}

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, err := NewClientServices(mock.NewMockBackendAdapter(ctrl), logger.Nop())
	assert.NoError(t, err)
	assert.NotNil(t, services.UploadService)
	assert.NotNil(t, services.ChatService)

	_, err = NewClientServices(nil, logger.Nop())
	assert.ErrorIs(t, err, errNilAdapter)
}
