package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/cliphub/cliphub/internal/dto"
	authservice "github.com/cliphub/cliphub/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	t.Cleanup(ctrl.Finish)
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedTok  string
	}{
		{
			name: "successful login",
			body: `{"username":"admin","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "admin", "secret").
					Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedTok:  "token123",
		},
		{
			name: "wrong credentials",
			body: `{"username":"admin","password":"nope"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "admin", "nope").
					Return("", authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoginResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedTok, body.Token)
			}
		})
	}
}
