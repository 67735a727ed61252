package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/service/authservice"
	"github.com/avoronin/gameshop/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"name":"Андрей","email":"andrey@example.com"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Андрей", "andrey@example.com").Return(&domain.User{
					ID:    1,
					Name:  "Андрей",
					Email: "andrey@example.com",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Empty identity",
			body: `{"name":"","email":""}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "", "").Return(nil, authservice.ErrEmptyIdentity)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrEmptyIdentity.Error(),
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"name":"Андрей","email":"andrey@example.com"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Андрей", "andrey@example.com").Return(&domain.User{
					ID:    1,
					Name:  "Андрей",
					Email: "andrey@example.com",
				}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"name":"Андрей","email":"andrey@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SignIn(context.Background(), "Андрей", "andrey@example.com").Return(&domain.User{
					ID:    1,
					Name:  "Андрей",
					Email: "andrey@example.com",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Empty identity",
			body: `{"name":"  ","email":""}`,
			prepareMock: func() {
				service.EXPECT().SignIn(context.Background(), "  ", "").Return(nil, authservice.ErrEmptyIdentity)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrEmptyIdentity.Error(),
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage failure",
			body: `{"name":"Андрей","email":"andrey@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SignIn(context.Background(), "Андрей", "andrey@example.com").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SignIn(gomock.Any(), "Андрей", "andrey@example.com").Return(&domain.User{ID: 7}, nil)
	service.EXPECT().GenerateToken(7).Return("jwt-token", nil)

	body := []byte(`{"name":"Андрей","email":"andrey@example.com"}`)
	req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer jwt-token", rr.Header().Get("Authorization"))
}
