package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/models"
)

func TestDownloadCertificateHandler(t *testing.T) {
	userID := uuid.New()
	sessionUser := &models.SessionUser{ID: userID, Email: "user@tezu.ac.in"}

	tests := []struct {
		name                string
		requestBody         any
		sessionUser         *models.SessionUser
		setupMocks          func(saver *MockCertificateSaver, renderer *MockCertificateRenderer)
		expectedStatusCode  int
		expectedDisposition string
	}{
		{
			name:        "successful download",
			requestBody: CertificateRequest{Name: "Priya Sharma", Event: "CSS Hackathon 2024"},
			sessionUser: sessionUser,
			setupMocks: func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {
				saver.EXPECT().Save(gomock.Any(), "Priya Sharma", "CSS Hackathon 2024").Return(nil)
				renderer.EXPECT().Render(gomock.Any(), "Priya Sharma", "CSS Hackathon 2024").
					DoAndReturn(func(w io.Writer, name, event string) error {
						_, err := w.Write([]byte("%PDF-1.3 fake"))
						return err
					})
			},
			expectedStatusCode:  http.StatusOK,
			expectedDisposition: `attachment; filename="Priya Sharma-certificate.pdf"`,
		},
		{
			name:        "metadata write failure does not block the download",
			requestBody: CertificateRequest{Name: "Priya Sharma", Event: "CSS Go"},
			sessionUser: sessionUser,
			setupMocks: func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {
				saver.EXPECT().Save(gomock.Any(), "Priya Sharma", "CSS Go").Return(errors.New("db down"))
				renderer.EXPECT().Render(gomock.Any(), "Priya Sharma", "CSS Go").Return(nil)
			},
			expectedStatusCode:  http.StatusOK,
			expectedDisposition: `attachment; filename="Priya Sharma-certificate.pdf"`,
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			sessionUser:        sessionUser,
			setupMocks:         func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "blank name",
			requestBody:        CertificateRequest{Name: "   ", Event: "CSS Go"},
			sessionUser:        sessionUser,
			setupMocks:         func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "blank event",
			requestBody:        CertificateRequest{Name: "Priya Sharma", Event: ""},
			sessionUser:        sessionUser,
			setupMocks:         func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "render failure",
			requestBody: CertificateRequest{Name: "Priya Sharma", Event: "CSS Go"},
			sessionUser: sessionUser,
			setupMocks: func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {
				saver.EXPECT().Save(gomock.Any(), "Priya Sharma", "CSS Go").Return(nil)
				renderer.EXPECT().Render(gomock.Any(), "Priya Sharma", "CSS Go").Return(errors.New("bad template"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "no session user",
			requestBody:        CertificateRequest{Name: "Priya Sharma", Event: "CSS Go"},
			sessionUser:        nil,
			setupMocks:         func(saver *MockCertificateSaver, renderer *MockCertificateRenderer) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSaver := NewMockCertificateSaver(ctrl)
			mockRenderer := NewMockCertificateRenderer(ctrl)
			tt.setupMocks(mockSaver, mockRenderer)

			handler := NewDownloadCertificateHandler(mockSaver, mockRenderer)

			body, _ := json.Marshal(tt.requestBody)
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/certificates/download", bytes.NewReader(body))
			if tt.sessionUser != nil {
				req = req.WithContext(middlewares.SetSessionUserToContext(context.Background(), tt.sessionUser))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedDisposition != "" {
				assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
				assert.Equal(t, tt.expectedDisposition, rr.Header().Get("Content-Disposition"))
			}
		})
	}
}

func TestListCertificatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	certs := []models.CertificateDB{
		{ID: uuid.New(), Name: "Priya Sharma", Event: "CSS Hackathon 2024"},
	}

	mockLister := NewMockCertificateLister(ctrl)

	handler := NewListCertificatesHandler(mockLister)

	// 1. Successful listing
	mockLister.EXPECT().List(gomock.Any()).Return(certs, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp CertificatesResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Certificates, 1)

	// 2. Empty log serializes as an empty array
	mockLister.EXPECT().List(gomock.Any()).Return(nil, nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/certificates", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"certificates":[]`)

	// 3. Service error
	mockLister.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/certificates", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
