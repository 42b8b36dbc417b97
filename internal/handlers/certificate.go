package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/models"
	"github.com/css-society/events-api/internal/pdf"
)

// CertificateSaver defines the metadata write side the handler needs.
type CertificateSaver interface {
	Save(ctx context.Context, name, event string) error
}

// CertificateLister defines the metadata read side the handler needs.
type CertificateLister interface {
	List(ctx context.Context) ([]models.CertificateDB, error)
}

// CertificateRenderer draws the certificate document.
type CertificateRenderer interface {
	Render(w io.Writer, name, event string) error
}

// CertificateRequest represents the JSON body for downloading a certificate
// swagger:model CertificateRequest
type CertificateRequest struct {
	// Recipient name as it should appear on the certificate
	// required: true
	// default: Priya Sharma
	Name string `json:"name"`

	// Event title printed on the certificate
	// required: true
	// default: CSS Hackathon 2024
	Event string `json:"event"`
}

// CertificateErrorResponse represents an error response for certificates
// swagger:model CertificateErrorResponse
type CertificateErrorResponse struct {
	// Error message
	// default: Name and event are required
	Error string `json:"error"`
}

// CertificatesResponse represents the certificate metadata log
// swagger:model CertificatesResponse
type CertificatesResponse struct {
	// Issued certificates, newest first
	Certificates []models.CertificateDB `json:"certificates"`
}

// NewDownloadCertificateHandler returns an HTTP handler that renders and
// streams a certificate PDF.
// @Summary Download certificate
// @Description Renders the participation certificate for the given name and event and streams it as a PDF attachment. Each download is recorded in the certificate log.
// @Tags certificates
// @Accept json
// @Produce application/pdf
// @Param request body handlers.CertificateRequest true "Certificate Request"
// @Success 200 {file} file "Certificate PDF"
// @Failure 400 {object} handlers.CertificateErrorResponse "Missing fields"
// @Failure 401 {object} handlers.CertificateErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.CertificateErrorResponse "Render failure"
// @Router /certificates/download [post]
// @Security BearerAuth
func NewDownloadCertificateHandler(saver CertificateSaver, renderer CertificateRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetSessionUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CertificateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode certificate request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CertificateErrorResponse{Error: "Invalid request body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		event := strings.TrimSpace(req.Event)
		if name == "" || event == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CertificateErrorResponse{Error: "Name and event are required"})
			return
		}

		// The metadata row is the issue log; a failed insert must not
		// block the download.
		if err := saver.Save(ctx, name, event); err != nil {
			logger.Log.Errorw("failed to log certificate issue", "name", name, "event", event, "error", err)
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, name, event); err != nil {
			logger.Log.Errorw("failed to render certificate", "name", name, "event", event, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CertificateErrorResponse{Error: "Failed to render certificate"})
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(name)))
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

// NewListCertificatesHandler returns an HTTP handler for the certificate
// metadata log.
// @Summary List issued certificates
// @Description Returns all recorded certificate downloads, newest first
// @Tags certificates
// @Produce json
// @Success 200 {object} handlers.CertificatesResponse "Issued certificates"
// @Failure 500 {object} handlers.CertificateErrorResponse "Internal server error"
// @Router /certificates [get]
func NewListCertificatesHandler(svc CertificateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		certs, err := svc.List(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list certificates", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CertificateErrorResponse{Error: "Internal server error"})
			return
		}
		if certs == nil {
			certs = []models.CertificateDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CertificatesResponse{Certificates: certs})
	}
}
