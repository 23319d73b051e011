package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/extract"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// PreviewResponse represents the response for /preview.
type PreviewResponse struct {
	Markdown string `json:"markdown"`
}

// ExtractResponse represents the response for /extract.
type ExtractResponse struct {
	FileName   string `json:"file_name"`
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}

// decodeRecord reads and validates a ResumeRecord request body: JSON Schema
// for shape, then struct validation for required entry sub-fields.
func (s *Server) decodeRecord(w http.ResponseWriter, r *http.Request) (*types.ResumeRecord, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return nil, false
	}

	if err := schemas.ValidateResumeRecord(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(body, &record); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if err := record.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}

	return &record, true
}

// handleRender renders a ResumeRecord into a PDF document.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	record, ok := s.decodeRecord(w, r)
	if !ok {
		return
	}

	doc, err := render.PDF(record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// handlePreview returns the Markdown preview of a ResumeRecord.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	record, ok := s.decodeRecord(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, PreviewResponse{Markdown: preview.Markdown(record)})
}

// readUpload reads the "file" part of a multipart upload.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, fileName string, ok bool) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse multipart form: "+err.Error())
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A 'file' form field is required")
		return nil, "", false
	}
	defer func() { _ = file.Close() }()

	data, err = io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return nil, "", false
	}

	return data, header.Filename, true
}

// handleExtract returns the extracted text of an uploaded file. Unsupported
// extensions yield empty text, not an error.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	data, fileName, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	text := extract.Text(data, fileName)
	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		FileName:   fileName,
		Text:       text,
		Characters: len([]rune(text)),
	})
}

// handleAnalyze extracts text from an uploaded résumé and obtains an ATS
// assessment for it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	data, fileName, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	text := extract.Text(data, fileName)
	if strings.TrimSpace(text) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity,
			"No extractable text in uploaded file (supported: .pdf, .txt)")
		return
	}

	result, err := s.assess(r.Context(), text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
