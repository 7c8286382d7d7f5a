package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-insight/internal/resume"
)

// handleRoot reports service liveness with a human-readable message.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.clientError(w, http.StatusNotFound, "Not found", r.URL.Path)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Resume Insight API is running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParseResume extracts a structured record from the uploaded
// resume. The pipeline reports its own failures in-band as diagnostic
// JSON, so the response status is 200 whenever the upload itself was
// usable.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r, "file")
	if err != nil {
		s.uploadError(w, err)
		return
	}
	defer cleanup()

	text, links, err := s.extractor.ExtractFile(r.Context(), path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("document extraction failed")
		s.jsonResponse(w, http.StatusInternalServerError, resume.Failure{
			Error:   "Failed to extract text from PDF",
			Details: err.Error(),
			Path:    path,
		})
		return
	}

	s.rawResponse(w, http.StatusOK, s.resumes.Run(r.Context(), text, links))
}

// handleProcess scores the uploaded resume and returns the structured
// critique.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r, "pdf_doc")
	if err != nil {
		s.uploadError(w, err)
		return
	}
	defer cleanup()

	text, _, err := s.extractor.ExtractFile(r.Context(), path)
	if err != nil {
		log.Error().Err(err).Msg("document extraction failed")
		s.serverError(w, "Failed to process resume", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.critiques.Analyze(r.Context(), text))
}

// handleATSScore is the simplified critique variant: overall score plus a
// flat suggestion list.
func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r, "pdf_doc")
	if err != nil {
		s.uploadError(w, err)
		return
	}
	defer cleanup()

	text, _, err := s.extractor.ExtractFile(r.Context(), path)
	if err != nil {
		log.Error().Err(err).Msg("document extraction failed")
		s.serverError(w, "Failed to process resume", err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.critiques.AnalyzeSimple(r.Context(), text))
}

// saveUpload validates the multipart upload in field and stores it under
// the upload directory with a fresh name. The cleanup function removes
// the stored file.
func (s *Server) saveUpload(w http.ResponseWriter, r *http.Request, field string) (string, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		// The multipart reader does not always wrap the MaxBytesReader
		// error, so match on the message as a fallback.
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return "", nil, &ErrUploadTooLarge{Limit: s.cfg.MaxUploadBytes}
		}
		return "", nil, &ErrMissingFile{Field: field}
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, &ErrMissingFile{Field: field}
	}
	defer file.Close()

	if header.Filename == "" {
		return "", nil, &ErrNoFileSelected{}
	}
	if !isPDFFilename(header.Filename) {
		return "", nil, &ErrNotPDF{Filename: header.Filename}
	}

	path := filepath.Join(s.cfg.UploadDir, uuid.New().String()+".pdf")
	stored, err := os.Create(path)
	if err != nil {
		return "", nil, err
	}

	if _, err := io.Copy(stored, file); err != nil {
		stored.Close()
		os.Remove(path)
		return "", nil, err
	}
	if err := stored.Close(); err != nil {
		os.Remove(path)
		return "", nil, err
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove uploaded file")
		}
	}
	return path, cleanup, nil
}

// uploadError maps an upload failure to its response.
func (s *Server) uploadError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.serverError(w, "Failed to process resume", err)
		return
	}
	s.clientError(w, status, "Invalid upload", err.Error())
}
