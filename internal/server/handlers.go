package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseResponse is returned by the parse endpoint. ID is set only when the
// result was persisted.
type ParseResponse struct {
	ID     *uuid.UUID              `json:"id,omitempty"`
	Result *types.ExtractionResult `json:"result"`
}

// handleParseResume accepts a PDF (multipart field "file" or a raw
// application/pdf body) or plain text, runs the extraction pipeline and
// persists the result when a database is configured.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	buf, filename, isText, err := readDocument(r)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read upload")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var result *types.ExtractionResult
	if isText {
		result, err = extraction.ParseText(string(buf))
	} else {
		result, err = extraction.Parse(buf)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("filename", filename).Msg("extraction failed")
		s.errorResponse(w, HTTPStatus(err), "PDF appears empty or unreadable")
		return
	}

	response := ParseResponse{Result: result}
	if s.db != nil {
		id, err := s.db.SaveResult(r.Context(), filename, ingestion.ComputeHash(string(buf)), result)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to persist result")
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist result")
			return
		}
		response.ID = &id
	}

	s.log.Info().
		Str("filename", filename).
		Float64("confidence", result.Confidence).
		Msg("resume parsed")
	s.jsonResponse(w, http.StatusOK, response)
}

// readDocument pulls the document bytes out of the request, from a
// multipart form or the raw body. The second return is the filename if one
// was supplied; the third reports whether the payload is plain text.
func readDocument(r *http.Request) (buf []byte, filename string, isText bool, err error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", false, &ErrValidation{Message: "missing multipart field 'file'"}
		}
		defer func() { _ = file.Close() }()

		buf, err := io.ReadAll(file)
		if err != nil {
			return nil, "", false, uploadReadError(err)
		}
		isText := strings.HasSuffix(strings.ToLower(header.Filename), ".txt")
		return buf, header.Filename, isText, nil
	}

	buf, err = io.ReadAll(r.Body)
	if err != nil {
		return nil, "", false, uploadReadError(err)
	}
	return buf, "", strings.HasPrefix(contentType, "text/plain"), nil
}

// uploadReadError distinguishes a body over the size limit from other read
// failures.
func uploadReadError(err error) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return &ErrUploadTooLarge{Limit: maxBytes.Limit}
	}
	return &ErrValidation{Message: "failed to read request body"}
}

// handleListResumes lists stored extractions, optionally filtered by a
// minimum confidence.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, HTTPStatus(&ErrNoDatabase{}), "no database configured")
		return
	}

	filters := db.ResumeFilters{}
	if v := r.URL.Query().Get("min_confidence"); v != "" {
		minConfidence, err := strconv.ParseFloat(v, 64)
		if err != nil || minConfidence < 0 || minConfidence > 1 {
			s.errorResponse(w, http.StatusBadRequest, "min_confidence must be a number in [0,1]")
			return
		}
		filters.MinConfidence = minConfidence
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > 500 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer in [1,500]")
			return
		}
		filters.Limit = limit
	}

	summaries, err := s.db.ListResults(r.Context(), filters)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list results")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list results")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}

// handleGetResume returns one stored extraction.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	record, ok := s.loadRecord(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleUpdateResume applies a manual correction to the personal info of a
// stored extraction and rescores it.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	record, ok := s.loadRecord(w, r)
	if !ok {
		return
	}

	var req types.UpdatePersonalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if record.Result.PersonalInfo == nil {
		record.Result.PersonalInfo = &types.PersonalInfo{}
	}
	req.Apply(record.Result.PersonalInfo)
	if record.Result.PersonalInfo.IsEmpty() {
		record.Result.PersonalInfo = nil
	}
	record.Result.Confidence = extraction.Confidence(record.Result)

	if err := s.db.UpdateResult(r.Context(), record.ID, record.Result); err != nil {
		s.log.Error().Err(err).Str("id", record.ID.String()).Msg("failed to update result")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	record.Confidence = record.Result.Confidence
	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteResume removes a stored extraction.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, HTTPStatus(&ErrNoDatabase{}), "no database configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return
	}
	if err := s.db.DeleteResult(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadRecord resolves the path ID to a stored record, writing the error
// response itself when that fails.
func (s *Server) loadRecord(w http.ResponseWriter, r *http.Request) (*db.ResumeRecord, bool) {
	if s.db == nil {
		s.errorResponse(w, HTTPStatus(&ErrNoDatabase{}), "no database configured")
		return nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume id")
		return nil, false
	}
	record, err := s.db.GetResult(r.Context(), id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id.String()).Msg("failed to get result")
		s.errorResponse(w, http.StatusInternalServerError, "failed to get result")
		return nil, false
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return nil, false
	}
	return record, true
}
