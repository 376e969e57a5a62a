package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// uploadOverhead is the room left for multipart framing on top of the
// largest accepted file.
const uploadOverhead = 64 << 10

// importResponse is what clients see of an import session. The validated
// rows stay in the store; Preview shows the first few.
type importResponse struct {
	Token           uuid.UUID            `json:"token"`
	Kind            domain.ImportKind    `json:"kind"`
	State           domain.ImportState   `json:"state"`
	FileName        string               `json:"file_name"`
	FileSize        int64                `json:"file_size"`
	TotalRows       int                  `json:"total_rows"`
	ValidRows       int                  `json:"valid_rows"`
	ErrorRows       int                  `json:"error_rows"`
	TotalIssues     int                  `json:"total_errors"`
	ErrorsTruncated bool                 `json:"errors_truncated"`
	Issues          []domain.ImportIssue `json:"errors"`
	Preview         []map[string]string  `json:"preview"`
	Inserted        int64                `json:"inserted,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	ExpiresAt       time.Time            `json:"expires_at"`
}

func newImportResponse(s *domain.ImportSession) importResponse {
	resp := importResponse{
		Token:           s.Token,
		Kind:            s.Kind,
		State:           s.State,
		FileName:        s.FileName,
		FileSize:        s.FileSize,
		TotalRows:       s.TotalRows,
		ValidRows:       s.ValidRows,
		ErrorRows:       s.ErrorRows,
		TotalIssues:     s.TotalIssues,
		ErrorsTruncated: s.ErrorsTruncated,
		Issues:          s.Issues,
		Preview:         s.Preview,
		Inserted:        s.Inserted,
		CreatedAt:       s.CreatedAt,
		ExpiresAt:       s.ExpiresAt,
	}
	if resp.Issues == nil {
		resp.Issues = []domain.ImportIssue{}
	}
	if resp.Preview == nil {
		resp.Preview = []map[string]string{}
	}
	return resp
}

// handleValidateImport parses and validates an uploaded CSV. The file is
// read from the "file" part of a multipart form, or from the raw body with
// the name taken from the `filename` query parameter. A clean file answers
// 201 with the pending import; a file with problems answers 422 with the
// same document listing them.
func (h *Handler) handleValidateImport(w http.ResponseWriter, r *http.Request) {
	kind, ok := importKind(r)
	if !ok {
		h.fail(w, r, fmt.Errorf("%w: unknown import kind %q", port.ErrNotFound, chi.URLParam(r, "kind")))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+uploadOverhead)
	fileName, body, err := uploadedFile(r)
	if err != nil {
		h.failUpload(w, r, err)
		return
	}

	session, err := h.imports.Validate(r.Context(), kind, fileName, body)
	if err != nil {
		h.failUpload(w, r, err)
		return
	}
	status := http.StatusCreated
	if session.State == domain.ImportFailed {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, newImportResponse(session))
}

func (h *Handler) handleGetImport(w http.ResponseWriter, r *http.Request) {
	kind, token, err := importRef(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	session, err := h.imports.Get(r.Context(), kind, token)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newImportResponse(session))
}

// handleCommitImport inserts the rows of a validated import.
func (h *Handler) handleCommitImport(w http.ResponseWriter, r *http.Request) {
	kind, token, err := importRef(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	session, err := h.imports.Commit(r.Context(), kind, token)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newImportResponse(session))
}

func (h *Handler) handleDiscardImport(w http.ResponseWriter, r *http.Request) {
	kind, token, err := importRef(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.imports.Discard(r.Context(), kind, token); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) failUpload(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds %d bytes", h.maxUpload), nil)
		return
	}
	h.fail(w, r, err)
}

func importKind(r *http.Request) (domain.ImportKind, bool) {
	return domain.ParseImportKind(strings.ReplaceAll(chi.URLParam(r, "kind"), "-", "_"))
}

func importRef(r *http.Request) (domain.ImportKind, uuid.UUID, error) {
	kind, ok := importKind(r)
	if !ok {
		return "", uuid.Nil, fmt.Errorf("%w: unknown import kind %q", port.ErrNotFound, chi.URLParam(r, "kind"))
	}
	token, err := uuid.Parse(chi.URLParam(r, "token"))
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("%w: malformed import token", port.ErrImportNotFound)
	}
	return kind, token, nil
}

// uploadedFile returns the name and content of the uploaded file without
// buffering multipart bodies in memory or on disk.
func uploadedFile(r *http.Request) (string, io.Reader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		name := strings.TrimSpace(r.URL.Query().Get("filename"))
		if name == "" {
			name = "upload.csv"
		}
		return name, r.Body, nil
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", port.ErrInvalidInput, err)
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", nil, fmt.Errorf("%w: multipart form has no \"file\" part", port.ErrInvalidInput)
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return "", nil, err
			}
			return "", nil, fmt.Errorf("%w: %v", port.ErrInvalidInput, err)
		}
		if part.FormName() == "file" {
			name := part.FileName()
			if name == "" {
				name = "upload.csv"
			}
			return name, part, nil
		}
		_ = part.Close()
	}
}
