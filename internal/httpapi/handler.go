package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"offboarding-service/internal/apperror"
	"offboarding-service/internal/service"
)

type Handler struct {
	service service.Manager
	logger  *slog.Logger
}

func NewHandler(svc service.Manager, logger *slog.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) == 0 || parts[0] != "api" {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}

	switch {
	case len(parts) == 2 && parts[1] == "health":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleHealth(w, r)
		return

	case len(parts) == 2 && parts[1] == "offboarding":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleList(w, r)
		return

	case len(parts) == 3 && parts[1] == "offboarding" && parts[2] == "submit":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleSubmit(w, r)
		return
	}

	writeError(w, http.StatusNotFound, "route not found")
}

type submitRequest struct {
	EmpName        string   `json:"empName"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	EmpID          string   `json:"empId"`
	Feedback       string   `json:"feedback"`
	FinalSalary    *float64 `json:"finalSalary"`
	Bonus          *float64 `json:"bonus"`
	Acknowledgment string   `json:"acknowledgment"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.Submit(r.Context(), service.SubmitInput{
		EmpName:        req.EmpName,
		Position:       req.Position,
		Department:     req.Department,
		EmpID:          req.EmpID,
		Feedback:       req.Feedback,
		FinalSalary:    req.FinalSalary,
		Bonus:          req.Bonus,
		Acknowledgment: req.Acknowledgment,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Offboarding details submitted successfully",
		"id":      record.ID,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	}

	if err := h.service.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err)
		response.Status = "degraded"
		response.Database = "disconnected"
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeConflict:
		writeError(w, http.StatusConflict, err.Error())
	case apperror.CodeUnavailable:
		h.logger.Error("store unavailable", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		h.logger.Error("unexpected error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}
