package handler

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"formforge/internal/capture"
	"formforge/internal/model"
	"formforge/internal/service"
)

// ResponseHandler handles submission and listing of form responses
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitRequest is the request body for submitting a filled form
type SubmitRequest struct {
	FormID  string                       `json:"formId" validate:"required"`
	Answers map[string]model.AnswerValue `json:"answers"`
}

// Submit handles POST /api/responses. Submission metadata comes from the
// request itself, not the body.
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meta := model.SubmissionMeta{
		UserAgent: r.UserAgent(),
		IP:        remoteIP(r),
	}

	resp, err := h.responseSvc.Submit(r.Context(), req.FormID, capture.AnswerSet(req.Answers), meta)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListByForm handles GET /api/responses/form/{id}
func (h *ResponseHandler) ListByForm(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["id"]

	responses, err := h.responseSvc.ListByForm(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if responses == nil {
		responses = []*model.FormResponse{}
	}

	writeJSON(w, http.StatusOK, responses)
}

func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
