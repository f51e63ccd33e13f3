package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"formforge/internal/builder"
	"formforge/internal/model"
	"formforge/internal/repository"
	"formforge/internal/service"
)

// QuestionHandler exposes the editor's question-level transitions. Every
// endpoint loads the form, applies one transition, saves, and returns the
// updated form.
type QuestionHandler struct {
	formSvc *service.FormService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(formSvc *service.FormService) *QuestionHandler {
	return &QuestionHandler{formSvc: formSvc}
}

// AddQuestionRequest is the request body for adding a question
type AddQuestionRequest struct {
	Type model.QuestionType `json:"type"`
}

// ReorderRequest moves a question from one position to another
type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ChangeTypeRequest switches a question to another variant
type ChangeTypeRequest struct {
	Type model.QuestionType `json:"type"`
}

// Add handles POST /api/forms/{id}/questions
func (h *QuestionHandler) Add(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["id"]

	var req AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.AddQuestion(r.Context(), formID, req.Type)
	h.respond(w, form, err)
}

// Remove handles DELETE /api/forms/{id}/questions/{qid}
func (h *QuestionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	form, err := h.formSvc.RemoveQuestion(r.Context(), vars["id"], vars["qid"])
	h.respond(w, form, err)
}

// PatchFields handles PATCH /api/forms/{id}/questions/{qid}
func (h *QuestionHandler) PatchFields(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var patch builder.FieldPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.PatchQuestion(r.Context(), vars["id"], vars["qid"], patch)
	h.respond(w, form, err)
}

// PatchSettings handles PATCH /api/forms/{id}/questions/{qid}/settings
func (h *QuestionHandler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var patch builder.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.PatchSettings(r.Context(), vars["id"], vars["qid"], patch)
	h.respond(w, form, err)
}

// ChangeType handles PUT /api/forms/{id}/questions/{qid}/type
func (h *QuestionHandler) ChangeType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req ChangeTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.ChangeQuestionType(r.Context(), vars["id"], vars["qid"], req.Type)
	h.respond(w, form, err)
}

// Reorder handles POST /api/forms/{id}/questions/reorder
func (h *QuestionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["id"]

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.ReorderQuestions(r.Context(), formID, req.From, req.To)
	h.respond(w, form, err)
}

// EntryOp handles POST /api/forms/{id}/questions/{qid}/entries: one mutation
// of a nested collection (categories, items, blanks, sub-questions).
func (h *QuestionHandler) EntryOp(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var op builder.EntryOp
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.ApplyEntryOp(r.Context(), vars["id"], vars["qid"], op)
	h.respond(w, form, err)
}

func (h *QuestionHandler) respond(w http.ResponseWriter, form *model.Form, err error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "form not found")
			return
		}
		// Unknown type / list errors are caller mistakes, not storage failures
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}
	writeJSON(w, http.StatusOK, form)
}
