package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"formforge/internal/capture"
	"formforge/internal/model"
	"formforge/internal/render"
	"formforge/internal/repository"
	"formforge/internal/service"
)

var validate = validator.New()

// FormHandler handles form CRUD, validation, and the fill view
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// FormRequest is the request body for creating or replacing a form
type FormRequest struct {
	Title          string           `json:"title" validate:"required"`
	Description    string           `json:"description"`
	HeaderImageURL string           `json:"headerImageUrl"`
	Theme          model.Theme      `json:"theme"`
	Questions      []model.Question `json:"questions"`
}

func (req *FormRequest) toForm() *model.Form {
	questions := req.Questions
	if questions == nil {
		questions = []model.Question{}
	}
	return &model.Form{
		Title:          req.Title,
		Description:    req.Description,
		HeaderImageURL: req.HeaderImageURL,
		Theme:          req.Theme,
		Questions:      questions,
	}
}

// Create handles POST /api/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	form, err := h.formSvc.Create(r.Context(), req.toForm())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, form)
}

// Update handles PUT /api/forms/{id}
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	form := req.toForm()
	form.ID = id
	if err := h.formSvc.Update(r.Context(), form); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "form not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Get handles GET /api/forms/{id}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.formSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// List handles GET /api/forms
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.formSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if forms == nil {
		forms = []*model.Form{}
	}

	writeJSON(w, http.StatusOK, forms)
}

// Delete handles DELETE /api/forms/{id}
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.formSvc.Delete(r.Context(), id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Validate handles POST /api/forms/{id}/validate. It runs the structural
// consistency pass and returns the issue list; saving never runs it.
func (h *FormHandler) Validate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.formSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	issues := form.Validate()
	if issues == nil {
		issues = []model.Issue{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"valid": len(issues) == 0, "issues": issues})
}

// View handles GET /api/forms/{id}/view: the fill surface's render plan with
// an empty answer set.
func (h *FormHandler) View(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.formSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	view, err := render.Form(form, capture.AnswerSet{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}
