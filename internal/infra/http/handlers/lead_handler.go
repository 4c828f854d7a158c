package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type LeadHandler struct {
	ListUC    *usecase.ListLeadsUseCase
	CreateUC  *usecase.CreateLeadUseCase
	UpdateUC  *usecase.UpdateLeadStatusUseCase
	EnqueueUC *usecase.EnqueueLeadImportsUseCase
	Leads     entity.LeadRepository
}

func NewLeadHandler(
	listUC *usecase.ListLeadsUseCase,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadStatusUseCase,
	enqueueUC *usecase.EnqueueLeadImportsUseCase,
	leads entity.LeadRepository,
) *LeadHandler {
	return &LeadHandler{
		ListUC:    listUC,
		CreateUC:  createUC,
		UpdateUC:  updateUC,
		EnqueueUC: enqueueUC,
		Leads:     leads,
	}
}

// List (GET /leads?q=&status=&cursor=&limit=)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// limit não numérico vira zero e o paginador clampa pro default.
	limit, _ := strconv.Atoi(params.Get("limit"))

	page, err := h.ListUC.Execute(r.Context(), middleware.OwnerID(r.Context()), usecase.ListLeadsInput{
		Text:     params.Get("q"),
		Status:   params.Get("status"),
		Cursor:   params.Get("cursor"),
		PageSize: limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get (GET /leads/{id}) popula o detail view do dashboard.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Leads.FindByID(r.Context(), middleware.OwnerID(r.Context()), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "lead not found", Code: usecase.CodeNotFound})
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Create (POST /leads)
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), middleware.OwnerID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// Update (PATCH /leads/{id}): status e/ou lastContactDate.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), middleware.OwnerID(r.Context()), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	if input.Status != nil {
		middleware.RecordLeadStatusUpdate(*input.Status)
	}
	writeJSON(w, http.StatusOK, lead)
}

type importRequest struct {
	Rows []usecase.ImportRow `json:"rows"`
}

// Import (POST /leads/import): cada linha vira mensagem na fila; o worker
// faz o upsert fora do request.
func (h *LeadHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	result, err := h.EnqueueUC.Execute(r.Context(), middleware.OwnerID(r.Context()), req.Rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, result)
}
