package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type CampaignHandler struct {
	ListUC      *usecase.ListCampaignsUseCase
	CreateUC    *usecase.CreateCampaignUseCase
	GetUC       *usecase.GetCampaignUseCase
	UpdateUC    *usecase.UpdateCampaignUseCase
	DeleteUC    *usecase.DeleteCampaignUseCase
	ListLeadsUC *usecase.ListCampaignLeadsUseCase
}

func NewCampaignHandler(
	listUC *usecase.ListCampaignsUseCase,
	createUC *usecase.CreateCampaignUseCase,
	getUC *usecase.GetCampaignUseCase,
	updateUC *usecase.UpdateCampaignUseCase,
	deleteUC *usecase.DeleteCampaignUseCase,
	listLeadsUC *usecase.ListCampaignLeadsUseCase,
) *CampaignHandler {
	return &CampaignHandler{
		ListUC:      listUC,
		CreateUC:    createUC,
		GetUC:       getUC,
		UpdateUC:    updateUC,
		DeleteUC:    deleteUC,
		ListLeadsUC: listLeadsUC,
	}
}

// List (GET /campaigns?status=&sort=&order=). Cada item vem com os counts
// derivados (leadCount, successCount).
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	campaigns, err := h.ListUC.Execute(r.Context(), middleware.OwnerID(r.Context()), usecase.ListCampaignsInput{
		Status: params.Get("status"),
		Sort:   params.Get("sort"),
		Order:  params.Get("order"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// Create (POST /campaigns)
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	campaign, err := h.CreateUC.Execute(r.Context(), middleware.OwnerID(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCampaignCreated()
	writeJSON(w, http.StatusCreated, campaign)
}

// Get (GET /campaigns/{id})
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.GetUC.Execute(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// Update (PUT /campaigns/{id}). Partial: só os campos presentes no body.
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	campaign, err := h.UpdateUC.Execute(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// Delete (DELETE /campaigns/{id}). Danger zone; cascateia para os leads.
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteUC.Execute(r.Context(), middleware.OwnerID(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Leads (GET /campaigns/{id}/leads?q=&status=)
func (h *CampaignHandler) Leads(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	leads, err := h.ListLeadsUC.Execute(
		r.Context(),
		middleware.OwnerID(r.Context()),
		chi.URLParam(r, "id"),
		params.Get("q"),
		params.Get("status"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}
