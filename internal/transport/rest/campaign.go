package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundrik/backend/internal/domain"
	"github.com/fundrik/backend/internal/service/campaign"
)

type campaignHandler struct {
	commands *campaign.CommandService
	queries  *campaign.QueryService
	log      *slog.Logger
}

// campaignRequest is the JSON body for create and update operations. ID is
// optional on POST; on PUT and PATCH the path identifier is authoritative and
// any body identifier is ignored.
type campaignRequest struct {
	ID           any    `json:"id,omitempty"`
	Title        string `json:"title"`
	IsActive     bool   `json:"is_active"`
	IsOpen       bool   `json:"is_open"`
	HasTarget    bool   `json:"has_target"`
	TargetAmount int64  `json:"target_amount"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst *campaignRequest) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// fields validates the body into domain values, leaving the identifier to the
// caller.
func (req campaignRequest) fields(w http.ResponseWriter) (domain.CampaignTitle, domain.CampaignTarget, bool) {
	title, err := domain.NewCampaignTitle(req.Title)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return domain.CampaignTitle{}, domain.CampaignTarget{}, false
	}
	target, err := domain.NewCampaignTarget(req.HasTarget, req.TargetAmount)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return domain.CampaignTitle{}, domain.CampaignTarget{}, false
	}
	return title, target, true
}

func pathID(w http.ResponseWriter, r *http.Request) (domain.EntityID, bool) {
	id, err := domain.ParseEntityID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return domain.EntityID{}, false
	}
	return id, true
}

// create handles POST /v1/campaigns. With an id in the body the campaign is
// stored under it; without one the repository assigns an identifier.
func (h *campaignHandler) create(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	title, target, ok := req.fields(w)
	if !ok {
		return
	}

	if req.ID == nil {
		c, err := h.commands.CreateCampaignWithoutID(r.Context(), title, req.IsActive, req.IsOpen, target)
		if err != nil {
			writeJSONError(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusCreated, campaign.CampaignToDTO(c))
		return
	}

	id, err := domain.ParseEntityID(req.ID)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := domain.NewCampaign(id, title, req.IsActive, req.IsOpen, target)
	if err := h.commands.CreateCampaign(r.Context(), c); err != nil {
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusCreated, campaign.CampaignToDTO(c))
}

// list handles GET /v1/campaigns.
func (h *campaignHandler) list(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.queries.FindAllCampaigns(r.Context())
	if err != nil {
		writeJSONError(w, "failed to list campaigns", statusForError(err))
		return
	}

	dtos := make([]campaign.CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		dtos = append(dtos, campaign.CampaignToDTO(c))
	}

	writeJSON(w, http.StatusOK, dtos)
}

// get handles GET /v1/campaigns/{id}.
func (h *campaignHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.queries.FindCampaignByID(r.Context(), id)
	if err != nil {
		writeJSONError(w, "failed to load campaign", statusForError(err))
		return
	}
	if c == nil {
		writeJSONError(w, "campaign not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, campaign.CampaignToDTO(*c))
}

// save handles PUT /v1/campaigns/{id}: a full-state upsert.
func (h *campaignHandler) save(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req campaignRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	title, target, ok := req.fields(w)
	if !ok {
		return
	}

	c := domain.NewCampaign(id, title, req.IsActive, req.IsOpen, target)
	if err := h.commands.SaveCampaign(r.Context(), c); err != nil {
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, campaign.CampaignToDTO(c))
}

// update handles PATCH /v1/campaigns/{id}: a full-state rewrite of an
// existing campaign.
func (h *campaignHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req campaignRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	title, target, ok := req.fields(w)
	if !ok {
		return
	}

	c := domain.NewCampaign(id, title, req.IsActive, req.IsOpen, target)
	if err := h.commands.UpdateCampaign(r.Context(), c); err != nil {
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, campaign.CampaignToDTO(c))
}

// delete handles DELETE /v1/campaigns/{id}.
func (h *campaignHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.commands.DeleteCampaign(r.Context(), id); err != nil {
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
