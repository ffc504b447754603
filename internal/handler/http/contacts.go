package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jiminoh-dev/linkup/internal/logger"
	"github.com/jiminoh-dev/linkup/internal/utils"
	"github.com/jiminoh-dev/linkup/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.ContactFilter{
		Location:      r.URL.Query().Get("location"),
		ExcludeGender: r.URL.Query().Get("excludeGender"),
	}

	contacts, err := h.services.ContactService.ListContacts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing contacts failed")
		status, msg := mapError(err)
		writeError(w, msg, status)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdContact, err := h.services.ContactService.CreateContact(ctx, req)
	if err != nil {
		log.Err(err).Msg("contact creation failed")
		status, msg := mapError(err)
		writeError(w, msg, status)
		return
	}

	utils.WriteJSON(w, models.CreateContactResponse{ContactID: createdContact.ContactID}, http.StatusCreated)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contactID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-numeric contact id")
		writeError(w, "contact id must be an integer", http.StatusBadRequest)
		return
	}

	if err := h.services.ContactService.DeleteContact(ctx, contactID); err != nil {
		log.Err(err).Int64("id", contactID).Msg("contact deletion failed")
		status, msg := mapError(err)
		writeError(w, msg, status)
		return
	}

	// missing rows still report success, delete is idempotent
	utils.WriteJSON(w, models.DeleteContactResponse{Success: true}, http.StatusOK)
}
