package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/gadget-armoury/internal/gadget"
)

// Gadget lifecycle event channels broadcast to WebSocket clients.
const (
	eventGadgetCreated        = "gadget.created"
	eventGadgetUpdated        = "gadget.updated"
	eventGadgetDecommissioned = "gadget.decommissioned"
	eventGadgetArmed          = "gadget.armed"
	eventGadgetDestroyed      = "gadget.destroyed"
)

// generateCodeResponse is the response body for
// POST /gadgets/{id}/self-destruct/generate-code.
type generateCodeResponse struct {
	ConfirmationCode string `json:"confirmationCode"`
	Message          string `json:"message"`
	ExpiresIn        int    `json:"expiresIn"` // seconds
}

// messageResponse is the response body for destructive lifecycle
// operations, pairing a human-readable outcome with the updated record.
type messageResponse struct {
	Message string         `json:"message"`
	Gadget  *gadget.Gadget `json:"gadget"`
}

// confirmRequest is the request body for POST /gadgets/{id}/self-destruct.
type confirmRequest struct {
	ConfirmationCode string `json:"confirmationCode"`
}

// handleListGadgets returns all gadgets with mission assessments, optionally
// filtered by exact status via the ?status= query parameter.
func (s *Server) handleListGadgets(w http.ResponseWriter, r *http.Request) {
	var status *gadget.Status
	if v := r.URL.Query().Get("status"); v != "" {
		st := gadget.Status(v)
		status = &st
	}

	assessments, err := s.gadgets.List(r.Context(), status)
	if err != nil {
		s.logger.Error("gadget listing failed", "error", err)
		writeInternalError(w, "failed to list gadgets")
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}

// handleCreateGadget adds a new gadget to the armoury with a generated
// codename.
func (s *Server) handleCreateGadget(w http.ResponseWriter, r *http.Request) {
	g, err := s.gadgets.Create(r.Context())
	if err != nil {
		if errors.Is(err, gadget.ErrCodenameExhausted) {
			writeInternalError(w, "no unused codenames remain")
			return
		}
		s.logger.Error("gadget creation failed", "error", err)
		writeInternalError(w, "failed to create gadget")
		return
	}

	claims := claimsFromContext(r.Context())
	s.logger.Info("gadget created", "gadget_id", g.ID, "name", g.Name, "user_id", claims.Subject)
	s.broadcast(eventGadgetCreated, g)
	writeJSON(w, http.StatusCreated, g)
}

// handleUpdateGadget applies a partial update to a gadget's name and/or
// status.
func (s *Server) handleUpdateGadget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch gadget.UpdatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if patch.Name == nil && patch.Status == nil {
		writeBadRequest(w, "nothing to update: provide name and/or status")
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		writeBadRequest(w, "name must not be empty")
		return
	}

	g, err := s.gadgets.Update(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, gadget.ErrNotFound):
			writeNotFound(w, "gadget not found")
		case errors.Is(err, gadget.ErrInvalidStatus):
			writeBadRequest(w, "status must be one of Available, Deployed, Destroyed, Decommissioned")
		case errors.Is(err, gadget.ErrNameExists):
			writeBadRequest(w, "name already taken by another gadget")
		default:
			s.logger.Error("gadget update failed", "gadget_id", id, "error", err)
			writeInternalError(w, "failed to update gadget")
		}
		return
	}

	s.broadcast(eventGadgetUpdated, g)
	writeJSON(w, http.StatusOK, g)
}

// handleDecommissionGadget retires a gadget from service. The record is
// kept; only its status changes.
func (s *Server) handleDecommissionGadget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, err := s.gadgets.Decommission(r.Context(), id)
	if err != nil {
		if errors.Is(err, gadget.ErrNotFound) {
			writeNotFound(w, "gadget not found")
			return
		}
		s.logger.Error("gadget decommission failed", "gadget_id", id, "error", err)
		writeInternalError(w, "failed to decommission gadget")
		return
	}

	s.logger.Info("gadget decommissioned", "gadget_id", id)
	s.broadcast(eventGadgetDecommissioned, g)
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "gadget decommissioned",
		Gadget:  g,
	})
}

// handleGenerateSelfDestructCode issues a fresh confirmation code for a
// gadget, replacing any earlier pending code.
func (s *Server) handleGenerateSelfDestructCode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	code, err := s.gadgets.GenerateSelfDestructCode(r.Context(), id)
	if err != nil {
		if errors.Is(err, gadget.ErrNotFound) {
			writeNotFound(w, "gadget not found")
			return
		}
		s.logger.Error("code generation failed", "gadget_id", id, "error", err)
		writeInternalError(w, "failed to generate confirmation code")
		return
	}

	s.logger.Info("self-destruct armed", "gadget_id", id)
	s.broadcast(eventGadgetArmed, map[string]string{"id": id})
	writeJSON(w, http.StatusOK, generateCodeResponse{
		ConfirmationCode: code,
		Message:          "confirmation code generated",
		ExpiresIn:        int(gadget.CodeTTL().Seconds()),
	})
}

// handleConfirmSelfDestruct completes the destruction sequence. The code
// is checked before the gadget: no pending code is a 400, a wrong code a
// 403 (leaving the code pending), an unknown gadget a 404.
func (s *Server) handleConfirmSelfDestruct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	g, err := s.gadgets.ConfirmSelfDestruct(r.Context(), id, req.ConfirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, gadget.ErrNoPendingCode):
			writeBadRequest(w, "no confirmation code generated")
		case errors.Is(err, gadget.ErrCodeMismatch):
			writeForbidden(w, "confirmation code does not match")
		case errors.Is(err, gadget.ErrNotFound):
			writeNotFound(w, "gadget not found")
		default:
			s.logger.Error("self-destruct failed", "gadget_id", id, "error", err)
			writeInternalError(w, "failed to destroy gadget")
		}
		return
	}

	claims := claimsFromContext(r.Context())
	s.logger.Info("gadget destroyed", "gadget_id", id, "user_id", claims.Subject)
	s.broadcast(eventGadgetDestroyed, g)
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "gadget destroyed",
		Gadget:  g,
	})
}
