package handlers

import (
	"database/sql"
	"net/http"

	"github.com/AlexTLDR/valentine/internal/database"
	"github.com/AlexTLDR/valentine/internal/utils"
	"go.uber.org/zap"
)

const defaultGirlfriendName = "My Love"

// valentineResponseRequest is the body of POST /api/valentine-response
type valentineResponseRequest struct {
	Name     *string `json:"name"`
	Response *string `json:"response"`
	Message  *string `json:"message"`
}

type valentineResponseResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type statsResponse struct {
	TotalResponses int     `json:"total_responses"`
	YesResponses   int     `json:"yes_responses"`
	ResponseRate   float64 `json:"response_rate"`
}

// HandleValentineResponse records an answer to the invitation
func HandleValentineResponse(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req valentineResponseRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := requireField("response", req.Response); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := &database.Response{
			GirlfriendName: stringOr(req.Name, defaultGirlfriendName),
			Response:       *req.Response,
			Message:        sql.NullString{String: stringOr(req.Message, ""), Valid: true},
			CreatedAt:      s.Now(),
		}
		if addr := utils.ClientAddress(r, s.GetConfig().TrustProxy); addr != "" {
			resp.IPAddress = sql.NullString{String: addr, Valid: true}
		}

		if _, err := s.GetDB().CreateResponse(r.Context(), resp); err != nil {
			s.GetLogger().Error("failed to save valentine response", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to save response")
			return
		}

		visitor := Visitor{Name: resp.GirlfriendName, SaidYes: resp.SaidYes()}
		if err := s.SaveVisitor(w, r, visitor); err != nil {
			// The response is stored; only the personalisation is lost.
			s.GetLogger().Warn("failed to save session", zap.Error(err))
		}

		message := "Response saved!"
		if resp.SaidYes() {
			message = "Response saved! You made me so happy!"
		}
		writeJSON(w, http.StatusOK, valentineResponseResult{Success: true, Message: message})
	}
}

// HandleStats reports how many responses were submitted and how many said yes
func HandleStats(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.GetDB().GetResponseStats(r.Context())
		if err != nil {
			s.GetLogger().Error("failed to load stats", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load stats")
			return
		}

		writeJSON(w, http.StatusOK, statsResponse{
			TotalResponses: stats.Total,
			YesResponses:   stats.Yes,
			ResponseRate:   stats.YesRate(),
		})
	}
}
