package handlers

import (
	"io"
	"net/http"

	apperrors "knockout-tournament-backend/internal/errors"
	"knockout-tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxImportSize bounds the import document read from the request body
const maxImportSize = 5 << 20

// TournamentHandler handles HTTP requests for the bracket and its results
type TournamentHandler struct {
	tournamentService service.TournamentServiceInterface
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(tournamentService service.TournamentServiceInterface) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// GetState handles GET /tournament
// @Summary Get tournament state
// @Description Get the roster, all matches with their status, the bye team and the champion
// @Tags tournament
// @Produce json
// @Success 200 {object} service.StateResponse "Current tournament"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tournament [get]
func (h *TournamentHandler) GetState(c *gin.Context) {
	state, err := h.tournamentService.GetState(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GenerateBracket handles POST /tournament/bracket
// @Summary Generate the bracket
// @Description Shuffle the seven teams into three quarterfinals and a bye, and start the tournament
// @Tags tournament
// @Produce json
// @Success 201 {object} service.StateResponse "Bracket generated"
// @Failure 409 {object} ErrorResponse "Roster is not seven teams or tournament already started"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tournament/bracket [post]
func (h *TournamentHandler) GenerateBracket(c *gin.Context) {
	state, err := h.tournamentService.GenerateBracket(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// SetScore handles PUT /tournament/matches/:id/score
// @Summary Enter a score
// @Description Set the score of one slot of a match; non-numeric or negative values count as 0
// @Tags tournament
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param score body service.SetScoreRequest true "Slot and value"
// @Success 200 {object} service.MatchResponse "Updated match"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Match is confirmed or slot has no team"
// @Router /tournament/matches/{id}/score [put]
func (h *TournamentHandler) SetScore(c *gin.Context) {
	var req service.SetScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.tournamentService.SetScore(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// ConfirmResult handles POST /tournament/matches/:id/confirm
// @Summary Confirm a result
// @Description Freeze a match, decide the winner and advance it into the next match
// @Tags tournament
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} service.ConfirmResultResponse "Confirmed match, updated successor and champion"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Tied, incomplete, not ready or already confirmed"
// @Router /tournament/matches/{id}/confirm [post]
func (h *TournamentHandler) ConfirmResult(c *gin.Context) {
	result, err := h.tournamentService.ConfirmResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Reset handles POST /tournament/reset
// @Summary Reset the tournament
// @Description Restore the default roster, drop all matches and clear the persisted state
// @Tags tournament
// @Produce json
// @Success 200 {object} service.StateResponse "Fresh tournament"
// @Router /tournament/reset [post]
func (h *TournamentHandler) Reset(c *gin.Context) {
	state, err := h.tournamentService.Reset(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Export handles GET /tournament/export
// @Summary Export the tournament
// @Description Download teams, matches and the started flag as a JSON document
// @Tags tournament
// @Produce json
// @Success 200 {file} file "tournament-YYYY-MM-DD.json"
// @Router /tournament/export [get]
func (h *TournamentHandler) Export(c *gin.Context) {
	export, err := h.tournamentService.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "application/json", export.Body)
}

// Import handles POST /tournament/import
// @Summary Import a tournament
// @Description Replace teams, matches and/or the started flag with the fields present in the document
// @Tags tournament
// @Accept json
// @Produce json
// @Param document body object true "Exported tournament document"
// @Success 200 {object} service.StateResponse "Imported tournament"
// @Failure 400 {object} ErrorResponse "Malformed document"
// @Router /tournament/import [post]
func (h *TournamentHandler) Import(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body) > maxImportSize {
		respondError(c, apperrors.NewMalformedImportError("document is too large"))
		return
	}

	state, err := h.tournamentService.Import(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ArchiveSnapshot handles POST /tournament/archive
// @Summary Archive a snapshot
// @Description Upload the current export document to the snapshot archive
// @Tags tournament
// @Produce json
// @Success 201 {object} map[string]interface{} "Archive location"
// @Failure 400 {object} ErrorResponse "Archiving is not configured"
// @Failure 500 {object} ErrorResponse "Upload failed"
// @Router /tournament/archive [post]
func (h *TournamentHandler) ArchiveSnapshot(c *gin.Context) {
	location, err := h.tournamentService.ArchiveSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": location})
}
