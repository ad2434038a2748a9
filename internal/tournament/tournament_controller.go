package tournament

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/golfclub/registry/pkg/responses"
	"github.com/golfclub/registry/pkg/validator"
)

// TournamentController handles tournament-related HTTP requests, including
// enrollment.
type TournamentController struct {
	service TournamentService
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(service TournamentService) *TournamentController {
	return &TournamentController{service: service}
}

// --- DTOs for requests ---

type TournamentRequest struct {
	Name            string     `json:"name" binding:"required,min=3,max=100"`
	StartDate       time.Time  `json:"start_date" binding:"required"`
	EndDate         *time.Time `json:"end_date"`
	Location        string     `json:"location" binding:"required,max=100"`
	Description     string     `json:"description" binding:"omitempty,max=500"`
	EntryFee        *float64   `json:"entry_fee" binding:"omitempty,gte=0"`
	CashPrizeAmount *float64   `json:"cash_prize_amount" binding:"omitempty,gte=0"`
}

func (req *TournamentRequest) toModel() Tournament {
	return Tournament{
		Name:            req.Name,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		Description:     req.Description,
		EntryFee:        req.EntryFee,
		CashPrizeAmount: req.CashPrizeAmount,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid id parameter", nil)
		return 0, false
	}
	return uint(id), true
}

// --- Handlers ---

// GetAllTournaments godoc
// @Summary List all tournaments
// @Tags Tournaments
// @Produce json
// @Success 200 {array} Tournament
// @Failure 500 {object} responses.ErrorResponse
// @Router /tournaments [get]
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	tournaments, err := tc.service.GetAllTournaments()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournaments")
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

// GetTournamentByID godoc
// @Summary Get a tournament by id
// @Tags Tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} Tournament
// @Failure 404 "Tournament not found"
// @Router /tournaments/{id} [get]
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tournament, err := tc.service.GetTournamentByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament")
		return
	}
	if tournament == nil {
		responses.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// CreateTournament godoc
// @Summary Create a new tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body TournamentRequest true "Tournament to create"
// @Success 200 {object} Tournament
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req TournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	tournament := req.toModel()
	if err := tc.service.SaveTournament(&tournament); err != nil {
		responses.InternalServerError(c, "Failed to create tournament")
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// UpdateTournament godoc
// @Summary Replace a tournament by id
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param tournament body TournamentRequest true "Full replacement record"
// @Success 200 {object} Tournament
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 "Tournament not found"
// @Router /tournaments/{id} [put]
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := tc.service.GetTournamentByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to update tournament")
		return
	}
	if existing == nil {
		responses.NotFound(c)
		return
	}

	var req TournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	tournament := req.toModel()
	tournament.ID = id
	tournament.CreatedAt = existing.CreatedAt // stamped once, at creation
	if err := tc.service.SaveTournament(&tournament); err != nil {
		responses.InternalServerError(c, "Failed to update tournament")
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament godoc
// @Summary Delete a tournament by id
// @Tags Tournaments
// @Param id path int true "Tournament ID"
// @Success 204 "Deleted"
// @Failure 404 "Tournament not found"
// @Router /tournaments/{id} [delete]
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := tc.service.GetTournamentByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to delete tournament")
		return
	}
	if existing == nil {
		responses.NotFound(c)
		return
	}

	if err := tc.service.DeleteTournament(id); err != nil {
		responses.InternalServerError(c, "Failed to delete tournament")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMemberToTournament godoc
// @Summary Enroll a member in a tournament
// @Tags Tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Param member_id path int true "Member ID"
// @Success 200 {object} Tournament "Updated tournament"
// @Failure 404 "Tournament or member not found"
// @Router /tournaments/{id}/members/{member_id} [post]
func (tc *TournamentController) AddMemberToTournament(c *gin.Context) {
	tournamentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "member_id")
	if !ok {
		return
	}

	tournament, err := tc.service.AddMemberToTournament(tournamentID, memberID)
	if err != nil {
		responses.InternalServerError(c, "Failed to enroll member")
		return
	}
	if tournament == nil {
		responses.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// RemoveMemberFromTournament godoc
// @Summary Un-enroll a member from a tournament
// @Tags Tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Param member_id path int true "Member ID"
// @Success 200 {object} Tournament "Updated tournament"
// @Failure 404 "Tournament or member not found"
// @Router /tournaments/{id}/members/{member_id} [delete]
func (tc *TournamentController) RemoveMemberFromTournament(c *gin.Context) {
	tournamentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "member_id")
	if !ok {
		return
	}

	tournament, err := tc.service.RemoveMemberFromTournament(tournamentID, memberID)
	if err != nil {
		responses.InternalServerError(c, "Failed to un-enroll member")
		return
	}
	if tournament == nil {
		responses.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// GetTournamentMembers godoc
// @Summary List the members enrolled in a tournament
// @Tags Tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} member.Member
// @Failure 404 "Tournament not found"
// @Router /tournaments/{id}/members [get]
func (tc *TournamentController) GetTournamentMembers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tournament, err := tc.service.GetTournamentByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch tournament members")
		return
	}
	if tournament == nil {
		responses.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, tournament.Members)
}

// SearchByStartDate godoc
// @Summary Search tournaments starting on a calendar day
// @Tags Tournaments
// @Produce json
// @Param startDate query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} Tournament
// @Failure 400 {object} responses.ErrorResponse "Malformed date"
// @Router /tournaments/search/start-date [get]
func (tc *TournamentController) SearchByStartDate(c *gin.Context) {
	startDate, err := time.ParseInLocation("2006-01-02", c.Query("startDate"), time.UTC)
	if err != nil {
		responses.BadRequest(c, "startDate must be formatted as YYYY-MM-DD", nil)
		return
	}

	tournaments, err := tc.service.FindByStartDate(startDate)
	if err != nil {
		responses.InternalServerError(c, "Failed to search tournaments")
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

// SearchByLocation godoc
// @Summary Search tournaments by location substring (case-insensitive)
// @Tags Tournaments
// @Produce json
// @Param location query string true "Location substring"
// @Success 200 {array} Tournament
// @Router /tournaments/search/location [get]
func (tc *TournamentController) SearchByLocation(c *gin.Context) {
	tournaments, err := tc.service.FindByLocation(c.Query("location"))
	if err != nil {
		responses.InternalServerError(c, "Failed to search tournaments")
		return
	}
	c.JSON(http.StatusOK, tournaments)
}
