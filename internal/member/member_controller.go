package member

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/golfclub/registry/pkg/responses"
	"github.com/golfclub/registry/pkg/validator"
)

// MemberController handles member-related HTTP requests
type MemberController struct {
	service MemberService
}

// NewMemberController creates a new member controller
func NewMemberController(service MemberService) *MemberController {
	return &MemberController{service: service}
}

// --- DTOs for requests ---

type MemberRequest struct {
	Name                 string         `json:"name" binding:"required,min=2,max=100"`
	Email                string         `json:"email" binding:"required,email"`
	Phone                string         `json:"phone" binding:"omitempty,phone"`
	Address              string         `json:"address" binding:"omitempty,max=200"`
	IsActive             bool           `json:"is_active"`
	MembershipType       MembershipType `json:"membership_type" binding:"omitempty,oneof=BASIC PREMIUM VIP"`
	DurationOfMembership string         `json:"duration_of_membership" binding:"omitempty,max=50"`
}

func (req *MemberRequest) toModel() Member {
	return Member{
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		Address:              req.Address,
		IsActive:             req.IsActive,
		MembershipType:       req.MembershipType,
		DurationOfMembership: req.DurationOfMembership,
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

// GetAllMembers godoc
// @Summary List all members
// @Tags Members
// @Produce json
// @Success 200 {array} Member
// @Failure 500 {object} responses.ErrorResponse
// @Router /members [get]
func (mc *MemberController) GetAllMembers(c *gin.Context) {
	members, err := mc.service.GetAllMembers()
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMemberByID godoc
// @Summary Get a member by id
// @Tags Members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} Member
// @Failure 404 "Member not found"
// @Router /members/{id} [get]
func (mc *MemberController) GetMemberByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := mc.service.GetMemberByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch member")
		return
	}
	if member == nil {
		responses.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateMember godoc
// @Summary Create a new member
// @Tags Members
// @Accept json
// @Produce json
// @Param member body MemberRequest true "Member to create"
// @Success 200 {object} Member
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Router /members [post]
func (mc *MemberController) CreateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := mc.service.GetMemberByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to create member")
		return
	}
	if existing != nil {
		responses.Conflict(c, "A member with this email already exists")
		return
	}

	member := req.toModel()
	if err := mc.service.SaveMember(&member); err != nil {
		responses.InternalServerError(c, "Failed to create member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateMember godoc
// @Summary Replace a member by id
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param member body MemberRequest true "Full replacement record"
// @Success 200 {object} Member
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 "Member not found"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Router /members/{id} [put]
func (mc *MemberController) UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := mc.service.GetMemberByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to update member")
		return
	}
	if existing == nil {
		responses.NotFound(c)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Email != existing.Email {
		other, err := mc.service.GetMemberByEmail(req.Email)
		if err != nil {
			responses.InternalServerError(c, "Failed to update member")
			return
		}
		if other != nil {
			responses.Conflict(c, "A member with this email already exists")
			return
		}
	}

	member := req.toModel()
	member.ID = id
	member.CreatedAt = existing.CreatedAt // stamped once, at creation
	if err := mc.service.SaveMember(&member); err != nil {
		responses.InternalServerError(c, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember godoc
// @Summary Delete a member by id
// @Tags Members
// @Param id path int true "Member ID"
// @Success 204 "Deleted"
// @Failure 404 "Member not found"
// @Router /members/{id} [delete]
func (mc *MemberController) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := mc.service.GetMemberByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to delete member")
		return
	}
	if existing == nil {
		responses.NotFound(c)
		return
	}

	if err := mc.service.DeleteMember(id); err != nil {
		responses.InternalServerError(c, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchByName godoc
// @Summary Search members by name substring (case-insensitive)
// @Tags Members
// @Produce json
// @Param name query string true "Name substring"
// @Success 200 {array} Member
// @Router /members/search/name [get]
func (mc *MemberController) SearchByName(c *gin.Context) {
	members, err := mc.service.FindByName(c.Query("name"))
	if err != nil {
		responses.InternalServerError(c, "Failed to search members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// SearchByMembershipType godoc
// @Summary Search members by membership type
// @Tags Members
// @Produce json
// @Param membershipType query string true "Membership type" Enums(BASIC, PREMIUM, VIP)
// @Success 200 {array} Member
// @Failure 400 {object} responses.ErrorResponse "Unknown membership type"
// @Router /members/search/membership-type [get]
func (mc *MemberController) SearchByMembershipType(c *gin.Context) {
	membershipType := MembershipType(c.Query("membershipType"))
	switch membershipType {
	case MembershipBasic, MembershipPremium, MembershipVIP:
	default:
		responses.BadRequest(c, "Unknown membership type", nil)
		return
	}

	members, err := mc.service.FindByMembershipType(membershipType)
	if err != nil {
		responses.InternalServerError(c, "Failed to search members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// SearchByPhone godoc
// @Summary Search members by exact phone number
// @Tags Members
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {array} Member
// @Router /members/search/phone [get]
func (mc *MemberController) SearchByPhone(c *gin.Context) {
	members, err := mc.service.FindByPhone(c.Query("phone"))
	if err != nil {
		responses.InternalServerError(c, "Failed to search members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// SearchByTournamentDate godoc
// @Summary Search members enrolled in tournaments starting on a calendar day
// @Tags Members
// @Produce json
// @Param startDate query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} Member
// @Failure 400 {object} responses.ErrorResponse "Malformed date"
// @Router /members/search/tournament-date [get]
func (mc *MemberController) SearchByTournamentDate(c *gin.Context) {
	// The query param is a plain calendar date; expand to midnight UTC
	// before the day-truncated match.
	startDate, err := time.ParseInLocation("2006-01-02", c.Query("startDate"), time.UTC)
	if err != nil {
		responses.BadRequest(c, "startDate must be formatted as YYYY-MM-DD", nil)
		return
	}

	members, err := mc.service.FindByTournamentStartDate(startDate)
	if err != nil {
		responses.InternalServerError(c, "Failed to search members")
		return
	}
	c.JSON(http.StatusOK, members)
}
