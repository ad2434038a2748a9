package tournament

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/golfclub/registry/internal/member"
)

// TournamentRoutes sets up all tournament-related routes
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB) {
	memberService := member.NewMemberService(member.NewMemberRepository(db))
	repo := NewTournamentRepository(db)
	service := NewTournamentService(repo, memberService)
	controller := NewTournamentController(service)

	router.GET("/tournaments", controller.GetAllTournaments)
	router.GET("/tournaments/:id", controller.GetTournamentByID)
	router.POST("/tournaments", controller.CreateTournament)
	router.PUT("/tournaments/:id", controller.UpdateTournament)
	router.DELETE("/tournaments/:id", controller.DeleteTournament)

	router.POST("/tournaments/:id/members/:member_id", controller.AddMemberToTournament)
	router.DELETE("/tournaments/:id/members/:member_id", controller.RemoveMemberFromTournament)
	router.GET("/tournaments/:id/members", controller.GetTournamentMembers)

	router.GET("/tournaments/search/start-date", controller.SearchByStartDate)
	router.GET("/tournaments/search/location", controller.SearchByLocation)
}
