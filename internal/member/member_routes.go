package member

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MemberRoutes sets up all member-related routes
func MemberRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewMemberRepository(db)
	service := NewMemberService(repo)
	controller := NewMemberController(service)

	router.GET("/members", controller.GetAllMembers)
	router.GET("/members/:id", controller.GetMemberByID)
	router.POST("/members", controller.CreateMember)
	router.PUT("/members/:id", controller.UpdateMember)
	router.DELETE("/members/:id", controller.DeleteMember)

	router.GET("/members/search/name", controller.SearchByName)
	router.GET("/members/search/membership-type", controller.SearchByMembershipType)
	router.GET("/members/search/phone", controller.SearchByPhone)
	router.GET("/members/search/tournament-date", controller.SearchByTournamentDate)
}
