package member

import (
	"time"
)

// MembershipType enumerates the club membership tiers.
type MembershipType string

const (
	MembershipBasic   MembershipType = "BASIC"
	MembershipPremium MembershipType = "PREMIUM"
	MembershipVIP     MembershipType = "VIP"
)

// Member is a golf club member record. The tournaments a member is enrolled
// in are not mirrored here: enrollment is owned by the tournament side and
// the member-side view is served by join queries, so the two can never
// drift apart.
type Member struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	Name                 string         `json:"name" gorm:"not null"`
	Email                string         `json:"email" gorm:"uniqueIndex;not null"`
	Phone                string         `json:"phone"`
	Address              string         `json:"address"`
	IsActive             bool           `json:"is_active" gorm:"column:is_active"`
	MembershipType       MembershipType `json:"membership_type" gorm:"column:membership_type"`
	DurationOfMembership string         `json:"duration_of_membership" gorm:"column:duration_of_membership"`
	CreatedAt            time.Time      `json:"created_at"`
}
