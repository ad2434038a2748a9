package tournament

import (
	"time"

	"github.com/golfclub/registry/internal/member"
)

// Tournament is a scheduled competitive event. Members holds the one
// authoritative representation of enrollment, mapped onto the
// tournament_members join table; member records carry no mirror collection.
type Tournament struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"not null"`
	StartDate       time.Time       `json:"start_date" gorm:"column:start_date;not null"`
	EndDate         *time.Time      `json:"end_date" gorm:"column:end_date"`
	Location        string          `json:"location" gorm:"not null"`
	Description     string          `json:"description"`
	EntryFee        *float64        `json:"entry_fee" gorm:"column:entry_fee"`
	CashPrizeAmount *float64        `json:"cash_prize_amount" gorm:"column:cash_prize_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Members         []member.Member `json:"members" gorm:"many2many:tournament_members"`
}
