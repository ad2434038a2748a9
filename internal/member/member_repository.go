package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	FindAll() ([]Member, error)
	FindByID(id uint) (*Member, error)
	FindByEmail(email string) (*Member, error)
	Save(member *Member) error
	DeleteByID(id uint) error

	FindByNameContaining(name string) ([]Member, error)
	FindByMembershipType(membershipType MembershipType) ([]Member, error)
	FindByPhone(phone string) ([]Member, error)
	FindByTournamentStartDate(startDate time.Time) ([]Member, error)
	FindByTournamentStartDateAfter(startDate time.Time) ([]Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindAll() ([]Member, error) {
	var members []Member
	if err := r.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByID(id uint) (*Member, error) {
	var member Member
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Absence is routine, not an error
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(email string) (*Member, error) {
	var member Member
	if err := r.db.Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Save(member *Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepository) DeleteByID(id uint) error {
	return r.db.Delete(&Member{}, id).Error
}

// FindByNameContaining matches the name field case-insensitively on a
// substring. LOWER/LIKE rather than ILIKE so the query runs unchanged on
// the SQLite test database.
func (r *memberRepository) FindByNameContaining(name string) ([]Member, error) {
	var members []Member
	if err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByMembershipType(membershipType MembershipType) ([]Member, error) {
	var members []Member
	if err := r.db.Where("membership_type = ?", membershipType).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByPhone(phone string) ([]Member, error) {
	var members []Member
	if err := r.db.Where("phone = ?", phone).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByTournamentStartDate returns members enrolled in any tournament whose
// start date falls on the same calendar day as startDate. Truncation happens
// database-side; the connection timezone is pinned to UTC.
func (r *memberRepository) FindByTournamentStartDate(startDate time.Time) ([]Member, error) {
	var members []Member
	err := r.db.Distinct("members.*").
		Joins("JOIN tournament_members tm ON tm.member_id = members.id").
		Joins("JOIN tournaments t ON t.id = tm.tournament_id").
		Where("DATE(t.start_date) = DATE(?)", startDate).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindByTournamentStartDateAfter returns members enrolled in any tournament
// starting at or after the given instant. Unlike FindByTournamentStartDate
// this compares at full precision.
func (r *memberRepository) FindByTournamentStartDateAfter(startDate time.Time) ([]Member, error) {
	var members []Member
	err := r.db.Distinct("members.*").
		Joins("JOIN tournament_members tm ON tm.member_id = members.id").
		Joins("JOIN tournaments t ON t.id = tm.tournament_id").
		Where("t.start_date >= ?", startDate).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
