package tournament

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/golfclub/registry/internal/member"
)

// TournamentRepository defines the interface for tournament data operations,
// including the enrollment join table it owns.
type TournamentRepository interface {
	FindAll() ([]Tournament, error)
	FindByID(id uint) (*Tournament, error)
	Save(tournament *Tournament) error
	DeleteByID(id uint) error

	// FindByStartDate matches on calendar day; FindByStartDateAfter is an
	// inclusive full-precision lower bound. The two are deliberately
	// different filters.
	FindByStartDate(startDate time.Time) ([]Tournament, error)
	FindByStartDateAfter(startDate time.Time) ([]Tournament, error)
	FindByLocationContaining(location string) ([]Tournament, error)
	FindByMemberID(memberID uint) ([]Tournament, error)

	AddMember(tournament *Tournament, m *member.Member) error
	RemoveMember(tournament *Tournament, m *member.Member) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) FindAll() ([]Tournament, error) {
	var tournaments []Tournament
	if err := r.db.Preload("Members").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *tournamentRepository) FindByID(id uint) (*Tournament, error) {
	var tournament Tournament
	if err := r.db.Preload("Members").First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *tournamentRepository) Save(tournament *Tournament) error {
	// Omit Members so a full-record save never rewrites enrollment;
	// the join table only changes through AddMember/RemoveMember.
	return r.db.Omit("Members").Save(tournament).Error
}

func (r *tournamentRepository) DeleteByID(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM tournament_members WHERE tournament_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Tournament{}, id).Error
	})
}

func (r *tournamentRepository) FindByStartDate(startDate time.Time) ([]Tournament, error) {
	var tournaments []Tournament
	err := r.db.Preload("Members").
		Where("DATE(start_date) = DATE(?)", startDate).
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *tournamentRepository) FindByStartDateAfter(startDate time.Time) ([]Tournament, error) {
	var tournaments []Tournament
	err := r.db.Preload("Members").
		Where("start_date >= ?", startDate).
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *tournamentRepository) FindByLocationContaining(location string) ([]Tournament, error) {
	var tournaments []Tournament
	err := r.db.Preload("Members").
		Where("LOWER(location) LIKE LOWER(?)", "%"+location+"%").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// FindByMemberID returns the tournaments a member is enrolled in. An unknown
// or unenrolled member id yields an empty slice, not an error.
func (r *tournamentRepository) FindByMemberID(memberID uint) ([]Tournament, error) {
	var tournaments []Tournament
	err := r.db.Preload("Members").
		Joins("JOIN tournament_members tm ON tm.tournament_id = tournaments.id").
		Where("tm.member_id = ?", memberID).
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// AddMember enrolls m in one transaction: the join row and the updated_at
// touch land atomically, so a concurrent reader never sees a half-applied
// enrollment. Appending an already-enrolled member is a no-op upsert.
func (r *tournamentRepository) AddMember(tournament *Tournament, m *member.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tournament).Association("Members").Append(m); err != nil {
			return err
		}
		return tx.Model(tournament).UpdateColumn("updated_at", time.Now().UTC()).Error
	})
}

// RemoveMember is the inverse of AddMember; removing a member who was never
// enrolled leaves the join table untouched and is not an error.
func (r *tournamentRepository) RemoveMember(tournament *Tournament, m *member.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tournament).Association("Members").Delete(m); err != nil {
			return err
		}
		return tx.Model(tournament).UpdateColumn("updated_at", time.Now().UTC()).Error
	})
}
