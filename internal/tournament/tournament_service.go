package tournament

import (
	"time"

	"github.com/golfclub/registry/internal/member"
)

// TournamentService wraps the repository and owns the enrollment mutations.
// Absence is always signaled by a nil result, never an error.
type TournamentService interface {
	GetAllTournaments() ([]Tournament, error)
	GetTournamentByID(id uint) (*Tournament, error)
	SaveTournament(tournament *Tournament) error
	DeleteTournament(id uint) error
	FindByStartDate(startDate time.Time) ([]Tournament, error)
	FindByLocation(location string) ([]Tournament, error)
	FindTournamentsByMemberID(memberID uint) ([]Tournament, error)

	AddMemberToTournament(tournamentID, memberID uint) (*Tournament, error)
	RemoveMemberFromTournament(tournamentID, memberID uint) (*Tournament, error)
}

type tournamentService struct {
	repo    TournamentRepository
	members member.MemberService
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(repo TournamentRepository, members member.MemberService) TournamentService {
	return &tournamentService{repo: repo, members: members}
}

func (s *tournamentService) GetAllTournaments() ([]Tournament, error) {
	return s.repo.FindAll()
}

func (s *tournamentService) GetTournamentByID(id uint) (*Tournament, error) {
	return s.repo.FindByID(id)
}

func (s *tournamentService) SaveTournament(tournament *Tournament) error {
	return s.repo.Save(tournament)
}

func (s *tournamentService) DeleteTournament(id uint) error {
	return s.repo.DeleteByID(id)
}

func (s *tournamentService) FindByStartDate(startDate time.Time) ([]Tournament, error) {
	return s.repo.FindByStartDate(startDate)
}

func (s *tournamentService) FindByLocation(location string) ([]Tournament, error) {
	return s.repo.FindByLocationContaining(location)
}

func (s *tournamentService) FindTournamentsByMemberID(memberID uint) ([]Tournament, error) {
	return s.repo.FindByMemberID(memberID)
}

// AddMemberToTournament enrolls a member. When either entity is absent it
// returns (nil, nil) and performs no mutation; re-enrolling an already
// enrolled member is idempotent.
func (s *tournamentService) AddMemberToTournament(tournamentID, memberID uint) (*Tournament, error) {
	tournament, m, err := s.lookupPair(tournamentID, memberID)
	if err != nil || tournament == nil {
		return nil, err
	}

	if err := s.repo.AddMember(tournament, m); err != nil {
		return nil, err
	}
	return s.repo.FindByID(tournamentID)
}

// RemoveMemberFromTournament un-enrolls a member. Removing a member who was
// never enrolled still returns the (unchanged) tournament.
func (s *tournamentService) RemoveMemberFromTournament(tournamentID, memberID uint) (*Tournament, error) {
	tournament, m, err := s.lookupPair(tournamentID, memberID)
	if err != nil || tournament == nil {
		return nil, err
	}

	if err := s.repo.RemoveMember(tournament, m); err != nil {
		return nil, err
	}
	return s.repo.FindByID(tournamentID)
}

func (s *tournamentService) lookupPair(tournamentID, memberID uint) (*Tournament, *member.Member, error) {
	tournament, err := s.repo.FindByID(tournamentID)
	if err != nil {
		return nil, nil, err
	}
	m, err := s.members.GetMemberByID(memberID)
	if err != nil {
		return nil, nil, err
	}
	if tournament == nil || m == nil {
		return nil, nil, nil
	}
	return tournament, m, nil
}
