package member

import "time"

// MemberService is a thin pass-through over the repository; it exists so the
// HTTP layer never talks to storage directly.
type MemberService interface {
	GetAllMembers() ([]Member, error)
	GetMemberByID(id uint) (*Member, error)
	GetMemberByEmail(email string) (*Member, error)
	SaveMember(member *Member) error
	DeleteMember(id uint) error
	FindByName(name string) ([]Member, error)
	FindByMembershipType(membershipType MembershipType) ([]Member, error)
	FindByPhone(phone string) ([]Member, error)
	FindByTournamentStartDate(startDate time.Time) ([]Member, error)
}

type memberService struct {
	repo MemberRepository
}

// NewMemberService creates a new MemberService backed by repo.
func NewMemberService(repo MemberRepository) MemberService {
	return &memberService{repo: repo}
}

func (s *memberService) GetAllMembers() ([]Member, error) {
	return s.repo.FindAll()
}

func (s *memberService) GetMemberByID(id uint) (*Member, error) {
	return s.repo.FindByID(id)
}

func (s *memberService) GetMemberByEmail(email string) (*Member, error) {
	return s.repo.FindByEmail(email)
}

func (s *memberService) SaveMember(member *Member) error {
	return s.repo.Save(member)
}

func (s *memberService) DeleteMember(id uint) error {
	return s.repo.DeleteByID(id)
}

func (s *memberService) FindByName(name string) ([]Member, error) {
	return s.repo.FindByNameContaining(name)
}

func (s *memberService) FindByMembershipType(membershipType MembershipType) ([]Member, error) {
	return s.repo.FindByMembershipType(membershipType)
}

func (s *memberService) FindByPhone(phone string) ([]Member, error) {
	return s.repo.FindByPhone(phone)
}

func (s *memberService) FindByTournamentStartDate(startDate time.Time) ([]Member, error) {
	return s.repo.FindByTournamentStartDate(startDate)
}
