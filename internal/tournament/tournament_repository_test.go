package tournament_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/golfclub/registry/internal/member"
	"github.com/golfclub/registry/internal/tournament"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&member.Member{}, &tournament.Tournament{}))
	return db
}

func newTournament(name string, start time.Time) *tournament.Tournament {
	return &tournament.Tournament{
		Name:      name,
		StartDate: start,
		Location:  "Augusta National",
	}
}

func saveMember(t *testing.T, db *gorm.DB, name, email string) *member.Member {
	t.Helper()
	m := &member.Member{Name: name, Email: email, MembershipType: member.MembershipBasic}
	require.NoError(t, member.NewMemberRepository(db).Save(m))
	return m
}

func TestTournamentRepository_SaveAndFindByID(t *testing.T) {
	repo := tournament.NewTournamentRepository(setupTestDB(t))

	fee := 50.0
	tr := newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))
	tr.Description = "Season opener"
	tr.EntryFee = &fee
	require.NoError(t, repo.Save(tr))
	assert.NotZero(t, tr.ID)
	assert.False(t, tr.CreatedAt.IsZero())
	assert.False(t, tr.UpdatedAt.IsZero())

	got, err := repo.FindByID(tr.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Spring Open", got.Name)
	require.NotNil(t, got.EntryFee)
	assert.Equal(t, 50.0, *got.EntryFee)
	assert.Empty(t, got.Members)
}

func TestTournamentRepository_FindByIDAbsent(t *testing.T) {
	repo := tournament.NewTournamentRepository(setupTestDB(t))

	got, err := repo.FindByID(7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTournamentRepository_FindByStartDateMatchesCalendarDay(t *testing.T) {
	repo := tournament.NewTournamentRepository(setupTestDB(t))

	require.NoError(t, repo.Save(newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(newTournament("Night Cup", time.Date(2024, 4, 16, 0, 1, 0, 0, time.UTC))))

	got, err := repo.FindByStartDate(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Spring Open", got[0].Name)
}

func TestTournamentRepository_FindByStartDateAfterIsInclusiveFullPrecision(t *testing.T) {
	repo := tournament.NewTournamentRepository(setupTestDB(t))

	require.NoError(t, repo.Save(newTournament("Winter Classic", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(newTournament("Summer Invitational", time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC))))

	got, err := repo.FindByStartDateAfter(time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Exactly the stored instant still matches.
	exact, err := repo.FindByStartDateAfter(time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "Summer Invitational", exact[0].Name)
}

func TestTournamentRepository_FindByLocationContainingIsCaseInsensitive(t *testing.T) {
	repo := tournament.NewTournamentRepository(setupTestDB(t))

	require.NoError(t, repo.Save(newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))))

	for _, q := range []string{"augusta", "AUGUSTA", "gusta"} {
		got, err := repo.FindByLocationContaining(q)
		require.NoError(t, err)
		assert.Len(t, got, 1, "query %q", q)
	}

	none, err := repo.FindByLocationContaining("pebble")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTournamentRepository_AddMemberMirrorsBothDirections(t *testing.T) {
	db := setupTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	john := saveMember(t, db, "John Doe", "john@x.com")
	tr := newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(tr))

	require.NoError(t, repo.AddMember(tr, john))

	// Tournament side: member list includes John.
	got, err := repo.FindByID(tr.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
	assert.Equal(t, john.ID, got.Members[0].ID)

	// Member side: the derived projection includes the tournament.
	enrolled, err := repo.FindByMemberID(john.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, tr.ID, enrolled[0].ID)
}

func TestTournamentRepository_AddMemberIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	john := saveMember(t, db, "John Doe", "john@x.com")
	tr := newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(tr))

	require.NoError(t, repo.AddMember(tr, john))
	require.NoError(t, repo.AddMember(tr, john))

	got, err := repo.FindByID(tr.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 1)
}

func TestTournamentRepository_RemoveMember(t *testing.T) {
	db := setupTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	john := saveMember(t, db, "John Doe", "john@x.com")
	tr := newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(tr))
	require.NoError(t, repo.AddMember(tr, john))

	require.NoError(t, repo.RemoveMember(tr, john))

	got, err := repo.FindByID(tr.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)

	enrolled, err := repo.FindByMemberID(john.ID)
	require.NoError(t, err)
	assert.Empty(t, enrolled)

	// Removing a member who was never enrolled is a no-op.
	assert.NoError(t, repo.RemoveMember(tr, john))
}

func TestTournamentRepository_FindByMemberIDUnknownMemberIsEmpty(t *testing.T) {
	repo := tournament.NewTournamentRepository(setupTestDB(t))

	got, err := repo.FindByMemberID(123)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTournamentRepository_DeleteByIDRemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	repo := tournament.NewTournamentRepository(db)

	john := saveMember(t, db, "John Doe", "john@x.com")
	tr := newTournament("Spring Open", time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(tr))
	require.NoError(t, repo.AddMember(tr, john))

	require.NoError(t, repo.DeleteByID(tr.ID))

	got, err := repo.FindByID(tr.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	enrolled, err := repo.FindByMemberID(john.ID)
	require.NoError(t, err)
	assert.Empty(t, enrolled)

	// The member itself is untouched.
	m, err := member.NewMemberRepository(db).FindByID(john.ID)
	require.NoError(t, err)
	assert.NotNil(t, m)
}
