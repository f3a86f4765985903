package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
	"github.com/vytor/eligesaludable/internal/repository/sqlite"
	"github.com/vytor/eligesaludable/internal/scoring"
	"github.com/vytor/eligesaludable/internal/testutil"
)

type SummaryRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	repo     repository.SummaryRepository
	sessions repository.SessionRepository
}

func (s *SummaryRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSummaryRepository(s.db)
	s.sessions = sqlite.NewSessionRepository(s.db)
}

func (s *SummaryRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

// play runs a full session whose score is the sum of instant correct answers
// worth 100 points each plus one slow answer worth 10.
func (s *SummaryRepositorySuite) play(name string, instantCorrect int, slow bool) *models.ResultSummary {
	ctx := context.Background()
	playerID := testutil.InsertPlayer(s.T(), s.db, name, 0)
	session, err := s.sessions.Create(ctx, playerID, scoring.DefaultLives, time.Now().UTC())
	s.Require().NoError(err)

	record := func(elapsed float64) {
		_, err := s.sessions.RecordAnswer(ctx, models.Answer{
			SessionID: session.ID, LevelID: 1, FoodID: 1, Correct: true,
			ElapsedSeconds: elapsed, Points: scoring.Points(true, elapsed),
		})
		s.Require().NoError(err)
	}
	for i := 0; i < instantCorrect; i++ {
		record(0)
	}
	if slow {
		record(120)
	}

	summary, err := s.sessions.Finalize(ctx, session.ID, 1, time.Now().UTC())
	s.Require().NoError(err)
	return summary
}

func (s *SummaryRepositorySuite) TestGetBySession() {
	played := s.play("Ana", 2, false)

	got, err := s.repo.GetBySession(context.Background(), played.SessionID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(played.ID, got.ID)
	s.Assert().Equal("Ana", got.PlayerName)
	s.Assert().Equal(200, got.TotalScore)
	s.Assert().Equal(100, got.AccuracyPct)

	missing, err := s.repo.GetBySession(context.Background(), 9999)
	s.Require().NoError(err)
	s.Assert().Nil(missing)
}

func (s *SummaryRepositorySuite) TestPodium_RanksLive() {
	low := s.play("Bea", 1, false) // 100, rank 1 when finalized
	s.Require().Equal(1, low.Position)
	s.play("Carlos", 3, false) // 300
	s.play("Dani", 1, false)   // 100, ties Bea

	podium, err := s.repo.Podium(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(podium, 3)

	s.Assert().Equal(models.PodiumEntry{Name: "Carlos", Score: 300, Position: 1}, podium[0])
	s.Assert().Equal(models.PodiumEntry{Name: "Bea", Score: 100, Position: 2}, podium[1], "stored rank 1 is superseded")
	s.Assert().Equal(models.PodiumEntry{Name: "Dani", Score: 100, Position: 2}, podium[2])

	stored, err := s.repo.GetBySession(context.Background(), low.SessionID)
	s.Require().NoError(err)
	s.Assert().Equal(1, stored.Position, "historical rank is kept")
}

func (s *SummaryRepositorySuite) TestPodium_TopTen() {
	for i := 0; i < 12; i++ {
		s.play(fmt.Sprintf("p%02d", i), i%4, true)
	}

	podium, err := s.repo.Podium(context.Background(), 10)
	s.Require().NoError(err)
	s.Require().Len(podium, 10)
	for i := 1; i < len(podium); i++ {
		s.Assert().LessOrEqual(podium[i-1].Position, podium[i].Position)
		s.Assert().GreaterOrEqual(podium[i-1].Score, podium[i].Score)
	}
	s.Assert().Equal(310, podium[0].Score)
}

func (s *SummaryRepositorySuite) TestPodium_Empty() {
	podium, err := s.repo.Podium(context.Background(), 10)
	s.Require().NoError(err)
	s.Assert().NotNil(podium)
	s.Assert().Empty(podium)
}

func TestSummaryRepositorySuite(t *testing.T) {
	suite.Run(t, new(SummaryRepositorySuite))
}
