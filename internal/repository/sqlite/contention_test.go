package sqlite_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/eligesaludable/internal/models"
	"github.com/vytor/eligesaludable/internal/repository"
	"github.com/vytor/eligesaludable/internal/repository/sqlite"
	"github.com/vytor/eligesaludable/internal/scoring"
	"github.com/vytor/eligesaludable/internal/testutil"
)

func TestConcurrentAnswersAndFinalize_FileBacked(t *testing.T) {
	ctx := context.Background()
	sqlDB := testutil.NewFileTestDB(t, 8)
	defer testutil.MustClose(t, sqlDB)

	sessions := sqlite.NewSessionRepository(sqlDB)
	playerID := testutil.InsertPlayer(t, sqlDB, "Ana", 0)
	session, err := sessions.Create(ctx, playerID, scoring.DefaultLives, time.Now().UTC())
	require.NoError(t, err)

	const answers, finalizers = 50, 5
	var wg sync.WaitGroup
	answerErrs := make(chan error, answers)
	finalizeErrs := make(chan error, finalizers)

	for i := 0; i < answers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			elapsed := float64(i % 10)
			_, err := sessions.RecordAnswer(ctx, models.Answer{
				SessionID:      session.ID,
				LevelID:        1,
				FoodID:         1,
				Correct:        true,
				ElapsedSeconds: elapsed,
				Points:         scoring.Points(true, elapsed),
			})
			answerErrs <- err
		}(i)
	}
	for i := 0; i < finalizers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sessions.Finalize(ctx, session.ID, 1, time.Now().UTC())
			finalizeErrs <- err
		}()
	}
	wg.Wait()
	close(answerErrs)
	close(finalizeErrs)

	for err := range answerErrs {
		if err != nil {
			assert.ErrorIs(t, err, repository.ErrSessionClosed, "answers fail only once the session is closed")
		}
	}
	finalized := 0
	for err := range finalizeErrs {
		if err == nil {
			finalized++
			continue
		}
		assert.True(t, errors.Is(err, repository.ErrSessionClosed), "unexpected finalize error: %v", err)
	}
	assert.Equal(t, 1, finalized, "exactly one finalize wins")

	var total, sum, summaries, summaryScore int
	require.NoError(t, sqlDB.QueryRowContext(ctx, `SELECT puntuacion_total FROM partida WHERE id = ?`, session.ID).Scan(&total))
	require.NoError(t, sqlDB.QueryRowContext(ctx, `SELECT COALESCE(SUM(puntos_obtenidos), 0) FROM respuesta WHERE partida_id = ?`, session.ID).Scan(&sum))
	require.NoError(t, sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resumen_resultados WHERE partida_id = ?`, session.ID).Scan(&summaries))
	require.NoError(t, sqlDB.QueryRowContext(ctx, `SELECT puntuacion_total FROM resumen_resultados WHERE partida_id = ?`, session.ID).Scan(&summaryScore))

	assert.Equal(t, sum, total, "score equals the sum of stored answers")
	assert.Equal(t, 1, summaries)
	assert.Equal(t, total, summaryScore, "no answer lands after the summary is taken")
}

func TestConcurrentAnswers_FileBacked(t *testing.T) {
	ctx := context.Background()
	sqlDB := testutil.NewFileTestDB(t, 8)
	defer testutil.MustClose(t, sqlDB)

	sessions := sqlite.NewSessionRepository(sqlDB)
	session, err := sessions.Create(ctx, 1, scoring.DefaultLives, time.Now().UTC())
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sessions.RecordAnswer(ctx, models.Answer{
				SessionID: session.ID, LevelID: 1, FoodID: 1, Correct: true, Points: scoring.MaxPoints,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, n*scoring.MaxPoints, got.TotalScore)
}
