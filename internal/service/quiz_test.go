package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

type quizFixture struct {
	service *QuizService
	catalog *stubCatalog
	results *MockResultRepository
	tr      *failingTransactor
	storage *memStorage
}

func newQuizFixture(t *testing.T, length int, mode entities.QuizMode) *quizFixture {
	t.Helper()
	catalog := &stubCatalog{}
	catalog.set(testCatalog())
	settings := staticSettings{settings: &entities.UserSettings{QuizLength: length, QuizMode: mode}}
	results := new(MockResultRepository)
	tr := &failingTransactor{err: errors.New("database unavailable")}

	storage := newMemStorage()
	s := NewQuizService(catalog, settings, results, tr, storage, zap.NewNop())
	s.newRand = func() Rand { return seeded(1) }

	return &quizFixture{service: s, catalog: catalog, results: results, tr: tr, storage: storage}
}

// playThrough answers every question correctly and stops on the last one.
func playThrough(t *testing.T, s *QuizService, userID int64, snap entities.QuizSnapshot) entities.QuizSnapshot {
	t.Helper()
	var err error
	for {
		snap, err = s.Answer(userID, snap.SessionID, snap.Question.CorrectIndex())
		require.NoError(t, err)
		if snap.IsLast {
			return snap
		}
		snap, err = s.Next(userID, snap.SessionID)
		require.NoError(t, err)
	}
}

func TestQuizService_StartUsesSettings(t *testing.T) {
	f := newQuizFixture(t, 5, entities.QuizMode(entities.CategoryFood))

	snap, err := f.service.Start(context.Background(), 1, "")

	require.NoError(t, err)
	assert.Equal(t, entities.QuizInProgress, snap.State)
	assert.Equal(t, 4, snap.Total, "food mode has one question per country")
	assert.Equal(t, entities.CategoryFood, snap.Question.Category)
	assert.NotEmpty(t, snap.SessionID)
}

func TestQuizService_StartWithExplicitMode(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)

	snap, err := f.service.Start(context.Background(), 1, "language")

	require.NoError(t, err)
	assert.Equal(t, entities.QuizMode(entities.CategoryLanguage), snap.Mode)
	assert.Equal(t, 4, snap.Total)
}

func TestQuizService_StartErrors(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)

	_, err := f.service.Start(context.Background(), 1, "weather")
	assert.ErrorIs(t, err, ErrUnknownMode)

	f.catalog.set(nil)
	_, err = f.service.Start(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = f.service.Snapshot(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_SettingsFailureFallsBackToDefaults(t *testing.T) {
	catalog := &stubCatalog{}
	catalog.set(testCatalog())
	s := NewQuizService(catalog, staticSettings{err: errors.New("db down")},
		new(MockResultRepository), &failingTransactor{}, newMemStorage(), zap.NewNop())

	snap, err := s.Start(context.Background(), 1, "")

	require.NoError(t, err)
	assert.Equal(t, entities.DefaultQuizLength, snap.Total)
	assert.Equal(t, entities.ModeMixed, snap.Mode)
}

func TestQuizService_InvalidTransitions(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)

	got, err := f.service.Next(1, snap.SessionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, got.Position)

	_, err = f.service.Prev(1, snap.SessionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.service.Answer(1, snap.SessionID, 9)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.service.Finish(context.Background(), 1, snap.SessionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.service.Result(1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestQuizService_StaleSession(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	old, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)
	_, err = f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)

	_, err = f.service.Answer(1, old.SessionID, 0)
	assert.ErrorIs(t, err, ErrStaleSession)

	_, err = f.service.Next(2, old.SessionID)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_NavigationKeepsAnswers(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)

	snap, err = f.service.Answer(1, snap.SessionID, 2)
	require.NoError(t, err)
	selected := snap.Selected

	_, err = f.service.Next(1, snap.SessionID)
	require.NoError(t, err)
	snap, err = f.service.Prev(1, snap.SessionID)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Position)
	assert.True(t, snap.HasAnswer)
	assert.Equal(t, selected, snap.Selected)
}

func TestQuizService_FinishReturnsResultWhenSaveFails(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)
	snap = playThrough(t, f.service, 1, snap)
	require.True(t, snap.CanFinish)

	res, err := f.service.Finish(context.Background(), 1, snap.SessionID)

	require.NoError(t, err)
	assert.Equal(t, 1, f.tr.calls)
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, int64(1), res.UserID)
	assert.Equal(t, snap.SessionID, res.SessionID)
	assert.NotEmpty(t, res.ID)

	stored, err := f.service.Result(1)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Score)

	_, err = f.service.Answer(1, snap.SessionID, 0)
	assert.ErrorIs(t, err, ErrInvalidTransition, "completed quiz is frozen")
}

func TestQuizService_PlayAgainKeepsMode(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "holidays")
	require.NoError(t, err)
	snap = playThrough(t, f.service, 1, snap)
	_, err = f.service.Finish(context.Background(), 1, snap.SessionID)
	require.NoError(t, err)

	again, err := f.service.PlayAgain(context.Background(), 1, snap.SessionID)

	require.NoError(t, err)
	assert.Equal(t, entities.QuizInProgress, again.State)
	assert.Equal(t, entities.QuizMode(entities.CategoryHolidays), again.Mode)
	assert.NotEqual(t, snap.SessionID, again.SessionID)
}

func TestQuizService_PlayAgainWithoutQuiz(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)

	_, err := f.service.PlayAgain(context.Background(), 1, "sid")
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = f.service.PlayAgain(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrStaleSession)
}

func TestQuizService_PlayAgainKeepsRunningQuiz(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)
	snap, err = f.service.Answer(1, snap.SessionID, snap.Question.CorrectIndex())
	require.NoError(t, err)
	snap, err = f.service.Next(1, snap.SessionID)
	require.NoError(t, err)

	_, err = f.service.PlayAgain(context.Background(), 1, snap.SessionID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	current, err := f.service.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, snap.SessionID, current.SessionID)
	assert.Equal(t, entities.QuizInProgress, current.State)
	assert.Equal(t, 1, current.Position)
}

func TestQuizService_PlayAgainFromOldResult(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	first, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)
	first = playThrough(t, f.service, 1, first)
	_, err = f.service.Finish(context.Background(), 1, first.SessionID)
	require.NoError(t, err)
	second, err := f.service.PlayAgain(context.Background(), 1, first.SessionID)
	require.NoError(t, err)

	_, err = f.service.PlayAgain(context.Background(), 1, first.SessionID)
	assert.ErrorIs(t, err, ErrStaleSession)

	current, err := f.service.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, second.SessionID, current.SessionID)
}

func TestQuizService_Close(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.Close(2, "x"), ErrNoActiveQuiz)
	require.NoError(t, f.service.Close(1, snap.SessionID))

	_, err = f.service.Snapshot(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
	_, err = f.service.Answer(1, snap.SessionID, 0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
	_, ok := f.storage.Get(1)
	assert.False(t, ok, "closed quiz leaves no context behind")
}

func TestQuizService_CloseStaleSessionKeepsQuiz(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	snap, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.Close(1, "old"), ErrStaleSession)
	assert.ErrorIs(t, f.service.Close(1, ""), ErrStaleSession)

	current, err := f.service.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, snap.SessionID, current.SessionID)
}

func TestQuizService_Forget(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	_, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)

	f.service.Forget(1)
	f.service.Forget(2)

	_, ok := f.storage.Get(1)
	assert.False(t, ok)
	_, err = f.service.Snapshot(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_UsersAreIsolated(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	a, err := f.service.Start(context.Background(), 1, "")
	require.NoError(t, err)
	_, err = f.service.Start(context.Background(), 2, "")
	require.NoError(t, err)

	_, err = f.service.Answer(2, a.SessionID, 0)
	assert.ErrorIs(t, err, ErrStaleSession)

	_, err = f.service.Answer(1, a.SessionID, 0)
	assert.NoError(t, err)
}

func TestQuizService_History(t *testing.T) {
	f := newQuizFixture(t, 5, entities.ModeMixed)
	ctx := context.Background()
	want := []*entities.QuizResult{{Score: 4, Total: 5}}
	f.results.On("ListByUserID", ctx, int64(1), maxHistory).Return(want, nil)
	f.results.On("Summary", ctx, int64(1)).Return(&entities.ResultSummary{QuizzesTaken: 1}, nil)

	got, err := f.service.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	summary, err := f.service.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.QuizzesTaken)
}

func TestPerformanceMessage(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, "🌟 Outstanding! You're a true cultural expert!"},
		{90, "🌟 Outstanding! You're a true cultural expert!"},
		{89, "👏 Great job! You have solid cultural knowledge!"},
		{70, "👏 Great job! You have solid cultural knowledge!"},
		{50, "👍 Good effort! Keep exploring to learn more!"},
		{49, "🤔 Keep learning! There's so much culture to discover!"},
		{0, "🤔 Keep learning! There's so much culture to discover!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PerformanceMessage(tt.percentage))
	}
}
