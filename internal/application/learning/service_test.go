package learning

import (
	"context"
	"testing"

	"learn2trade-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupLearningTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.LessonProgress{}))
	return &Service{DB: db}
}

func TestCatalog_Shape(t *testing.T) {
	courses := Catalog()
	assert.Len(t, courses, 5)
	assert.Equal(t, 9, totalLessons())
	assert.Equal(t, "Basics", courses[0].Category)
}

func TestCompleteLesson_Idempotent(t *testing.T) {
	svc := setupLearningTest(t)
	ctx := context.Background()

	newly, err := svc.CompleteLesson(ctx, 1, "Basics", "What is Stock Market?")
	require.NoError(t, err)
	assert.True(t, newly)

	newly, err = svc.CompleteLesson(ctx, 1, "Basics", "What is Stock Market?")
	require.NoError(t, err)
	assert.False(t, newly)

	report, err := svc.Progress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, report.CompletedTotal)
}

func TestCompleteLesson_UnknownLesson(t *testing.T) {
	svc := setupLearningTest(t)
	ctx := context.Background()

	_, err := svc.CompleteLesson(ctx, 1, "Basics", "Not a lesson")
	assert.ErrorIs(t, err, ErrUnknownLesson)

	_, err = svc.CompleteLesson(ctx, 1, "Nope", "What is Stock Market?")
	assert.ErrorIs(t, err, ErrUnknownLesson)
}

func TestProgress_EmptyUserSeesFullCatalog(t *testing.T) {
	svc := setupLearningTest(t)

	report, err := svc.Progress(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, report.Categories, 5)
	assert.Equal(t, 0, report.CompletedTotal)
	assert.Equal(t, 9, report.LessonTotal)
	assert.Zero(t, report.ProgressPercent)
	assert.Equal(t, 3, report.Categories["Basics"].Total)
}

func TestProgress_PercentAcrossCategories(t *testing.T) {
	svc := setupLearningTest(t)
	ctx := context.Background()

	done := [][2]string{
		{"Basics", "What is Stock Market?"},
		{"Basics", "Stock Market Basics"},
		{"Psychology", "Trading Psychology"},
	}
	for _, d := range done {
		_, err := svc.CompleteLesson(ctx, 1, d[0], d[1])
		require.NoError(t, err)
	}

	report, err := svc.Progress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, report.CompletedTotal)
	assert.Equal(t, 2, report.Categories["Basics"].Completed)
	assert.Equal(t, 1, report.Categories["Psychology"].Completed)
	assert.InDelta(t, 100.0*3/9, report.ProgressPercent, 0.01)
	assert.True(t, report.Categories["Basics"].Lessons["Stock Market Basics"])
}
