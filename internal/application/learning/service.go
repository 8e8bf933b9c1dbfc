package learning

import (
	"context"
	"errors"
	"time"

	"learn2trade-backend/internal/domain"

	"gorm.io/gorm"
)

// ErrUnknownLesson rejects completion of a lesson the catalog does not have.
var ErrUnknownLesson = errors.New("Unknown course or lesson")

// Service tracks per-user lesson completion against the embedded catalog.
type Service struct {
	DB *gorm.DB
}

// CategoryProgress summarizes one category for a user.
type CategoryProgress struct {
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
	Lessons   map[string]bool `json:"lessons"`
}

// ProgressReport is the user's overall learning state.
type ProgressReport struct {
	Categories      map[string]CategoryProgress `json:"categories"`
	CompletedTotal  int                         `json:"completed_total"`
	LessonTotal     int                         `json:"lesson_total"`
	ProgressPercent float64                     `json:"progress_percent"`
}

// CompleteLesson marks a lesson done. Idempotent: completing an already
// completed lesson reports newlyCompleted == false and changes nothing.
func (s *Service) CompleteLesson(ctx context.Context, userID uint, category, lesson string) (bool, error) {
	if !lessonExists(category, lesson) {
		return false, ErrUnknownLesson
	}

	newlyCompleted := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.LessonProgress
		err := tx.Where("user_id = ? AND course_category = ? AND lesson_name = ?",
			userID, category, lesson).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			now := time.Now()
			newlyCompleted = true
			return tx.Create(&domain.LessonProgress{
				UserID:         userID,
				CourseCategory: category,
				LessonName:     lesson,
				Completed:      true,
				CompletedAt:    &now,
			}).Error
		case err != nil:
			return err
		case existing.Completed:
			return nil
		default:
			now := time.Now()
			newlyCompleted = true
			return tx.Model(&existing).Updates(map[string]interface{}{
				"completed":    true,
				"completed_at": now,
			}).Error
		}
	})
	if err != nil {
		return false, err
	}
	return newlyCompleted, nil
}

// Progress reports completion per category plus the overall percentage.
// Categories with no rows yet still appear with zero counts.
func (s *Service) Progress(ctx context.Context, userID uint) (*ProgressReport, error) {
	var rows []domain.LessonProgress
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	report := &ProgressReport{
		Categories:  make(map[string]CategoryProgress),
		LessonTotal: totalLessons(),
	}
	for _, c := range catalog {
		report.Categories[c.Category] = CategoryProgress{
			Total:   len(c.Lessons),
			Lessons: make(map[string]bool),
		}
	}
	for _, row := range rows {
		cp, ok := report.Categories[row.CourseCategory]
		if !ok {
			// row from a lesson dropped from the catalog; skip
			continue
		}
		cp.Lessons[row.LessonName] = row.Completed
		if row.Completed {
			cp.Completed++
			report.CompletedTotal++
		}
		report.Categories[row.CourseCategory] = cp
	}
	if report.LessonTotal > 0 {
		report.ProgressPercent = float64(report.CompletedTotal) / float64(report.LessonTotal) * 100
	}
	return report, nil
}
