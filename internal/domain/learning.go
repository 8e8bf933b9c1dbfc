package domain

import (
	"time"
)

// LessonProgress marks one lesson a user has completed. The unique triple
// makes completion idempotent at the storage level.
type LessonProgress struct {
	ID             uint       `gorm:"column:id;primaryKey" json:"id"`
	UserID         uint       `gorm:"column:user_id;not null;uniqueIndex:idx_learning_user_category_lesson" json:"user_id"`
	CourseCategory string     `gorm:"column:course_category;type:varchar(100);not null;uniqueIndex:idx_learning_user_category_lesson" json:"course_category"`
	LessonName     string     `gorm:"column:lesson_name;type:varchar(200);not null;uniqueIndex:idx_learning_user_category_lesson" json:"lesson_name"`
	Completed      bool       `gorm:"column:completed;not null;default:false" json:"completed"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (LessonProgress) TableName() string {
	return "learning_progress"
}
