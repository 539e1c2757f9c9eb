package models

import "time"

// Review представляет отзыв по завершенному проекту.
// Отзыв оставляет одна из двух сторон проекта, один раз на проект.
type Review struct {
	ID           int64     `json:"id"`            // ID отзыва
	ProjectID    int64     `json:"project"`       // ID проекта
	ProjectTitle string    `json:"project_title"` // заголовок проекта (read-only)
	ReviewerID   int64     `json:"reviewer"`      // кто оставил отзыв
	ReviewerName string    `json:"reviewer_name"` // username автора (read-only)
	RevieweeID   int64     `json:"reviewee"`      // о ком отзыв
	RevieweeName string    `json:"reviewee_name"` // username адресата (read-only)
	Rating       int       `json:"rating"`        // оценка от 1 до 5
	Comment      string    `json:"comment"`       // текст отзыва
	CreatedAt    time.Time `json:"created_at"`    // время создания
}
