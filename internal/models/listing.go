package models

import "time"

// ProjectStatus представляет статус проекта сборки
type ProjectStatus string

// Статусы жизненного цикла проекта
const (
	StatusOpen       ProjectStatus = "open"        // открыт, ждет сборщика
	StatusInProgress ProjectStatus = "in_progress" // сборщик назначен
	StatusCompleted  ProjectStatus = "completed"   // завершен (терминальный)
	StatusCancelled  ProjectStatus = "cancelled"   // отменен (терминальный)
)

// Valid проверяет, что значение статуса известно серверу
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal сообщает, является ли статус конечным.
// Из completed и cancelled переходов нет.
func (s ProjectStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo проверяет допустимость прямой смены статуса.
// open -> in_progress не входит в допустимые: этот переход выполняется
// только через назначение сборщика (PATCH /projects/{id}/assign/).
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	switch s {
	case StatusOpen:
		return next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Service представляет объявление сборщика об услугах
type Service struct {
	ID              int64     `json:"id"`               // ID объявления
	ProviderID      int64     `json:"provider"`         // ID сборщика
	ProviderName    string    `json:"provider_name"`    // username сборщика (read-only)
	ProviderRating  float64   `json:"provider_rating"`  // средняя оценка сборщика (read-only)
	Title           string    `json:"title"`            // заголовок
	Description     string    `json:"description"`      // описание
	HourlyRate      string    `json:"hourly_rate"`      // ставка в час; DecimalField сериализуется строкой
	ExperienceYears int       `json:"experience_years"` // лет опыта
	IsAvailable     bool      `json:"is_available"`     // принимает ли заказы
	CreatedAt       time.Time `json:"created_at"`       // время создания
	UpdatedAt       time.Time `json:"updated_at"`       // время последнего обновления
}

// Project представляет размещенный заказ на сборку мебели
type Project struct {
	ID             int64         `json:"id"`               // ID проекта
	CreatorID      int64         `json:"creator"`          // ID заказчика
	CreatorName    string        `json:"creator_name"`     // username заказчика (read-only)
	Title          string        `json:"title"`            // заголовок
	Description    string        `json:"description"`      // описание
	FurnitureType  string        `json:"furniture_type"`   // тип мебели
	Location       string        `json:"location"`         // адрес/район
	Budget         string        `json:"budget"`           // бюджет; DecimalField сериализуется строкой
	Status         ProjectStatus `json:"status"`           // текущий статус
	AssignedToID   *int64        `json:"assigned_to"`      // ID назначенного сборщика, nil если не назначен
	AssignedToName string        `json:"assigned_to_name"` // username сборщика (read-only)
	CreatedAt      time.Time     `json:"created_at"`       // время создания
	UpdatedAt      time.Time     `json:"updated_at"`       // время последнего обновления
}
