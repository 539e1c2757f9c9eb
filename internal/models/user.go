package models

import "time"

// User представляет краткую запись пользователя, которую сервер
// вкладывает в другие сущности (диалоги, ответ регистрации)
type User struct {
	ID        int64  `json:"id"`         // ID пользователя
	Username  string `json:"username"`   // уникальный username
	Email     string `json:"email"`      // email
	FirstName string `json:"first_name"` // имя
	LastName  string `json:"last_name"`  // фамилия
}

// Profile представляет полный профиль пользователя маркетплейса
type Profile struct {
	ID            int64     `json:"id"`             // ID профиля
	Username      string    `json:"username"`       // username (read-only)
	Email         string    `json:"email"`          // email (read-only)
	FirstName     string    `json:"first_name"`     // имя
	LastName      string    `json:"last_name"`      // фамилия
	Bio           string    `json:"bio"`            // о себе
	Location      string    `json:"location"`       // город/район
	Phone         string    `json:"phone"`          // контактный телефон
	IsAssembler   bool      `json:"is_assembler"`   // предлагает ли услуги сборки
	AverageRating float64   `json:"average_rating"` // средняя оценка по отзывам
	DateJoined    time.Time `json:"date_joined"`    // дата регистрации
}

// HasRating сообщает, есть ли у пользователя хотя бы один отзыв.
// Сервер хранит average_rating = 0 для пользователей без отзывов,
// поэтому ноль означает «нет оценки», а не «оценка ноль».
func (p *Profile) HasRating() bool {
	return p.AverageRating > 0
}

// FullName возвращает имя и фамилию, либо username если они не заполнены
func (p *Profile) FullName() string {
	if p.FirstName == "" && p.LastName == "" {
		return p.Username
	}
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
