package api

// ProfileUpdate представляет частичное обновление профиля.
// Nil-поля не отправляются и не меняют сохраненные значения.
type ProfileUpdate struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	IsAssembler *bool   `json:"is_assembler,omitempty"`
}

// Empty сообщает, что обновлять нечего
func (u ProfileUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Bio == nil &&
		u.Location == nil && u.Phone == nil && u.IsAssembler == nil
}

// ServiceRequest представляет тело создания/обновления объявления услуг
type ServiceRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	Description     string `json:"description" validate:"required"`
	HourlyRate      string `json:"hourly_rate" validate:"required,numeric"` // положительная десятичная дробь
	ExperienceYears int    `json:"experience_years" validate:"min=0"`
	IsAvailable     bool   `json:"is_available"`
}

// ProjectRequest представляет тело создания/обновления проекта
type ProjectRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description" validate:"required"`
	FurnitureType string `json:"furniture_type" validate:"required,max=100"`
	Location      string `json:"location" validate:"required,max=255"`
	Budget        string `json:"budget" validate:"required,numeric"` // положительная десятичная дробь
}

// AssignRequest представляет тело PATCH /projects/{id}/assign/
type AssignRequest struct {
	AssignedTo int64 `json:"assigned_to" validate:"required"` // ID сборщика
}

// StatusRequest представляет тело PATCH /projects/{id}/update_status/
type StatusRequest struct {
	Status string `json:"status" validate:"required"` // новый статус
}

// MessageRequest представляет тело POST /messages/
type MessageRequest struct {
	Receiver int64  `json:"receiver" validate:"required"` // ID получателя
	Content  string `json:"content" validate:"required"`  // текст сообщения
}

// ReviewRequest представляет тело POST /reviews/
type ReviewRequest struct {
	Project  int64  `json:"project" validate:"required"`        // ID завершенного проекта
	Reviewee int64  `json:"reviewee" validate:"required"`       // ID стороны проекта
	Rating   int    `json:"rating" validate:"required,min=1,max=5"` // оценка от 1 до 5
	Comment  string `json:"comment" validate:"required"`        // текст отзыва
}
