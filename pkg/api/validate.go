package api

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет запрос по validate-тегам до отправки на сервер.
// Возвращает validator.ValidationErrors с перечнем невалидных полей.
func Validate(req interface{}) error {
	return validate.Struct(req)
}
