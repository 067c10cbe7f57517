package domain

import (
	"errors"
	"fmt"
	"strings"
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase:
// консьюмер Kafka не ретраит такие сообщения
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}

// ValidationError отсутствующее или некорректное поле входных данных
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %q: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// LocationUnresolvedError координаты или таймзона не разрешены внешним
// геокодером; движок сам геокодированием не занимается
type LocationUnresolvedError struct{}

func NewLocationUnresolvedError() *LocationUnresolvedError {
	return &LocationUnresolvedError{}
}

func (e *LocationUnresolvedError) Error() string {
	return "location is not resolved: latitude, longitude and timezone are required"
}

func IsLocationUnresolvedError(err error) bool {
	var le *LocationUnresolvedError
	return errors.As(err, &le)
}

// UnsupportedConfigurationError неизвестная аянамса, система домов или
// иной параметр конфигурации; никогда не подменяется значением по
// умолчанию молча
type UnsupportedConfigurationError struct {
	Parameter string
	Value     string
	Supported []string
}

func NewUnsupportedConfigurationError(parameter, value string, supported []string) *UnsupportedConfigurationError {
	return &UnsupportedConfigurationError{Parameter: parameter, Value: value, Supported: supported}
}

func (e *UnsupportedConfigurationError) Error() string {
	return fmt.Sprintf("unsupported %s %q, supported: %s", e.Parameter, e.Value, strings.Join(e.Supported, ", "))
}

func IsUnsupportedConfigurationError(err error) bool {
	var ue *UnsupportedConfigurationError
	return errors.As(err, &ue)
}

// ErrChartNotFound карта не найдена в логе карт
var ErrChartNotFound = errors.New("chart not found")
