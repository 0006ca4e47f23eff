// Package validation holds the pure field validators used by the HTTP
// handlers. Every function checks a single field and returns an
// *apperr.Error with the user-facing message, or nil.
package validation

import (
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"tarefas_webapp/internal/apperr"
)

var (
	// Letters (any script) and spaces only.
	nameRe = regexp.MustCompile(`^[\p{L}\s]+$`)
	// local@domain.tld with no embedded whitespace.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	MinNameLen     = 3
	MinPasswordLen = 4
	MinAge         = 10
	MaxAge         = 120
)

func Name(name string) error {
	if name == "" {
		return apperr.New(apperr.MissingField, "Nome é obrigatório")
	}
	if utf8.RuneCountInString(name) < MinNameLen {
		return apperr.New(apperr.InvalidFormat, "O nome deve ter pelo menos 3 caracteres")
	}
	if !nameRe.MatchString(name) {
		return apperr.New(apperr.InvalidFormat, "O nome deve conter apenas letras e espaços")
	}
	return nil
}

func Email(email string) error {
	if email == "" {
		return apperr.New(apperr.MissingField, "Email é obrigatório")
	}
	if !emailRe.MatchString(email) {
		return apperr.New(apperr.InvalidFormat, "Email inválido")
	}
	return nil
}

// Birthdate parses a YYYY-MM-DD birthdate and checks it against today:
// the date must be in the past and the whole-year age must fall within
// [MinAge, MaxAge].
func Birthdate(value string, today time.Time) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperr.New(apperr.MissingField, "Data de nascimento é obrigatória")
	}
	birth, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperr.New(apperr.InvalidFormat, "Data de nascimento inválida")
	}
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !birth.Before(todayDate) {
		return time.Time{}, apperr.New(apperr.OutOfRange, "A data de nascimento deve ser anterior a hoje")
	}
	age := Age(birth, todayDate)
	if age < MinAge {
		return time.Time{}, apperr.New(apperr.OutOfRange, "Você deve ter pelo menos 10 anos para se cadastrar")
	}
	if age > MaxAge {
		return time.Time{}, apperr.New(apperr.OutOfRange, "Data de nascimento inválida")
	}
	return birth, nil
}

// Age returns whole years elapsed between birth and today.
func Age(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

// Password validates a new password together with its confirmation.
func Password(password, confirm string) error {
	if password == "" {
		return apperr.New(apperr.MissingField, "Senha é obrigatória")
	}
	if len(password) < MinPasswordLen {
		return apperr.New(apperr.InvalidFormat, "A senha deve ter pelo menos 4 caracteres")
	}
	if password != confirm {
		return apperr.New(apperr.InvalidFormat, "As senhas não coincidem")
	}
	return nil
}

// Required rejects empty values with the given message.
func Required(value, message string) error {
	if value == "" {
		return apperr.New(apperr.MissingField, message)
	}
	return nil
}

// ID parses a numeric identifier coming from a query string.
func ID(value string) (int64, error) {
	if value == "" {
		return 0, apperr.New(apperr.MissingField, "ID não informado")
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.InvalidFormat, "ID inválido")
	}
	return id, nil
}
