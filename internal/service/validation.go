package service

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Totarae/monuments/internal/apperrors"
)

const dateLayout = "2006-01-02"

// required обрезает пробелы и требует непустое значение.
func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperrors.NewValidation(field, "this field is required")
	}
	return v, nil
}

func maxLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return apperrors.NewValidation(field, "field cannot be longer than "+strconv.Itoa(limit)+" characters")
	}
	return nil
}

func requiredFloat(field, value string, lo, hi float64) (float64, error) {
	v, err := required(field, value)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperrors.NewValidation(field, "not a valid number")
	}
	if f < lo || f > hi {
		return 0, apperrors.NewValidation(field, "out of range")
	}
	return f, nil
}

func requiredID(field, value string) (int, error) {
	v, err := required(field, value)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidation(field, "not a valid choice")
	}
	return id, nil
}

func optionalInt(field, value string) (*int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperrors.NewValidation(field, "not a valid integer value")
	}
	if n < 0 {
		return nil, apperrors.NewValidation(field, "must not be negative")
	}
	return &n, nil
}

func optionalDate(field, value string) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, apperrors.NewValidation(field, "not a valid date value")
	}
	return &d, nil
}
