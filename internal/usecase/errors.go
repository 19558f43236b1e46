package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")

	ErrMatchNotFound     = fmt.Errorf("match %w", ErrNotFound)
	ErrVacancyNotFound   = fmt.Errorf("vacancy %w", ErrNotFound)
	ErrCandidateNotFound = fmt.Errorf("candidate %w", ErrNotFound)

	ErrEmptyMessage   = fmt.Errorf("%w: message text is empty", ErrInvalidInput)
	ErrMessageTooLong = fmt.Errorf("%w: message text is too long", ErrInvalidInput)
)
