package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrPlanLocked   = errors.New("plan is not editable")
	ErrInvalidDay   = errors.New("day index must be between 0 and 6")
)
