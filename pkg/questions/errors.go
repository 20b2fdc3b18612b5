package questions

import "errors"

var (
	ErrNotFound       = errors.New("questions: question not found")
	ErrDuplicateTitle = errors.New("questions: a question with this title already exists")
	ErrInvalidSeed    = errors.New("questions: invalid seed data")
)
