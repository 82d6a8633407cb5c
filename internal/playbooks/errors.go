package playbooks

import "github.com/rotisserie/eris"

var (
	ErrInvalidInput = eris.New("invalid input")
	ErrNotFound     = eris.New("not found")
)
