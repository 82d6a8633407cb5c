package reports

import "github.com/rotisserie/eris"

// ErrUnsupportedKind is returned when a caller asks for a report kind the
// parser does not know. Missing fields and sections are never errors.
var ErrUnsupportedKind = eris.New("unsupported report kind")
