package object

import (
	"context"
	"io"

	"github.com/rotisserie/eris"
)

// ErrNotFound is returned by Open when no object exists at the key.
var ErrNotFound = eris.New("object not found")

// ObjectStore defines the contract for saving and retrieving binary objects
// under caller chosen keys such as "playbooks/<id>.docx".
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
