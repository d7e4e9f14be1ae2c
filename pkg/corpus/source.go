package corpus

import "context"

// Page is one page of an unstructured reference document.
type Page struct {
	DocName string
	PageNum int
	Text    string
}

// Source walks paginated documents in a stable order: documents sorted by
// name, pages in document order. visit returning stop=true ends the walk.
type Source interface {
	Walk(ctx context.Context, visit func(page Page) (stop bool, err error)) error
}
