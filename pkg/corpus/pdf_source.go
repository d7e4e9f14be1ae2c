package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource reads a directory of PDF files. The directory is re-listed on
// every walk: freshness over speed, no persistent index.
type PDFSource struct {
	dir string
}

var _ Source = &PDFSource{}

func NewPDFSource(dir string) *PDFSource {
	return &PDFSource{dir: dir}
}

func (s *PDFSource) Walk(ctx context.Context, visit func(page Page) (bool, error)) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read docs dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		stop, err := s.walkDocument(name, visit)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

func (s *PDFSource) walkDocument(name string, visit func(page Page) (bool, error)) (bool, error) {
	f, reader, err := pdf.Open(filepath.Join(s.dir, name))
	if err != nil {
		// One unreadable file must not hide matches in the rest.
		return false, nil
	}
	defer f.Close()

	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		stop, err := visit(Page{DocName: name, PageNum: i, Text: text})
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}
	return false, nil
}
