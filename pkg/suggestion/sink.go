package suggestion

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Предложения"
	timeLayout = "2006-01-02 15:04:05"
)

// Entry is one free-text suggestion.
type Entry struct {
	Date     time.Time
	Username string
	UserId   int64
	Text     string
}

// XlsxSink appends suggestions to a flat spreadsheet log. The file is
// created with a header row on first write. Writes are serialized: the
// workbook format does not tolerate concurrent writers.
type XlsxSink struct {
	filePath string
	mu       sync.Mutex
}

func NewXlsxSink(filePath string) *XlsxSink {
	return &XlsxSink{filePath: filePath}
}

func (s *XlsxSink) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read suggestion rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("compute append cell: %w", err)
	}

	values := []interface{}{
		entry.Date.Format(timeLayout),
		entry.Username,
		entry.UserId,
		entry.Text,
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write suggestion row: %w", err)
	}

	if err := f.SaveAs(s.filePath); err != nil {
		return fmt.Errorf("save suggestions file: %w", err)
	}
	return nil
}

func (s *XlsxSink) openOrCreate() (*excelize.File, error) {
	if _, err := os.Stat(s.filePath); err == nil {
		f, err := excelize.OpenFile(s.filePath)
		if err != nil {
			return nil, fmt.Errorf("open suggestions file: %w", err)
		}
		return f, nil
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)
	header := []interface{}{"Дата", "Username", "User ID", "Текст"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write suggestion header: %w", err)
	}
	return f, nil
}
