// Package sheets fetches inventory snapshots from a Google Sheets
// spreadsheet via its CSV export endpoint. It is the data-source
// collaborator for the mapping engine: it produces a RawTable and applies
// no interpretation beyond dropping the empty padding rows sheets leave at
// the bottom of a tab.
package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clientportal/stockmonitor/internal/core"
)

// DefaultFetchTimeout bounds one export download.
const DefaultFetchTimeout = 15 * time.Second

// Client downloads and decodes one tab of a spreadsheet.
type Client struct {
	exportURL string
	http      *http.Client
}

// NewClient builds a client from a Google Sheets URL. The sheet id is
// extracted from the /d/<id>/ path segment; gid selects the tab ("0" is
// the first tab and the default).
func NewClient(spreadsheetURL, gid string, timeout time.Duration) (*Client, error) {
	exportURL, err := ExportURL(spreadsheetURL, gid)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Client{
		exportURL: exportURL,
		http:      &http.Client{Timeout: timeout},
	}, nil
}

// ExportURL derives the CSV export endpoint from a spreadsheet URL.
func ExportURL(spreadsheetURL, gid string) (string, error) {
	_, after, found := strings.Cut(spreadsheetURL, "/d/")
	if !found {
		return "", fmt.Errorf("invalid spreadsheet URL %q: missing /d/ segment", spreadsheetURL)
	}
	id := after
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", fmt.Errorf("invalid spreadsheet URL %q: empty sheet id", spreadsheetURL)
	}
	if gid == "" {
		gid = "0"
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", id, gid), nil
}

// Fetch downloads the export and decodes it into a RawTable. Records may
// have varying lengths; the reader tolerates that and the mapper treats
// missing cells as empty.
func (c *Client) Fetch(ctx context.Context) (*core.RawTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build export request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("sheet export is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read sheet header: %w", err)
	}

	table := &core.RawTable{Headers: headers}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sheet row: %w", err)
		}
		if isPaddingRow(rec) {
			continue
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// isPaddingRow reports whether a record is sheet padding: exports often
// carry trailing rows with the leading cells blank. A row missing either
// of its first two cells is dropped before mapping.
func isPaddingRow(rec []string) bool {
	for i := 0; i < 2; i++ {
		if i >= len(rec) || strings.TrimSpace(rec[i]) == "" {
			return true
		}
	}
	return false
}
