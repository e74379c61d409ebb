// Package importer parses the bulk device import format: comma-separated
// lines, a header naming at least id, name and location in any order.
// Fields are split on every comma; there is no quoting.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// MaxSize bounds an import payload.
const MaxSize = 1 << 20

var requiredColumns = []string{"id", "name", "location"}

// Row is an accepted device line.
type Row struct {
	Line     int
	ID       string
	Name     string
	Location string
}

// Skip records a line that was not imported and why.
type Skip struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result is the outcome of a parse. Rows keep file order.
type Result struct {
	Rows    []Row
	Skipped []Skip
}

// Parse reads the whole payload. A header missing a required column fails
// the entire import; a bad row is only skipped. Ids repeated within the file
// keep the first occurrence.
func Parse(r io.Reader) (Result, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return Result{}, fmt.Errorf("read import: %w", err)
	}
	if len(raw) > MaxSize {
		return Result{}, &domain.ValidationError{Field: "file", Reason: "import exceeds 1 MiB"}
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	header := strings.Split(lines[0], ",")
	index := make(map[string]int, len(header))
	for i, h := range header {
		col := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[col]; !seen {
			index[col] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return Result{}, &domain.ValidationError{
				Field:  "header",
				Reason: "CSV file must contain columns for: id, name, and location",
			}
		}
	}

	var res Result
	seen := make(map[string]int)
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := i + 1
		values := strings.Split(line, ",")
		if len(values) < len(header) {
			res.Skipped = append(res.Skipped, Skip{Line: n, Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(values))})
			continue
		}
		row := Row{
			Line:     n,
			ID:       strings.TrimSpace(values[index["id"]]),
			Name:     strings.TrimSpace(values[index["name"]]),
			Location: strings.TrimSpace(values[index["location"]]),
		}
		if row.ID == "" || row.Name == "" || row.Location == "" {
			res.Skipped = append(res.Skipped, Skip{Line: n, Reason: "id, name and location are required"})
			continue
		}
		if first, dup := seen[row.ID]; dup {
			res.Skipped = append(res.Skipped, Skip{Line: n, Reason: fmt.Sprintf("duplicate id %s (first on line %d)", row.ID, first)})
			continue
		}
		seen[row.ID] = n
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}
