package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"log-audit/internal/analyzer"
)

// Each export section is a single-cell header row, a two-column title row,
// data rows, and one blank separator row. Section order is fixed.
var (
	headerRequests   = "Requests per IP"
	headerEndpoint   = "Most Accessed Endpoint"
	headerSuspicious = "Suspicious Activity"

	titlesRequests   = []string{"IP Address", "Request Count"}
	titlesEndpoint   = []string{"Endpoint", "Access Count"}
	titlesSuspicious = []string{"IP Address", "Failed Login Count"}
)

// WriteCSV exports the result to path, creating the parent directory if
// absent. The write is not transactional: a failure can leave a partial file
// behind, which the caller reports and tolerates.
func WriteCSV(path string, res analyzer.Result) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	werr := writeSections(f, res)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}
	return nil
}

func writeSections(w io.Writer, res analyzer.Result) error {
	cw := csv.NewWriter(w)

	cw.Write([]string{headerRequests})
	cw.Write(titlesRequests)
	for _, e := range res.IPRequests {
		cw.Write([]string{e.Key, strconv.Itoa(e.Count)})
	}
	cw.Write([]string{})

	cw.Write([]string{headerEndpoint})
	cw.Write(titlesEndpoint)
	cw.Write([]string{res.TopEndpoint.Key, strconv.Itoa(res.TopEndpoint.Count)})
	cw.Write([]string{})

	cw.Write([]string{headerSuspicious})
	cw.Write(titlesSuspicious)
	for _, e := range res.Suspicious {
		cw.Write([]string{e.Key, strconv.Itoa(e.Count)})
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a previously exported file back into a Result. Sections are
// recognized by their single-cell header rows; blank separator rows are
// skipped by the CSV reader itself.
func ReadCSV(r io.Reader) (analyzer.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	res := analyzer.Result{TopEndpoint: analyzer.NoEndpoint}
	var (
		section    string
		skipTitles bool
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("parse export: %w", err)
		}

		if len(record) == 1 {
			switch record[0] {
			case headerRequests, headerEndpoint, headerSuspicious:
				section = record[0]
				skipTitles = true
				continue
			}
		}
		if skipTitles {
			skipTitles = false
			continue
		}
		if len(record) < 2 {
			return res, fmt.Errorf("parse export: short row %q", record)
		}

		count, err := strconv.Atoi(record[1])
		if err != nil {
			return res, fmt.Errorf("parse export: bad count %q: %w", record[1], err)
		}
		entry := analyzer.Entry{Key: record[0], Count: count}

		switch section {
		case headerRequests:
			res.IPRequests = append(res.IPRequests, entry)
		case headerEndpoint:
			res.TopEndpoint = entry
		case headerSuspicious:
			res.Suspicious = append(res.Suspicious, entry)
		default:
			return res, fmt.Errorf("parse export: data row before any section header")
		}
	}
	return res, nil
}
