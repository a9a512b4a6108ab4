// Package export renders the ranked region list into the downloadable file formats.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatReport Format = "report"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatReport}
}

// ParseFormat accepts a format name, case-insensitively. "txt" is an alias for report.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "report", "txt":
		return FormatReport, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FileName is the download name for the format.
func (f Format) FileName() string {
	switch f {
	case FormatCSV:
		return "clean_energy_readiness_scores.csv"
	case FormatJSON:
		return "clean_energy_readiness_scores.json"
	case FormatReport:
		return "clean_energy_readiness_report.txt"
	}
	return ""
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatReport:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}

// Render produces the payload for f. generated is only used by the report.
func Render(f Format, ranked []scoring.ScoredRegion, generated time.Time) ([]byte, error) {
	switch f {
	case FormatCSV:
		return CSV(ranked), nil
	case FormatJSON:
		return JSON(ranked)
	case FormatReport:
		return Report(ranked, generated), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// formatNumber prints the shortest decimal form: 64 rather than 64.0, 86.6 rather than 86.600.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
