// Package csvfile reads games from comma separated text:
//
//	# comment
//	teamA,teamB,pointsA,pointsB
//
// Blank lines and lines starting with '#' are skipped.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goserg/batchrating/internal/domain"
	"github.com/goserg/batchrating/internal/storage"
)

var ErrMalformedLine = errors.New("malformed line")

const fieldsPerLine = 4

type Storage struct {
	r io.Reader
}

var _ storage.MatchStorage = (*Storage)(nil)

func New(r io.Reader) *Storage {
	return &Storage{r: r}
}

// ListMatches consumes the reader. Match IDs are line numbers.
func (s *Storage) ListMatches(ctx context.Context) ([]domain.Match, error) {
	cr := csv.NewReader(s.r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var matches []domain.Match
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return matches, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		m, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		m.ID = line
		matches = append(matches, m)
	}
}

func parseRecord(record []string) (domain.Match, error) {
	if len(record) != fieldsPerLine {
		return domain.Match{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedLine, len(record), fieldsPerLine)
	}
	pointsA, err := parsePoints(record[2])
	if err != nil {
		return domain.Match{}, err
	}
	pointsB, err := parsePoints(record[3])
	if err != nil {
		return domain.Match{}, err
	}
	return domain.Match{
		PlayerA: domain.Player{Name: record[0]},
		PlayerB: domain.Player{Name: record[1]},
		PointsA: pointsA,
		PointsB: pointsB,
	}, nil
}

func parsePoints(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: points %q", ErrMalformedLine, s)
	}
	return p, nil
}
