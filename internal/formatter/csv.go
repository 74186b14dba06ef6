package formatter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
)

// SongRow is one raw CSV row, keyed by draft field. Values are unparsed form input.
type SongRow struct {
	Line   int
	Fields map[models.DraftField]string
}

var csvColumns = map[string]models.DraftField{
	"title":  models.DraftTitle,
	"artist": models.DraftArtist,
	"rating": models.DraftRating,
	"review": models.DraftReview,
	"moods":  models.DraftMoods,
}

// ParseCSV reads song rows from CSV with a header row.
//
// Header names are matched case-insensitively against title, artist, rating, review and moods; other columns
// (such as the ID column written by [ExportToCSV]) are ignored. Title and artist columns are required.
// Each row keeps the file line its record starts on, so quoted fields spanning lines do not shift later rows.
//
// Values are form input, so a file from [ExportToCSV] only imports cleanly when its ratings are multiples of
// [models.RatingStep] and no mood contains a comma: moods are rejoined with ", " on export and split on commas
// again on import.
func ParseCSV(r io.Reader) ([]SongRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty CSV", shared.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := map[int]models.DraftField{}
	seen := map[models.DraftField]bool{}
	for i, name := range header {
		if field, ok := csvColumns[strings.ToLower(strings.TrimSpace(name))]; ok {
			columns[i] = field
			seen[field] = true
		}
	}
	if !seen[models.DraftTitle] || !seen[models.DraftArtist] {
		return nil, fmt.Errorf("%w: CSV header must include title and artist", shared.ErrInvalidInput)
	}

	var rows []SongRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		row := SongRow{Line: line, Fields: map[models.DraftField]string{}}
		for i, value := range record {
			if field, ok := columns[i]; ok {
				row.Fields[field] = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
