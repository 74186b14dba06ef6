// package formatter renders songs for display and exports the collection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/soundfolio/internal/models"
)

// RatingLabel renders a rating out of five, e.g. "4 / 5" or "3.5 / 5".
func RatingLabel(rating float64) string {
	return fmt.Sprintf("%s / %v", strconv.FormatFloat(rating, 'f', -1, 64), models.MaxRating)
}

// MoodsLabel joins moods with ", " in their stored order.
func MoodsLabel(moods []string) string {
	return strings.Join(moods, ", ")
}

// SongHeading renders "Title by Artist".
func SongHeading(song models.SongRecord) string {
	return fmt.Sprintf("%s by %s", song.Title, song.Artist)
}

// ExportToCSV converts a collection to CSV format with columns: ID, Title, Artist, Rating, Moods, Review
func ExportToCSV(songs models.Collection) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Rating", "Moods", "Review"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			string(song.ID),
			song.Title,
			song.Artist,
			strconv.FormatFloat(song.Rating, 'f', -1, 64),
			MoodsLabel(song.Moods),
			song.Review,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a collection to Markdown, one section per song.
func ExportToMarkdown(songs models.Collection, title string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(songs)))

	for _, song := range songs {
		buf.WriteString(fmt.Sprintf("## %s\n\n", SongHeading(song)))
		buf.WriteString(fmt.Sprintf("- **Rating**: %s\n", RatingLabel(song.Rating)))
		buf.WriteString(fmt.Sprintf("- **Moods**: %s\n", MoodsLabel(song.Moods)))
		if song.Review != "" {
			buf.WriteString(fmt.Sprintf("\n> %s\n", song.Review))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a collection to plain text, matching the card layout of the TUI.
func ExportToText(songs models.Collection) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(songs)))

	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, SongHeading(song)))
		buf.WriteString(fmt.Sprintf("   ⭐ %s\n", RatingLabel(song.Rating)))
		buf.WriteString(fmt.Sprintf("   Moods: %s\n", MoodsLabel(song.Moods)))
		if song.Review != "" {
			buf.WriteString(fmt.Sprintf("   “%s”\n", song.Review))
		}
	}

	return buf.Bytes(), nil
}
