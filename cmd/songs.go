package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/soundfolio/internal/formatter"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
	"github.com/desertthunder/soundfolio/internal/state"
	"github.com/desertthunder/soundfolio/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SongsList fetches the collection once and prints it in the requested format.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	query := state.NewQuery()
	for field, value := range map[models.QueryField]string{
		models.QueryArtist: cmd.String("artist"),
		models.QueryMood:   cmd.String("mood"),
		models.QuerySort:   cmd.String("sort"),
	} {
		if _, err := query.Set(field, value); err != nil {
			return err
		}
	}

	songs, err := r.sync.Sync(ctx, query.State(), nil)
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	format := strings.ToLower(cmd.String("format"))
	outputPath := cmd.String("output")

	if format == "json" && outputPath == "" {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	var data []byte
	switch format {
	case "json":
		data, err = shared.MarshalJSON(songs, cmd.Bool("pretty"))
	case "csv":
		data, err = formatter.ExportToCSV(songs)
	case "md", "markdown":
		data, err = formatter.ExportToMarkdown(songs, "My Music")
	case "text", "txt":
		data, err = formatter.ExportToText(songs)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		r.writeSuccess("Wrote %d songs to %s", len(songs), outputPath)
		return nil
	}

	return r.writePlain("%s", data)
}

// SongsAdd fills a form from flags, submits it, and reports the refreshed collection size.
func (r *Runner) SongsAdd(ctx context.Context, cmd *cli.Command) error {
	form := state.NewForm()
	for field, flag := range map[models.DraftField]string{
		models.DraftTitle:  "title",
		models.DraftArtist: "artist",
		models.DraftRating: "rating",
		models.DraftReview: "review",
		models.DraftMoods:  "moods",
	} {
		if err := form.Set(field, cmd.String(flag)); err != nil {
			return fmt.Errorf("invalid --%s: %w", flag, err)
		}
	}

	result, err := r.sync.Submit(ctx, form.Draft(), models.QueryState{}, nil)
	if !result.Created {
		return fmt.Errorf("failed to add song: %w", err)
	}

	draft := form.Draft()
	r.writeSuccess("Added %s by %s", draft.Title, draft.Artist)
	if err != nil {
		r.writeWarning("Could not refresh the collection: %v", err)
		return nil
	}

	r.writePlain("Catalog now holds %d songs\n", len(result.Collection))
	return nil
}

// SongsImport adds every row of a CSV file, then reports the refreshed collection size.
func (r *Runner) SongsImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	rows, err := formatter.ParseCSV(f)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		r.writeWarning("No songs found in %s", path)
		return nil
	}

	r.logger.Info("starting import", "file", path, "rows", len(rows))

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ParseRows:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.CreateSongs:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := r.sync.BulkImport(ctx, progressCh, rows, tasks.BulkImportOpts{
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate"),
	})
	close(progressCh)
	<-done

	if result == nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Import Complete!")
	r.writePlain("Created: %d/%d\n", result.Created, result.TotalRows)

	if result.Failed > 0 {
		r.writeWarning("Failed to add %d songs:", result.Failed)
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - line %d: %s - %s (%v)\n", res.Line, res.Artist, res.Title, res.Error)
			}
		}
	}

	if err != nil {
		return err
	}

	songs, err := r.sync.Sync(ctx, models.QueryState{}, nil)
	if err != nil {
		r.writeWarning("Could not refresh the collection: %v", err)
		return nil
	}
	r.writePlain("Catalog now holds %d songs\n", len(songs))
	return nil
}
