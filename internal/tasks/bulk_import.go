package tasks

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/desertthunder/soundfolio/internal/formatter"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/state"
	"golang.org/x/time/rate"
)

// BulkImportOpts contains configuration for bulk song imports.
type BulkImportOpts struct {
	NumWorkers int     // Concurrent workers (default: 4, max: 10)
	RateLimit  float64 // Create calls per second (default: 5)
}

// SongImportResult is the outcome of importing one CSV row.
type SongImportResult struct {
	Line    int
	Title   string
	Artist  string
	Success bool
	Error   error
}

// BulkImportResult summarizes a bulk import.
type BulkImportResult struct {
	TotalRows int
	Created   int
	Failed    int
	Results   []SongImportResult // Sorted by line
}

type importJob struct {
	line    int
	draft   models.SongDraft
	payload models.SongPayload
}

// BulkImport creates one song per row with a rate-limited worker pool.
//
// Each row is filled into a fresh [state.Form] exactly as typed input would be, so rows go through the same rating
// check and moods split as the interactive form. Rows that fail validation are reported without a create call.
// Each create is a single attempt; failed rows are reported, not retried.
func (s *Synchronizer) BulkImport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	rows []formatter.SongRow,
	opts BulkImportOpts,
) (*BulkImportResult, error) {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	result := &BulkImportResult{
		TotalRows: len(rows),
		Results:   make([]SongImportResult, 0, len(rows)),
	}

	sendProgress(prog, parsingRowsUpdate(len(rows)))

	var jobs []importJob
	for _, row := range rows {
		job, err := prepareRow(row)
		if err != nil {
			result.Results = append(result.Results, SongImportResult{
				Line:   row.Line,
				Title:  row.Fields[models.DraftTitle],
				Artist: row.Fields[models.DraftArtist],
				Error:  err,
			})
			continue
		}
		jobs = append(jobs, job)
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	queue := make(chan importJob, len(jobs))
	results := make(chan SongImportResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go s.importWorker(ctx, &wg, limiter, queue, results)
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for _, res := range result.Results {
		completed++
		sendProgress(prog, songFailedUpdate(completed, len(rows), res))
	}

	for res := range results {
		completed++
		result.Results = append(result.Results, res)
		if res.Success {
			sendProgress(prog, songCreatedUpdate(completed, len(rows), res))
		} else {
			sendProgress(prog, songFailedUpdate(completed, len(rows), res))
		}
	}

	slices.SortFunc(result.Results, func(a, b SongImportResult) int { return a.Line - b.Line })
	for _, res := range result.Results {
		if res.Success {
			result.Created++
		} else {
			result.Failed++
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("import interrupted: %w", err)
	}

	return result, nil
}

// importWorker creates songs from the queue until it is drained.
func (s *Synchronizer) importWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	queue <-chan importJob,
	results chan<- SongImportResult,
) {
	defer wg.Done()

	for job := range queue {
		res := SongImportResult{Line: job.line, Title: job.draft.Title, Artist: job.draft.Artist}

		if err := limiter.Wait(ctx); err != nil {
			res.Error = err
			results <- res
			continue
		}

		if err := s.catalog.CreateSong(ctx, job.payload); err != nil {
			s.logger.Error("error adding song", "line", job.line, "title", job.draft.Title, "error", err)
			res.Error = err
			results <- res
			continue
		}

		res.Success = true
		results <- res
	}
}

func prepareRow(row formatter.SongRow) (importJob, error) {
	form := state.NewForm()
	for _, field := range []models.DraftField{
		models.DraftTitle, models.DraftArtist, models.DraftRating, models.DraftReview, models.DraftMoods,
	} {
		value, ok := row.Fields[field]
		if !ok {
			continue
		}
		if err := form.Set(field, value); err != nil {
			return importJob{}, fmt.Errorf("line %d: %w", row.Line, err)
		}
	}

	payload, err := form.Payload()
	if err != nil {
		return importJob{}, fmt.Errorf("line %d: %w", row.Line, err)
	}

	return importJob{line: row.Line, draft: form.Draft(), payload: payload}, nil
}
