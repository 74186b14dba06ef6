package server

import (
	"encoding/json"
	"math"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
)

// maxBodyBytes bounds create request bodies.
const maxBodyBytes = 1 << 20

// CatalogHandler is an in-memory song catalog serving the same contract as the remote collection service.
//
//   - GET /songs?artist=&mood=&sort= lists songs. Filters are case-insensitive substring matches;
//     sort is "newest" (latest first), "top" (highest rating first) or absent (insertion order).
//   - POST /create stores a song and answers 201 with the stored record.
//
// Songs live only as long as the process.
type CatalogHandler struct {
	mu     sync.RWMutex
	songs  models.Collection
	logger *log.Logger
}

var _ Handler = (*CatalogHandler)(nil)

// NewCatalogHandler creates a catalog holding seed, in order.
func NewCatalogHandler(logger *log.Logger, seed ...models.SongRecord) *CatalogHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CatalogHandler{
		songs:  slices.Clone(seed),
		logger: shared.WithLogger(logger, "component", "catalog"),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CatalogHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/songs", Handler: h.handleList},
		{Method: http.MethodPost, Path: "/create", Handler: h.handleCreate},
		{Method: http.MethodOptions, Path: "/create", Handler: handlePreflight},
	}
}

// Len returns the number of stored songs.
func (h *CatalogHandler) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.songs)
}

func (h *CatalogHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	artist := strings.ToLower(q.Get("artist"))
	mood := strings.ToLower(q.Get("mood"))

	h.mu.RLock()
	songs := make(models.Collection, 0, len(h.songs))
	for _, song := range h.songs {
		if artist != "" && !strings.Contains(strings.ToLower(song.Artist), artist) {
			continue
		}
		if mood != "" && !slices.ContainsFunc(song.Moods, func(m string) bool {
			return strings.Contains(strings.ToLower(m), mood)
		}) {
			continue
		}
		songs = append(songs, song)
	}
	h.mu.RUnlock()

	switch models.SortOrder(q.Get("sort")) {
	case models.SortNewest:
		slices.Reverse(songs)
	case models.SortTop:
		slices.SortStableFunc(songs, func(a, b models.SongRecord) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
	}

	writeJSON(w, http.StatusOK, songs)
}

func (h *CatalogHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload models.SongPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	payload.Title = strings.TrimSpace(payload.Title)
	payload.Artist = strings.TrimSpace(payload.Artist)
	if payload.Title == "" || payload.Artist == "" {
		http.Error(w, "title and artist required", http.StatusBadRequest)
		return
	}
	if math.IsNaN(payload.Rating) || payload.Rating < models.MinRating || payload.Rating > models.MaxRating {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}
	if payload.Moods == nil {
		payload.Moods = []string{}
	}

	song := models.SongRecord{
		ID:     models.SongID(shared.GenerateID()),
		Title:  payload.Title,
		Artist: payload.Artist,
		Rating: payload.Rating,
		Moods:  payload.Moods,
		Review: payload.Review,
	}

	h.mu.Lock()
	h.songs = append(h.songs, song)
	h.mu.Unlock()

	h.logger.Info("song created", "id", song.ID, "title", song.Title, "artist", song.Artist)
	writeJSON(w, http.StatusCreated, song)
}

func handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
