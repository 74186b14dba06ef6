package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SongID is the server's opaque identifier for a song, used only as a rendering key.
//
// The collection service may send it as a JSON string or number; both decode to its textual form.
type SongID string

// UnmarshalJSON accepts a JSON string, number, or null.
func (id *SongID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SongID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("song id must be a string or number: %w", err)
	}
	*id = SongID(n.String())
	return nil
}

// SongRecord is a server-confirmed song. It is read-only to the client.
type SongRecord struct {
	ID     SongID   `json:"id"`
	Title  string   `json:"title"`
	Artist string   `json:"artist"`
	Rating float64  `json:"rating"`
	Moods  []string `json:"moods"`
	Review string   `json:"review,omitempty"`
}

// Collection is the displayed sequence of songs, in server order.
//
// It is replaced wholesale on every successful fetch and never patched in place.
type Collection []SongRecord

// SongPayload is the body of a create call.
type SongPayload struct {
	Title  string   `json:"title"`
	Artist string   `json:"artist"`
	Rating float64  `json:"rating"`
	Review string   `json:"review"`
	Moods  []string `json:"moods"`
}
