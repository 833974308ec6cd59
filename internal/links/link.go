package links

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Link is a shortcut -> destination record, the only persisted entity.
type Link struct {
	Shortcut    string    `json:"shortcut"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize returns the canonical store key for a shortcut. Every read,
// write, or delete goes through this, making shortcut identity
// case-insensitive.
func Normalize(shortcut string) string {
	return strings.ToLower(shortcut)
}

// record is the persisted value shape. The shortcut is not duplicated in
// the value; it is reconstructed from the store key on read.
type record struct {
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EncodeRecord serializes a link into its stored value.
func EncodeRecord(link Link) ([]byte, error) {
	return json.Marshal(record{
		URL:         link.URL,
		Description: link.Description,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	})
}

// DecodeRecord deserializes a stored value found under the given key.
func DecodeRecord(shortcut string, data []byte) (Link, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Link{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}

	return Link{
		Shortcut:    shortcut,
		URL:         rec.URL,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}
