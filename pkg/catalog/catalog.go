/*
Package catalog loads the enriched game catalog from the exploitation zone
and resolves entity identifiers to display metadata. The catalog is a single
JSON object keyed by game ID, produced by the upstream enrichment process;
it is read-only here and loaded in full before filtering begins.
*/
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/steamseek/steamseek/pkg/errors"
)

/*
Game is one catalog entry. A game carries up to five image references and
at most one video reference; both are indexed by the ingestion side, not
read here.
*/
type Game struct {
	Name             string   `json:"name"`
	FinalDescription string   `json:"final_description"`
	Images           []string `json:"images,omitempty"`
	Video            string   `json:"video,omitempty"`
}

// Placeholders used when a retrieved ID has no catalog entry, so a stale
// vector index degrades the answer instead of failing the request.
const (
	UnknownName        = "Unknown Title"
	UnknownDescription = "No description available."
)

/*
ObjectStore is the slice of the object-storage connection the catalog
needs. Satisfied by *s3.Conn.
*/
type ObjectStore interface {
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Get(ctx context.Context, bucket, key string) (*bytes.Buffer, error)
}

/*
Store holds the loaded catalog for the duration of a request.
*/
type Store struct {
	games map[string]Game
}

/*
Load lists the given prefix and decodes the first object whose key ends
with the given suffix. The enrichment job writes the catalog under a
versioned key, so the suffix match stands in for a fixed name.
*/
func Load(
	ctx context.Context, store ObjectStore, bucket, prefix, suffix string,
) (*Store, error) {
	keys, err := store.List(ctx, bucket, prefix)

	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		if !strings.HasSuffix(key, suffix) {
			continue
		}

		buf, err := store.Get(ctx, bucket, key)

		if err != nil {
			return nil, err
		}

		games := map[string]Game{}

		if err := json.Unmarshal(buf.Bytes(), &games); err != nil {
			return nil, err
		}

		log.Info("loaded game catalog", "bucket", bucket, "key", key, "games", len(games))

		return &Store{games: games}, nil
	}

	return nil, errors.ErrCatalogNotFound.WithMessagef(
		"no object ending with %q under %s/%s", suffix, bucket, prefix,
	)
}

/*
Get returns the catalog entry for an entity ID.
*/
func (store *Store) Get(id string) (Game, bool) {
	game, ok := store.games[id]
	return game, ok
}

/*
Resolve returns display metadata for an entity ID, substituting the
placeholder name and description when the catalog has no entry.
*/
func (store *Store) Resolve(id string) Game {
	game, ok := store.games[id]

	if !ok {
		log.Warn("entity missing from catalog", "id", id)
		return Game{Name: UnknownName, FinalDescription: UnknownDescription}
	}

	if game.Name == "" {
		game.Name = UnknownName
	}

	if game.FinalDescription == "" {
		game.FinalDescription = UnknownDescription
	}

	return game
}

// Len reports the number of loaded games.
func (store *Store) Len() int { return len(store.games) }
