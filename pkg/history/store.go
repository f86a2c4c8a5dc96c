/*
# Module: pkg/history/store.go
Persistent store for saved queries and recent-query history, backed by
bbolt.

Unlike the triple store, which is deliberately in-memory only, this is
CLI/REPL convenience state: named queries a user wants to keep around,
and a capped ring of recently run query texts for up-arrow recall. It
lives in its own file so clearing it never touches loaded RDF data.

## Linked Modules
- [../cache](../cache) - the other half of the result-cache design, in-memory only

## Tags
history, persistence, bbolt, repl

## Exports
Store, NewStore, SavedQuery

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#store.go> a code:Module ;
    code:name "pkg/history/store.go" ;
    code:description "Persistent saved-query and REPL-history store" ;
    code:language "go" ;
    code:layer "history" ;
    code:linksTo <../cache> ;
    code:exports <#Store>, <#NewStore>, <#SavedQuery> ;
    code:tags "history", "persistence", "bbolt", "repl" .
<!-- End LinkedDoc RDF -->
*/

package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	savedQueriesBucket = "saved_queries"
	recentBucket       = "recent"
	recentKey          = "log"
	defaultMaxRecent   = 200
)

// SavedQuery is a named query a user has chosen to keep.
type SavedQuery struct {
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists saved queries and recent-query history to a bbolt file.
type Store struct {
	db        *bolt.DB
	maxRecent int
}

// NewStore opens (creating if needed) a history store at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("history: create directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(savedQueriesBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(recentBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("history: initialize buckets: %w", err)
	}

	return &Store{db: db, maxRecent: defaultMaxRecent}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveQuery stores or overwrites a named query.
func (s *Store) SaveQuery(name, text string) error {
	sq := SavedQuery{Name: name, Text: text, CreatedAt: time.Now()}
	data, err := json.Marshal(sq)
	if err != nil {
		return fmt.Errorf("history: encode saved query: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(savedQueriesBucket)).Put([]byte(name), data)
	})
}

// GetQuery looks up a saved query by name.
func (s *Store) GetQuery(name string) (SavedQuery, bool, error) {
	var sq SavedQuery
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(savedQueriesBucket)).Get([]byte(name))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &sq)
	})
	if err != nil {
		return SavedQuery{}, false, fmt.Errorf("history: read saved query %q: %w", name, err)
	}
	return sq, found, nil
}

// DeleteQuery removes a saved query by name.
func (s *Store) DeleteQuery(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(savedQueriesBucket)).Delete([]byte(name))
	})
}

// ListQueries returns every saved query, in bucket (key) order.
func (s *Store) ListQueries() ([]SavedQuery, error) {
	var out []SavedQuery
	err := s.db.View(func(tx *bolt.Tx) error {
		cursor := tx.Bucket([]byte(savedQueriesBucket)).Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var sq SavedQuery
			if err := json.Unmarshal(v, &sq); err != nil {
				return err
			}
			out = append(out, sq)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("history: list saved queries: %w", err)
	}
	return out, nil
}

// AddRecent appends text to the recent-query log, trimming to maxRecent
// entries, oldest first.
func (s *Store) AddRecent(text string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(recentBucket))
		entries, err := decodeRecent(bucket.Get([]byte(recentKey)))
		if err != nil {
			return err
		}
		entries = append(entries, text)
		if len(entries) > s.maxRecent {
			entries = entries[len(entries)-s.maxRecent:]
		}
		data, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("history: encode recent log: %w", err)
		}
		return bucket.Put([]byte(recentKey), data)
	})
}

// RecentQueries returns the recent-query log, oldest first.
func (s *Store) RecentQueries() ([]string, error) {
	var entries []string
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(recentBucket)).Get([]byte(recentKey))
		decoded, err := decodeRecent(raw)
		entries = decoded
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("history: read recent log: %w", err)
	}
	return entries, nil
}

func decodeRecent(raw []byte) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("history: decode recent log: %w", err)
	}
	return entries, nil
}
