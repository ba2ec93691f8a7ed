// Package journal keeps a local ledger of deposit outcomes so a
// re-run of the same CSV skips rows that already have a resource.
package journal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

const (
	// StatusCreated marks a row whose resource exists remotely.
	StatusCreated = "created"
	// StatusFailed marks a row whose submission was rejected.
	StatusFailed = "failed"
)

var bucketDeposits = []byte("deposits")

// Record is one journaled outcome, keyed by source file and row.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	RowIndex   int       `json:"row_index"`
	ResourceID string    `json:"resource_id,omitempty"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	Time       time.Time `json:"time"`
}

// Journal is a bbolt-backed ledger. A Journal is safe for concurrent
// use; writes serialize on the underlying database.
type Journal struct {
	db *bolt.DB
}

// Open opens (or creates) the journal at path.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDeposits)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Write stores a record, assigning an ID and timestamp if unset.
// Writing the same source/row again overwrites the previous outcome.
func (j *Journal) Write(rec Record) error {
	switch rec.Status {
	case StatusCreated, StatusFailed:
	default:
		return fmt.Errorf("invalid journal status %q", rec.Status)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now().UTC()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding journal record: %w", err)
	}
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDeposits).Put(key(rec.Source, rec.RowIndex), data)
	})
}

// Lookup returns the recorded outcome for a source row, if any.
func (j *Journal) Lookup(source string, rowIndex int) (Record, bool, error) {
	var rec Record
	var found bool
	err := j.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketDeposits).Get(key(source, rowIndex))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decoding journal record: %w", err)
		}
		found = true
		return nil
	})
	return rec, found, err
}

// Deposited reports whether a source row already has a created
// resource.
func (j *Journal) Deposited(source string, rowIndex int) (bool, error) {
	rec, found, err := j.Lookup(source, rowIndex)
	if err != nil {
		return false, err
	}
	return found && rec.Status == StatusCreated, nil
}

// Records returns all journaled outcomes for a source file, in row
// key order.
func (j *Journal) Records(source string) ([]Record, error) {
	var records []Record
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDeposits).ForEach(func(k, v []byte) error {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decoding journal record: %w", err)
			}
			if rec.Source == source {
				records = append(records, rec)
			}
			return nil
		})
	})
	return records, err
}

// key builds the bucket key for a source row. Row indices are fixed
// width so lexicographic bucket order matches row order.
func key(source string, rowIndex int) []byte {
	return []byte(source + "\x00" + pad(rowIndex))
}

func pad(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}
