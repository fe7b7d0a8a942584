package dataset

import (
	"time"

	"github.com/starford/munro/internal/models"
)

// Store is the process-wide immutable Munro collection. It is constructed
// exactly once at startup and shared by reference with every consumer;
// nothing mutates it afterwards, so concurrent reads need no locking.
type Store struct {
	munros      []models.Munro
	byRunningNo map[int]int

	sourcePath string
	checksum   string
	loadedAt   time.Time
}

// NewStore builds a Store over the given records. The slice is owned by the
// Store from this point on; callers must not retain a mutable reference.
func NewStore(munros []models.Munro) *Store {
	byNo := make(map[int]int, len(munros))
	for i, m := range munros {
		// Running numbers are unique in the dataset; on a duplicate the
		// first row wins and the rest are reachable only via All.
		if _, ok := byNo[m.RunningNo]; !ok {
			byNo[m.RunningNo] = i
		}
	}
	return &Store{
		munros:      munros,
		byRunningNo: byNo,
		loadedAt:    time.Now(),
	}
}

// All returns the full collection in dataset order. The returned slice is
// the Store's backing array: read-only by contract, callers copy before
// sorting or truncating.
func (s *Store) All() []models.Munro {
	return s.munros
}

// ByRunningNumber returns the unique record with the given running number.
func (s *Store) ByRunningNumber(n int) (models.Munro, bool) {
	i, ok := s.byRunningNo[n]
	if !ok {
		return models.Munro{}, false
	}
	return s.munros[i], true
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.munros)
}

// SourcePath returns the file the collection was loaded from, if any.
func (s *Store) SourcePath() string {
	return s.sourcePath
}

// Checksum returns the SHA-256 digest of the source file at load time,
// or the empty string when the Store was built without a file.
func (s *Store) Checksum() string {
	return s.checksum
}

// LoadedAt returns the time the Store was constructed.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}
