package persistence

import (
	"os"
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/stretchr/testify/assert"
)

func createPersistence(t *testing.T) (Persistence, string) {
	dbPath := filepath.Join(t.TempDir(), "db", "ecfan.db")
	p := NewPersistence(dbPath)
	assert.NoError(t, p.Init())
	return p, dbPath
}

func TestPersistence_InitCreatesDirectory(t *testing.T) {
	// WHEN
	_, dbPath := createPersistence(t)

	// THEN
	info, err := os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPersistence_SaveAndLoadHistory(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	snapshot := HistorySnapshot{
		Temperature: []int{40, 41, 42},
		Read:        [][]int{{10, 20}, {30}},
	}

	// WHEN
	err := p.SaveHistory("cpu", snapshot)
	assert.NoError(t, err)
	result, err := p.LoadHistory("cpu")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, snapshot, result)
}

func TestPersistence_LoadHistoryNotExisting(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	assert.NoError(t, p.SaveHistory("cpu", HistorySnapshot{}))

	// WHEN
	_, err := p.LoadHistory("gpu")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_LoadHistoryWithoutBucket(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)

	// WHEN
	_, err := p.LoadHistory("cpu")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_DeleteHistory(t *testing.T) {
	// GIVEN
	p, _ := createPersistence(t)
	_ = p.SaveHistory("cpu", HistorySnapshot{Temperature: []int{1}})

	// WHEN
	err := p.DeleteHistory("cpu")

	// THEN
	assert.NoError(t, err)
	_, err = p.LoadHistory("cpu")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_CorruptHistoryIsDeleted(t *testing.T) {
	// GIVEN
	p, dbPath := createPersistence(t)
	db, err := bolt.Open(dbPath, 0600, nil)
	assert.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketHistory))
		if err != nil {
			return err
		}
		return b.Put([]byte("cpu"), []byte("not json"))
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	// WHEN
	_, err = p.LoadHistory("cpu")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}
