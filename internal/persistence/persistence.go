package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/ecfan/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketHistory = "history"
)

// HistorySnapshot is the persisted telemetry history of a single fan
type HistorySnapshot struct {
	Temperature []int   `json:"temperature"`
	Read        [][]int `json:"read"`
}

type Persistence interface {
	Init() error

	LoadHistory(fanName string) (HistorySnapshot, error)
	SaveHistory(fanName string, snapshot HistorySnapshot) error
	DeleteHistory(fanName string) error
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		// create directory
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SaveHistory saves the history snapshot of the given fan to persistence
func (p persistence) SaveHistory(fanName string, snapshot HistorySnapshot) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketHistory))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		return b.Put([]byte(fanName), data)
	})
}

// LoadHistory loads the history snapshot of the given fan from persistence.
// os.ErrNotExist is returned if no snapshot has been saved yet.
func (p persistence) LoadHistory(fanName string) (HistorySnapshot, error) {
	var snapshot HistorySnapshot

	db, err := p.openPersistence()
	if err != nil {
		return snapshot, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	corrupt := false
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketHistory))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(fanName))
		if v == nil {
			return os.ErrNotExist
		}

		err := json.Unmarshal(v, &snapshot)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved history of %s: %v", fanName, err)
			corrupt = true
			err := b.Delete([]byte(fanName))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", fanName, err)
			}
			return nil
		}

		return nil
	})
	if corrupt {
		return HistorySnapshot{}, os.ErrNotExist
	}

	return snapshot, err
}

// DeleteHistory deletes the history snapshot of the given fan from persistence
func (p persistence) DeleteHistory(fanName string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketHistory))
		if b == nil {
			// no history bucket yet
			return nil
		}
		return b.Delete([]byte(fanName))
	})
}
