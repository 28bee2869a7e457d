package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/markusressel/spiro2go/internal/ramp"
	"github.com/markusressel/spiro2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketTraces = "traces"
)

// Trace is the recording of an offline ramp simulation
type Trace struct {
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	Seed      uint8      `json:"seed"`
	PwmMin    uint8      `json:"pwmMin"`
	Input     uint8      `json:"input"`
	Legs      []ramp.Leg `json:"legs"`
}

type Persistence interface {
	Init() error

	SaveTrace(trace Trace) error
	LoadTrace(name string) (Trace, error)
	ListTraces() ([]string, error)
	DeleteTrace(name string) error
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
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
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

// SaveTrace stores the given trace, replacing an existing one with the same name
func (p persistence) SaveTrace(trace Trace) (err error) {
	if len(trace.Name) <= 0 {
		return errors.New("trace name must not be empty")
	}

	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(trace)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketTraces))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		return b.Put([]byte(trace.Name), data)
	})
}

// LoadTrace returns os.ErrNotExist if there is no trace with the given name
func (p persistence) LoadTrace(name string) (Trace, error) {
	var trace Trace

	db, err := p.openPersistence()
	if err != nil {
		return trace, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	corrupt := false
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketTraces))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(name))
		if v == nil {
			return os.ErrNotExist
		}

		err := json.Unmarshal(v, &trace)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved trace %s: %v", name, err)
			err := b.Delete([]byte(name))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", name, err)
			}
			corrupt = true
		}
		return nil
	})
	if err == nil && corrupt {
		return Trace{}, os.ErrNotExist
	}

	return trace, err
}

func (p persistence) ListTraces() ([]string, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var names []string
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketTraces))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	sort.Strings(names)
	return names, err
}

func (p persistence) DeleteTrace(name string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketTraces))
		if b == nil {
			return os.ErrNotExist
		}
		if b.Get([]byte(name)) == nil {
			return os.ErrNotExist
		}
		return b.Delete([]byte(name))
	})
}
