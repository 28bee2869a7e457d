package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/ramp"
	"github.com/stretchr/testify/assert"
	bolt "go.etcd.io/bbolt"
)

func createPersistence(t *testing.T) Persistence {
	dbPath := filepath.Join(t.TempDir(), "db", "traces.db")
	p := NewPersistence(dbPath)
	err := p.Init()
	assert.NoError(t, err)
	return p
}

func createTrace(name string) Trace {
	return Trace{
		Name:      name,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Seed:      0x40,
		PwmMin:    62,
		Input:     128,
		Legs: []ramp.Leg{
			{
				From:   255,
				To:     253,
				Duties: []duty.DutyCycle{254, 253},
				Waits:  []int{59, 59},
			},
		},
	}
}

func TestPersistence_Init_CreatesDirectory(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "traces.db")
	p := NewPersistence(dbPath)

	// WHEN
	err := p.Init()

	// THEN
	assert.NoError(t, err)
	assert.DirExists(t, filepath.Dir(dbPath))
}

func TestPersistence_SaveAndLoadTrace(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	expected := createTrace("slow")

	// WHEN
	err := p.SaveTrace(expected)
	assert.NoError(t, err)
	result, err := p.LoadTrace("slow")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestPersistence_SaveTrace_EmptyName(t *testing.T) {
	// GIVEN
	p := createPersistence(t)

	// WHEN
	err := p.SaveTrace(createTrace(""))

	// THEN
	assert.EqualError(t, err, "trace name must not be empty")
}

func TestPersistence_LoadTrace_Missing(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	_ = p.SaveTrace(createTrace("slow"))

	// WHEN
	_, err := p.LoadTrace("fast")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPersistence_LoadTrace_Corrupt(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "traces.db")
	db, err := bolt.Open(dbPath, 0600, nil)
	assert.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketTraces))
		if err != nil {
			return err
		}
		return b.Put([]byte("broken"), []byte("{"))
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	p := NewPersistence(dbPath)

	// WHEN
	_, err = p.LoadTrace("broken")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
	names, err := p.ListTraces()
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestPersistence_ListTraces(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	for _, name := range []string{"slow", "fast", "medium"} {
		assert.NoError(t, p.SaveTrace(createTrace(name)))
	}

	// WHEN
	names, err := p.ListTraces()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []string{"fast", "medium", "slow"}, names)
}

func TestPersistence_ListTraces_Empty(t *testing.T) {
	// GIVEN
	p := createPersistence(t)

	// WHEN
	names, err := p.ListTraces()

	// THEN
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestPersistence_DeleteTrace(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	assert.NoError(t, p.SaveTrace(createTrace("slow")))

	// WHEN
	err := p.DeleteTrace("slow")

	// THEN
	assert.NoError(t, err)
	_, err = p.LoadTrace("slow")
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = p.DeleteTrace("slow")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
