package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datecalc/internal/models"
	"datecalc/internal/testutil"
)

func testRecords() []*models.HistoryRecord {
	return []*models.HistoryRecord{
		{
			ID:         "20200115-120000-abcde",
			Op:         models.OpDifference,
			Calendar:   "gregorian",
			Expression: "2020-01-15 .. 2023-03-20",
			Result:     "3 years, 2 months, 5 days",
			CreatedAt:  time.Date(2020, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         "20200116-090000-fghij",
			Op:         models.OpAdd,
			Calendar:   "gregorian",
			Expression: "2020-01-16 + 1y 0m 0d",
			Result:     "January 16, 2021",
			CreatedAt:  time.Date(2020, 1, 16, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestFileManager_SaveAndLoad(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	logger := &testutil.MockLogger{}

	source := &testutil.MockCalculatorService{HistoryRecords: testRecords()}
	path := filepath.Join(t.TempDir(), "history.dat")

	fm := NewFileManager(compressor, source, logger)
	require.NoError(t, fm.SaveToFile(path))

	// temp file must be gone after the rename
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	target := &testutil.MockCalculatorService{}
	fm2 := NewFileManager(compressor, target, logger)
	require.NoError(t, fm2.LoadFromFile(path))

	require.Len(t, target.PutRecordsCalls, 1)
	restored := target.PutRecordsCalls[0]
	require.Len(t, restored, 2)
	assert.Equal(t, "20200115-120000-abcde", restored[0].ID)
	assert.Equal(t, models.OpAdd, restored[1].Op)
	assert.Equal(t, "January 16, 2021", restored[1].Result)
}

func TestFileManager_LoadMissingFile(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	target := &testutil.MockCalculatorService{}
	fm := NewFileManager(compressor, target, &testutil.MockLogger{})

	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "missing.dat")))
	assert.Empty(t, target.PutRecordsCalls)
}

func TestFileManager_LoadCorruptFile(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.dat")
	require.NoError(t, os.WriteFile(path, []byte("corrupt"), 0644))

	target := &testutil.MockCalculatorService{}
	fm := NewFileManager(compressor, target, &testutil.MockLogger{})

	assert.Error(t, fm.LoadFromFile(path))
	assert.Empty(t, target.PutRecordsCalls)
}

func TestFileManager_LoadInconsistentJson(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	logger := &testutil.MockLogger{}

	compressed, err := compressor.Compress([]byte("{not json"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.dat")
	require.NoError(t, os.WriteFile(path, compressed, 0644))

	target := &testutil.MockCalculatorService{}
	fm := NewFileManager(compressor, target, logger)

	assert.Error(t, fm.LoadFromFile(path))
	assert.Empty(t, target.PutRecordsCalls)
	assert.NotEmpty(t, logger.Logs)
}

func TestFileManager_SaveEmptyHistory(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	source := &testutil.MockCalculatorService{}
	path := filepath.Join(t.TempDir(), "history.dat")

	fm := NewFileManager(compressor, source, &testutil.MockLogger{})
	require.NoError(t, fm.SaveToFile(path))

	target := &testutil.MockCalculatorService{}
	fm2 := NewFileManager(compressor, target, &testutil.MockLogger{})
	require.NoError(t, fm2.LoadFromFile(path))

	// an empty snapshot restores nothing
	assert.Empty(t, target.PutRecordsCalls)
}
