package persist_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/enumerate"
	"github.com/katalvlaran/coronas/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, 10, 19, 12, 30, 45, 999, time.FixedZone("X", 3600))

// TestNewRun checks the document fields.
func TestNewRun(t *testing.T) {
	res, err := enumerate.Enumerate(context.Background(), 1, enumerate.DefaultOptions())
	require.NoError(t, err)

	run := persist.FromResult(res, stamp)
	assert.Equal(t, 1, run.Center)
	assert.Equal(t, 24, run.Count)
	assert.Len(t, run.Coronas, 24)
	assert.Equal(t, "1|2^0|2^0|2^0|2^0", run.Coronas[0])
	assert.Equal(t, time.Date(2026, 10, 19, 11, 30, 45, 0, time.UTC), run.Generated)
}

// TestWriteRead checks the JSON layout and the decode path.
func TestWriteRead(t *testing.T) {
	run := persist.NewRun(2, nil, stamp)
	run.Coronas = []string{"2|3^0|3^0|3^0|3^0"}
	run.Count = 1

	var buf bytes.Buffer
	require.NoError(t, persist.Write(&buf, run))
	assert.Equal(t, `{
  "center": 2,
  "count": 1,
  "generated": "2026-10-19T11:30:45Z",
  "coronas": [
    "2|3^0|3^0|3^0|3^0"
  ]
}
`, buf.String())

	got, err := persist.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, run, got)

	cs, err := got.Parse()
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "2|3^0|3^0|3^0|3^0", compact.Format(cs[0]))
}

// TestRead_Errors checks malformed documents.
func TestRead_Errors(t *testing.T) {
	_, err := persist.Read(strings.NewReader(`{"center":1,"count":2,"coronas":["1|2^0|2^0|2^0|2^0"]}`))
	assert.ErrorIs(t, err, persist.ErrCountMismatch)

	_, err = persist.Read(strings.NewReader(`{"count":0,"coronas":[]}`))
	assert.ErrorIs(t, err, persist.ErrNoCenter)

	_, err = persist.Read(strings.NewReader(`{`))
	assert.Error(t, err)

	run := persist.Run{Center: 1, Count: 1, Coronas: []string{"1|bad|2^0|2^0|2^0"}}
	_, err = run.Parse()
	assert.ErrorIs(t, err, compact.ErrBadToken)
}

// TestSaveLoad checks the file round trip.
func TestSaveLoad(t *testing.T) {
	coronas, err := enumerate.Unique(1)
	require.NoError(t, err)
	run := persist.NewRun(1, coronas, stamp)

	path := filepath.Join(t.TempDir(), "out", persist.FileName(1))
	assert.True(t, strings.HasSuffix(path, "coronas-center-1.json"))
	require.NoError(t, persist.Save(path, run))

	got, err := persist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, run, got)

	parsed, err := got.Parse()
	require.NoError(t, err)
	for i := range parsed {
		assert.True(t, parsed[i].Equal(coronas[i]))
	}

	_, err = persist.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
