package bolt_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	bbolt "go.etcd.io/bbolt"

	"kvsmoke/internal/store"
	"kvsmoke/internal/store/bolt"
)

var keepOutput = flag.Bool("keep", false, "Keep test output after running")

func testDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "kvsmoke-bolt-*")
	require.NoError(t, err)
	if !*keepOutput {
		t.Cleanup(func() { os.RemoveAll(dir) })
	} else {
		t.Logf("Test store: %s", dir)
	}
	return dir
}

func TestOpenLifecycle(t *testing.T) {
	dir := testDir(t)

	s, err := store.Open(bolt.Engine, store.Config{BaseDir: dir})
	require.NoError(t, err)
	require.True(t, s.IsOpen())

	require.NoError(t, s.Put([]byte("key"), []byte("Hello World!")))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())
	require.False(t, s.IsOpen())

	// Closing twice must not fail
	require.NoError(t, s.Close())

	// The database file must exist under the base folder
	_, err = os.Stat(filepath.Join(dir, bolt.FileName))
	require.NoError(t, err)
}

func TestReopenReadsBack(t *testing.T) {
	dir := testDir(t)

	s, err := bolt.Open(store.Config{BaseDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Put([]byte("k"), []byte("v")))
	require.NoError(t, s.Close())

	s, err = bolt.Open(store.Config{BaseDir: dir})
	require.NoError(t, err)
	defer s.Close()

	value, err := s.(*bolt.DB).Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)
}

func TestTuningHook(t *testing.T) {
	dir := testDir(t)

	var sawOptions bool
	s, err := bolt.Open(store.Config{
		BaseDir: dir,
		Tuning: func(options interface{}) {
			opts, ok := options.(*bbolt.Options)
			require.True(t, ok, "tuning hook should receive *bbolt.Options")
			opts.NoSync = true
			sawOptions = true
		},
	})
	require.NoError(t, err)
	defer s.Close()
	require.True(t, sawOptions)
}

func TestOpenRequiresBaseDir(t *testing.T) {
	_, err := bolt.Open(store.Config{})
	require.Error(t, err)
}

func TestOpenUnknownEngine(t *testing.T) {
	_, err := store.Open("no-such-engine", store.Config{BaseDir: testDir(t)})
	require.Error(t, err)
}
