package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ckvfile "github.com/MihirLuthra/ckv-file-parser"
	"github.com/MihirLuthra/ckv-file-parser/pkg/adapters/fs"
	"github.com/MihirLuthra/ckv-file-parser/pkg/ckv"
	"github.com/MihirLuthra/ckv-file-parser/pkg/core"
)

func tempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ckv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func fileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestLifecycle drives a file through the full create/read/update/delete
// cycle using the public facade.
func TestLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ckv")
	ctx := context.Background()

	svc, err := ckvfile.New(path, ckvfile.WithAllowMissing(true))
	require.NoError(t, err)

	// Create
	require.NoError(t, svc.SetValue(ctx, "name", "Alice"))
	require.NoError(t, svc.SetValue(ctx, "bio", "line one\nline two"))
	require.NoError(t, svc.SetValue(ctx, "empty", ""))

	assert.Equal(t, "name=Alice\nbio=line one\n\tline two\nempty=\n", fileContent(t, path))

	// Read
	val, err := svc.GetValue(ctx, "bio")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", val)

	m, err := svc.ImportToMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":  "Alice",
		"bio":   "line one\nline two",
		"empty": "",
	}, m)

	// Update in place
	require.NoError(t, svc.SetValue(ctx, "name", "Bob"))
	assert.Equal(t, "name=Bob\nbio=line one\n\tline two\nempty=\n", fileContent(t, path))

	// Delete
	require.NoError(t, svc.RemoveKey(ctx, "bio"))
	assert.Equal(t, "name=Bob\nempty=\n", fileContent(t, path))
}

func TestOneShotSurface(t *testing.T) {
	path := tempFile(t, "key1=a\nkey2=b\n")

	m, err := ckvfile.ImportToMap(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"key1": "a", "key2": "b"}, m)

	require.NoError(t, ckvfile.SetValueForKey(path, "key2", "c"))
	assert.Equal(t, "key1=a\nkey2=c\n", fileContent(t, path))

	val, err := ckvfile.GetValueForKey(path, "key2")
	require.NoError(t, err)
	assert.Equal(t, "c", val)

	require.NoError(t, ckvfile.RemoveKey(path, "key1"))
	assert.Equal(t, "key2=c\n", fileContent(t, path))
}

func TestKeyIsolation(t *testing.T) {
	path := tempFile(t, "a=1\nb=x\n\ty\n\nc= spaced \n")
	ctx := context.Background()

	svc, err := ckvfile.New(path)
	require.NoError(t, err)

	before, err := svc.ImportToMap(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveKey(ctx, "b"))

	after, err := svc.ImportToMap(ctx)
	require.NoError(t, err)

	delete(before, "b")
	assert.Equal(t, before, after, "removing one key must leave every other value byte-identical")
}

func TestParseErrorLineAccuracy(t *testing.T) {
	path := tempFile(t, "a=1\nb=2\nc=3\nd=4\nnoequals\n")

	_, err := ckvfile.ImportToMap(path)
	var perr *ckv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Line)
	assert.ErrorIs(t, err, ckv.ErrMissingEqualTo)
}

func TestStrayTabLineNumber(t *testing.T) {
	path := tempFile(t, "\n\n\n\n\tstray\n")

	_, err := ckvfile.ImportToMap(path)
	var perr *ckv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Line)
	assert.ErrorIs(t, err, ckv.ErrValueWithoutAKey)
}

func TestMutationFailureLeavesFileUntouched(t *testing.T) {
	const broken = "good=1\n=bad\n"
	path := tempFile(t, broken)

	err := ckvfile.SetValueForKey(path, "good", "2")
	assert.ErrorIs(t, err, ckv.ErrEqualToWithoutAKey)
	assert.Equal(t, broken, fileContent(t, path), "no partial write on parse failure")

	err = ckvfile.RemoveKey(tempFile(t, "a=1\n"), "ghost")
	var notFound *core.KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ghost", notFound.Key)
}

func TestMissingFileSurfacesFileOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.ckv")

	_, err := ckvfile.ImportToMap(path)
	var ferr *fs.FileOpenError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, path, ferr.Path)
}

func TestStrictModesViaOptions(t *testing.T) {
	t.Run("StrictKeys", func(t *testing.T) {
		path := tempFile(t, "flag-a=\nflag-b=\n")
		m, err := ckvfile.ImportToMap(path, ckvfile.WithStrictKeys(true))
		require.NoError(t, err)
		assert.Len(t, m, 2)

		path = tempFile(t, "flag-a=\nflag-b=on\n")
		_, err = ckvfile.ImportToMap(path, ckvfile.WithStrictKeys(true))
		assert.ErrorIs(t, err, ckv.ErrTrailingCharsAfterEqualTo)
	})

	t.Run("BlankTermination", func(t *testing.T) {
		path := tempFile(t, "a=x\n\n\ty\n")

		m, err := ckvfile.ImportToMap(path)
		require.NoError(t, err)
		assert.Equal(t, "x\ny", m["a"])

		_, err = ckvfile.ImportToMap(path, ckvfile.WithBlankTermination(true))
		assert.ErrorIs(t, err, ckv.ErrValueWithoutAKey)
	})
}

func TestSetIdempotenceOnDisk(t *testing.T) {
	path := tempFile(t, "a=1\nb=2\n")

	require.NoError(t, ckvfile.SetValueForKey(path, "b", "new"))
	once := fileContent(t, path)

	require.NoError(t, ckvfile.SetValueForKey(path, "b", "new"))
	assert.Equal(t, once, fileContent(t, path))
}

func TestInjectedRepository(t *testing.T) {
	repo := fs.NewRepository(fs.Config{
		Path:         filepath.Join(t.TempDir(), "injected.ckv"),
		AllowMissing: true,
	})

	svc, err := ckvfile.New("ignored", ckvfile.WithRepository(repo))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, svc.SetValue(ctx, "k", "v"))

	val, err := svc.GetValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestErrorsAreTyped(t *testing.T) {
	path := tempFile(t, "a=1\n")

	_, err := ckvfile.GetValueForKey(path, "missing")
	var notFound *core.KeyNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Key)
	assert.Equal(t, `"missing": key not found`, notFound.Error())
}
