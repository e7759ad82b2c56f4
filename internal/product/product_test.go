package product

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, `[
		{"name": "Mechanical Keyboard", "url": "https://www.amazon.com/dp/B08N5WRWNW"},
		{"name": "USB Hub", "url": "https://www.amazon.com/dp/B0C1234XYZ?th=1"}
	]`)

	ps := Load(path, zap.NewNop().Sugar())
	require.Len(t, ps, 2)
	require.Equal(t, "Mechanical Keyboard", ps[0].Name)
	require.Equal(t, "https://www.amazon.com/dp/B0C1234XYZ?th=1", ps[1].URL)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	ps := Load(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop().Sugar())
	require.Empty(t, ps)
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, `{"not": "an array"`)

	ps := Load(path, zap.NewNop().Sugar())
	require.Empty(t, ps)
}

func TestLoad_DropsInvalidEntries(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, `[
		{"name": "Valid", "url": "https://www.amazon.com/dp/B08N5WRWNW"},
		{"name": "", "url": "https://www.amazon.com/dp/B08N5WRWNW"},
		{"name": "No URL", "url": ""},
		{"name": "Bad URL", "url": "::not-a-url"}
	]`)

	ps := Load(path, zap.NewNop().Sugar())
	require.Len(t, ps, 1)
	require.Equal(t, "Valid", ps[0].Name)
}
