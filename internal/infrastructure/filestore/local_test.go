package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/filestore"
	"github.com/jhoicas/catalogo-tienda/pkg/config"
)

func TestLocalPut(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")
	store, err := filestore.NewLocal(root)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "products/1.jpg", strings.NewReader("uno"), 3))
	require.NoError(t, store.Put(ctx, "products/1.jpg", strings.NewReader("dos"), 3))

	data, err := os.ReadFile(filepath.Join(root, "products", "1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "dos", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "products"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no quedan temporales")
}

func TestLocalPut_RechazaClavesFueraDeRaiz(t *testing.T) {
	store, err := filestore.NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../x.jpg", "/etc/x.jpg", "", "products/../../x.jpg"} {
		err := store.Put(context.Background(), key, strings.NewReader("x"), 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, key)
	}
}

func TestNew_Driver(t *testing.T) {
	cfg := &config.Config{
		Import:  config.ImportConfig{MediaRoot: t.TempDir()},
		Storage: config.StorageConfig{Driver: config.StorageDriverLocal},
	}
	s, err := filestore.New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &filestore.Local{}, s)

	cfg.Storage.Driver = "ftp"
	_, err = filestore.New(context.Background(), cfg)
	assert.Error(t, err)
}
