package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, ".", cfg.Import.Path)
	assert.Equal(t, ".", cfg.Import.ResolvedImagesPath(), "sin IMPORT_IMAGES_PATH se usan las imágenes de Path")
	assert.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("IMPORT_PATH", "/data/excel")
	v.Set("IMPORT_IMAGES_PATH", "/data/fotos")
	v.Set("DB_PORT", "6543")
	v.Set("STORAGE_DRIVER", "S3")
	v.Set("STORAGE_BUCKET", "media")

	cfg := fromViper(v)

	assert.Equal(t, "/data/fotos", cfg.Import.ResolvedImagesPath())
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, StorageDriverS3, cfg.Storage.Driver)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Misconfiguration(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.Storage.Driver = "ftp"
	assert.Error(t, cfg.Validate())

	cfg.Storage.Driver = StorageDriverS3
	cfg.Storage.Bucket = ""
	assert.Error(t, cfg.Validate(), "s3 sin bucket debe fallar")
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/tienda?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
