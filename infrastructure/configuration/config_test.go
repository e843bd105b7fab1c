package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationDefaults(t *testing.T) {
	t.Run("app_defaults", func(t *testing.T) {
		require.NotZero(t, C.App.Port, "port should fall back to a default")
	})

	t.Run("storage_defaults", func(t *testing.T) {
		require.Equal(t, "file", C.Storage.Driver)
		require.Equal(t, "streamtube-storage", C.Storage.Namespace)
		require.NotEmpty(t, C.Storage.Path)
	})

	t.Run("database_defaults", func(t *testing.T) {
		require.Equal(t, "1433", C.Database.Mssql.Port, "MSSQL port should fall back to 1433")
	})
}
