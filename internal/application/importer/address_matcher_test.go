package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-tienda/internal/application/importer"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/memory"
)

func TestMatchAddress(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()
	for _, a := range []string{
		"ул. Ленина, 10, Москва",
		"420151, г. Лесной, ул. Вишневая, 32",
	} {
		_, _, err := repos.DeliveryPoints.FindOrCreate(ctx, a)
		require.NoError(t, err)
	}

	dp, err := importer.MatchAddress(ctx, repos.DeliveryPoints, "ул. Ленина, 10")
	require.NoError(t, err)
	require.NotNil(t, dp)
	assert.Equal(t, "ул. Ленина, 10, Москва", dp.Address)

	dp, err = importer.MatchAddress(ctx, repos.DeliveryPoints, "ул. Неизвестная")
	require.NoError(t, err)
	assert.Nil(t, dp)

	dp, err = importer.MatchAddress(ctx, repos.DeliveryPoints, "   ")
	require.NoError(t, err)
	assert.Nil(t, dp)

	dp, err = importer.MatchAddress(ctx, repos.DeliveryPoints, "УЛ. ЛЕНИНА, 10")
	require.NoError(t, err)
	assert.Nil(t, dp, "distingue mayúsculas")
}

func TestMatchAddress_TruncaA30Caracteres(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()
	_, _, err := repos.DeliveryPoints.FindOrCreate(ctx, "420151, г. Лесной, ул. Вишневая, 32")
	require.NoError(t, err)

	// Los primeros 30 caracteres coinciden; el resto difiere.
	dp, err := importer.MatchAddress(ctx, repos.DeliveryPoints, "420151, г. Лесной, ул. Вишнева корпус 2")
	require.NoError(t, err)
	require.NotNil(t, dp)
	assert.Equal(t, "420151, г. Лесной, ул. Вишневая, 32", dp.Address)
}
