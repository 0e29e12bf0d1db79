package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
	"github.com/jhoicas/catalogo-tienda/internal/infrastructure/memory"
)

func TestDimensionFindOrCreate_ConcurrenteCreaUnaSolaFila(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, _, err := repos.Dimensions.FindOrCreate(ctx, entity.KindCategory, "Женская обувь")
			if assert.NoError(t, err) {
				ids[i] = d.ID
			}
		}(i)
	}
	wg.Wait()

	list, err := repos.Dimensions.ListByKind(ctx, entity.KindCategory)
	require.NoError(t, err)
	require.Len(t, list, 1)
	for _, id := range ids {
		assert.Equal(t, list[0].ID, id)
	}
}

func TestDimensionFindOrCreate_SensibleAMayusculas(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()

	_, created, err := repos.Dimensions.FindOrCreate(ctx, entity.KindSupplier, "Kari")
	require.NoError(t, err)
	assert.True(t, created)
	_, created, err = repos.Dimensions.FindOrCreate(ctx, entity.KindSupplier, "kari")
	require.NoError(t, err)
	assert.True(t, created, "la clave natural es exacta")
}

func TestProductSave_PoliticaUpsertVsCreateIfAbsent(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()

	p := &entity.Product{Article: "A112T4", Name: "Ботинки", Price: decimal.RequireFromString("4990")}
	first, created, err := repos.Products.Save(ctx, p, repository.Upsert)
	require.NoError(t, err)
	require.True(t, created)

	ok, err := repos.Products.SetImageIfEmpty(ctx, first.ID, "products/1.jpg")
	require.NoError(t, err)
	require.True(t, ok)

	p.Price = decimal.RequireFromString("5100")
	_, _, err = repos.Products.Save(ctx, p, repository.CreateIfAbsent)
	require.NoError(t, err)
	got, err := repos.Products.GetByArticle(ctx, "A112T4")
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("4990")), "create-if-absent no modifica")

	saved, created, err := repos.Products.Save(ctx, p, repository.Upsert)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, saved.ID)
	assert.True(t, saved.Price.Equal(decimal.RequireFromString("5100")))
	assert.Equal(t, "products/1.jpg", saved.ImagePath, "upsert no toca la imagen")

	ok, err = repos.Products.SetImageIfEmpty(ctx, first.ID, "products/2.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeliveryPointFindFirstContaining_OrdenDeAlmacenamiento(t *testing.T) {
	repos := memory.NewStore().Repositories()
	ctx := context.Background()

	for _, a := range []string{"ул. Ленина, 10, Москва", "ул. Ленина, 10, Тула"} {
		_, _, err := repos.DeliveryPoints.FindOrCreate(ctx, a)
		require.NoError(t, err)
	}

	dp, err := repos.DeliveryPoints.FindFirstContaining(ctx, "ул. Ленина, 10")
	require.NoError(t, err)
	require.NotNil(t, dp)
	assert.Equal(t, "ул. Ленина, 10, Москва", dp.Address)

	dp, err = repos.DeliveryPoints.FindFirstContaining(ctx, "ул. Неизвестная")
	require.NoError(t, err)
	assert.Nil(t, dp)
}
