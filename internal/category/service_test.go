package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/product"
	"github.com/MikeMC777/restau-management/internal/testutil"
)

func TestCRUD(t *testing.T) {
	svc := category.NewService(category.NewGormRepo(testutil.DB(t)))
	ctx := context.Background()

	c, err := svc.Create(ctx, category.Request{Name: "  Desserts "})
	require.NoError(t, err)
	assert.Equal(t, "Desserts", c.Name)

	_, err = svc.Create(ctx, category.Request{Name: " "})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = svc.Create(ctx, category.Request{Name: "Starters"})
	require.NoError(t, err)

	found, err := svc.Search(ctx, "dess")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, c.ID, found[0].ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	c, err = svc.Update(ctx, c.ID, category.Request{Name: "Sweets"})
	require.NoError(t, err)
	assert.Equal(t, "Sweets", c.Name)

	_, err = svc.Update(ctx, 999, category.Request{Name: "x"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.Get(ctx, c.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(ctx, c.ID), apperr.ErrNotFound))
}

func TestDeleteReferencedCategory(t *testing.T) {
	db := testutil.DB(t)
	svc := category.NewService(category.NewGormRepo(db))
	c := testutil.Category(t, db, "Drinks")
	require.NoError(t, db.Create(&product.Product{Name: "Cola", CategoryID: &c.ID}).Error)

	assert.True(t, errors.Is(svc.Delete(context.Background(), c.ID), apperr.ErrConflict))
}
