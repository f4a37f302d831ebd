package observability

import (
	"context"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestGORMCallbacksRecordServerTiming(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	require.NoError(t, RegisterGORMCallbacks(db, Noop()))

	h := &servertiming.Header{}
	ctx := servertiming.NewContext(context.Background(), h)

	require.NoError(t, db.WithContext(ctx).Create(&widget{Name: "fork"}).Error)
	var got widget
	require.NoError(t, db.WithContext(ctx).First(&got).Error)

	assert.Equal(t, "fork", got.Name)
	require.Len(t, h.Metrics, 2)
	for _, m := range h.Metrics {
		assert.Equal(t, "db", m.Name)
	}
}

func TestGORMCallbacksWithoutTiming(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	require.NoError(t, RegisterGORMCallbacks(db, Noop()))

	require.NoError(t, db.Create(&widget{Name: "spoon"}).Error)
	var n int64
	require.NoError(t, db.Model(&widget{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
