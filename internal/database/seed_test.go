package database

import (
	"testing"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestReseed_LoadsFixtures(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Reseed())

	var firms, products, users, posts int64
	require.NoError(t, db.Model(&models.Firm{}).Count(&firms).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)

	require.NotZero(t, firms)
	require.NotZero(t, products)
	require.NotZero(t, users)
	require.NotZero(t, posts)

	// Every product points at an existing firm.
	var orphaned int64
	require.NoError(t, db.Model(&models.Product{}).
		Where("firm_producer NOT IN (?)", db.Model(&models.Firm{}).Select("id")).
		Count(&orphaned).Error)
	require.Zero(t, orphaned)
}

func TestReseed_IsRepeatable(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Reseed())
	require.NoError(t, Reseed())

	// The second run replaces, not duplicates.
	var firms int64
	require.NoError(t, db.Model(&models.Firm{}).Count(&firms).Error)
	require.Equal(t, int64(3), firms)
}
