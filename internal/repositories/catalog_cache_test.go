package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/css-society/events-api/internal/models"
)

func TestCatalogCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewCatalogCacheRepository(rdb, 2*time.Second)

	events := []models.EventDB{
		{Slug: "css-abacus", Name: "CSS Abacus", Section: models.SectionYearly},
		{Slug: "css-olympics", Name: "CSS Olympics", Section: models.SectionYearly},
	}

	t.Run("Set and Get section", func(t *testing.T) {
		err := repo.SetSection(ctx, models.SectionYearly, events)
		assert.NoError(t, err)

		got, err := repo.GetSection(ctx, models.SectionYearly)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "css-abacus", got[0].Slug)
	})

	t.Run("Miss returns nil without error", func(t *testing.T) {
		got, err := repo.GetSection(ctx, models.SectionCultural)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("InvalidateAll drops every section", func(t *testing.T) {
		assert.NoError(t, repo.SetSection(ctx, models.SectionYearly, events))
		assert.NoError(t, repo.SetSection(ctx, models.SectionTechnical, events))

		assert.NoError(t, repo.InvalidateAll(ctx))

		got, err := repo.GetSection(ctx, models.SectionYearly)
		assert.NoError(t, err)
		assert.Nil(t, got)
		got, err = repo.GetSection(ctx, models.SectionTechnical)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached section expires", func(t *testing.T) {
		assert.NoError(t, repo.SetSection(ctx, models.SectionUpcoming, events))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := repo.GetSection(ctx, models.SectionUpcoming)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
