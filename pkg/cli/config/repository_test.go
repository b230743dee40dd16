package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/inventry-dev/inventry/pkg/cli/config"
)

func TestRepository_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "", "")
		repo, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend without project ID is an error", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err)
	})

	t.Run("unknown backend is an error", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("cassandra", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err)
	})

	t.Run("returns flags", func(t *testing.T) {
		var cfg config.Repository
		gt.Value(t, len(cfg.Flags())).Equal(3)
	})
}
