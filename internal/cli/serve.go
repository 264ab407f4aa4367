package cli

import (
	"github.com/spf13/cobra"

	"github.com/mengfei0517/robocasa/internal/server"
	"github.com/mengfei0517/robocasa/pkg/cache"
	"github.com/mengfei0517/robocasa/pkg/pipeline"
	"github.com/mengfei0517/robocasa/pkg/store"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		mongoDB  string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scene-resolution HTTP API",
		Long: `Serve exposes the resolution pipeline over HTTP.

Without flags the server uses the local file cache and an in-memory scene
archive. Point --redis at a Redis instance to share the resolution cache
across replicas, and --mongo at a MongoDB deployment to persist resolved
scenes across restarts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ctx := cmd.Context()

			var (
				ca  cache.Cache
				err error
			)
			switch {
			case noCache:
				ca = cache.NewNullCache()
			case redisURL != "":
				if ca, err = cache.NewRedisCache(ctx, redisURL); err != nil {
					return err
				}
				logger.Info("using redis cache")
			default:
				if ca, err = newCache(false); err != nil {
					return err
				}
			}

			var st store.Store
			if mongoURI != "" {
				ms, err := store.NewMongoStore(ctx, mongoURI, mongoDB)
				if err != nil {
					return err
				}
				defer ms.Close(ctx)
				st = ms
				logger.Info("using mongo scene archive", "db", mongoDB)
			} else {
				st = store.NewMemoryStore()
			}

			runner := pipeline.NewRunner(ca, nil, logger)
			defer runner.Close()

			return server.New(runner, st, logger).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis URL for a shared resolution cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb URI for persistent scene storage")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "scenegen", "mongodb database name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the resolution cache")

	return cmd
}
