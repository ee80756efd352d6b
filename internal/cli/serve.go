package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/cache"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
	"github.com/matzehuels/hillclimb/pkg/server"
)

// envRedisAddr is read when --redis-addr is not given.
const envRedisAddr = "HILLCLIMB_REDIS_ADDR"

// keyPrefix namespaces cache keys in a shared Redis.
const keyPrefix = appName + ":"

type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	noCache       bool
}

// serveCommand creates the serve command, which starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serve the search over HTTP:

  GET  /healthz          liveness probe
  POST /api/v1/walk      search a problem, returns JSON
  POST /api/v1/render    draw a problem (?format=svg&path=true)

Results and diagrams are cached in Redis when --redis-addr or
` + envRedisAddr + ` is set, otherwise in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisAddr == "" {
				opts.redisAddr = os.Getenv(envRedisAddr)
			}
			return c.serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the shared cache (env "+envRedisAddr+")")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) serve(ctx context.Context, opts serveOpts) error {
	cc, err := c.serverCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, keyPrefix), c.Logger)
	defer runner.Close()

	srv := server.New(runner, c.Logger, server.Config{Addr: opts.addr})
	return srv.ListenAndServe(ctx)
}

// serverCache picks Redis when an address is configured and falls back to
// the file cache.
func (c *CLI) serverCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr == "" {
		return newCache(false)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     opts.redisAddr,
		Password: opts.redisPassword,
		DB:       opts.redisDB,
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("using redis cache", "addr", opts.redisAddr)
	return rc, nil
}
