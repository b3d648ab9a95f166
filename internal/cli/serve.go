package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/cache"
	"github.com/matzehuels/menulayout/pkg/pipeline"
	"github.com/matzehuels/menulayout/pkg/server"
	"github.com/matzehuels/menulayout/pkg/store"
)

// Redis may still be starting when the server comes up.
const (
	redisAttempts = 5
	redisBackoff  = 500 * time.Millisecond
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	storeDir      string
	ttl           time.Duration
	noCache       bool
}

// serveCommand creates the serve command for the HTTP scene API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: server.DefaultConfig().Addr, ttl: store.DefaultTTL}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenes over HTTP",
		Long: `Run the scene API.

Scenes are kept in memory by default. With --store-dir they are written to
disk, and with --redis-addr they are shared through Redis so that several
instances can serve the same scenes. Redis also backs the render cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runServe(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for scenes and cache")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "directory for scene records (ignored with --redis-addr)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "idle lifetime of a scene")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	st, runner, err := c.serveBackends(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close()
	defer runner.Close()

	cfg := server.DefaultConfig()
	cfg.Addr = opts.addr
	cfg.TTL = opts.ttl

	return server.New(cfg, st, runner, c.Logger).Run(ctx)
}

// serveBackends picks the scene store and render cache for the server.
func (c *CLI) serveBackends(ctx context.Context, opts serveOpts) (store.Store, *pipeline.Runner, error) {
	if opts.redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     opts.redisAddr,
			Password: opts.redisPassword,
			DB:       opts.redisDB,
		})
		err := retry(ctx, redisAttempts, redisBackoff, func() error {
			if err := client.Ping(ctx).Err(); err != nil {
				c.Logger.Debug("redis not ready", "addr", opts.redisAddr, "err", err)
				return &retryableError{err}
			}
			return nil
		})
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", opts.redisAddr, err)
		}
		c.Logger.Info("using redis", "addr", opts.redisAddr)

		st := store.NewRedisFromClient(client, store.DefaultRedisPrefix)
		var ch cache.Cache = cache.NewRedisCacheFromClient(client, appName+":")
		if opts.noCache {
			ch = cache.NewNullCache()
		}
		keyer := cache.NewScopedKeyer(nil, "serve:")
		return &closingStore{Store: st, closeFn: client.Close}, pipeline.NewRunner(ch, keyer, c.Logger), nil
	}

	var st store.Store = store.NewMemory()
	if opts.storeDir != "" {
		fs, err := store.NewFileStore(opts.storeDir)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Info("using file store", "dir", fs.Path())
		st = fs
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, runner, nil
}

// closingStore closes the shared Redis client along with the store.
type closingStore struct {
	store.Store
	closeFn func() error
}

func (s *closingStore) Close() error {
	err := s.Store.Close()
	if cerr := s.closeFn(); err == nil {
		err = cerr
	}
	return err
}
