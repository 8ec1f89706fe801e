package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogposts/app/config"
	"blogposts/app/fixtures"
	"blogposts/app/middleware"
	"blogposts/app/repositories"
	mongostore "blogposts/app/repositories/mongo"
	"blogposts/app/routes"
	"blogposts/app/services"
	"blogposts/app/validation"
	"blogposts/pkg/logger"
)

// cli carries the parsed flags and the streams of one invocation.
type cli struct {
	opts   options
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// backend is an opened store with its repositories.
type backend struct {
	blogs repositories.BlogRepository
	posts repositories.PostRepository
	ping  func(ctx context.Context) error
	close func() error
}

func (c *cli) loadConfig() (*config.Config, error) {
	file := c.opts.configFile
	if file == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			file = defaultConfigFile
		}
	}
	return config.Load(file)
}

func (c *cli) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to load config: %v\n", err)
		return nil, nil, err
	}
	return cfg, logger.NewWithWriter(c.stderr, cfg.Logger.Level), nil
}

func openBackend(ctx context.Context, cfg *config.ConfigStorage, log *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		store, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &backend{
			blogs: store.Blogs(),
			posts: store.Posts(),
			ping:  store.Ping,
			close: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return store.Close(ctx)
			},
		}, nil
	default:
		if !cfg.InMemory {
			if err := os.MkdirAll(cfg.BadgerPath, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		store, err := repositories.OpenStore(cfg.BadgerPath, cfg.InMemory, log)
		if err != nil {
			return nil, err
		}
		return &backend{
			blogs: store.Blogs(),
			posts: store.Posts(),
			ping:  store.Ping,
			close: store.Close,
		}, nil
	}
}

// serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func (c *cli) serve(ctx context.Context) int {
	cfg, log, err := c.setup()
	if err != nil {
		return 1
	}

	b, err := openBackend(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		return 1
	}
	defer b.close()

	if err := b.ping(ctx); err != nil {
		log.Error("storage is not reachable", "driver", cfg.Storage.Driver, "error", err)
		return 1
	}

	creds, err := middleware.NewCredentials(cfg.Auth.Login, cfg.Auth.Password)
	if err != nil {
		log.Error("invalid auth settings", "error", err)
		return 1
	}

	handler := routes.SetupRoutes(routes.Dependencies{
		Blogs:          b.blogs,
		Posts:          b.posts,
		Credentials:    creds,
		AllowedOrigins: cfg.CORS.Origins(),
		CORSMaxAge:     cfg.CORS.MaxAge,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeoutDuration(),
		WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:       cfg.Server.IdleTimeoutDuration(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting blogposts server", "addr", srv.Addr, "driver", cfg.Storage.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	log.Info("shutting down server", "timeout", cfg.Server.ShutdownTimeoutDuration())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return 1
	}
	log.Info("server stopped")
	return 0
}

// seed creates the fixtures in file.
func (c *cli) seed(ctx context.Context, file string) int {
	cfg, log, err := c.setup()
	if err != nil {
		return 1
	}

	seed, err := fixtures.LoadFile(file)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to read fixtures: %v\n", err)
		return 1
	}

	b, err := openBackend(ctx, cfg.Storage, log)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to open storage: %v\n", err)
		return 1
	}
	defer b.close()

	blogService := services.NewBlogService(b.blogs, b.posts)
	res, err := fixtures.Apply(ctx, seed, blogService, validation.New(b.blogs))
	fmt.Fprintf(c.stdout, "Created %d blogs and %d posts\n", res.Blogs, res.Posts)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to seed: %v\n", err)
		return 1
	}
	return 0
}

// backup writes a full badger backup to file, or to a timestamped file next to the database.
func (c *cli) backup(file string) int {
	cfg, log, err := c.setup()
	if err != nil {
		return 1
	}
	if code, ok := c.requireBadgerOnDisk(cfg.Storage); !ok {
		return code
	}
	if _, err := os.Stat(cfg.Storage.BadgerPath); os.IsNotExist(err) {
		fmt.Fprintln(c.stdout, "No database exists to backup")
		return 1
	}

	if file == "" {
		backupDir := filepath.Join(filepath.Dir(cfg.Storage.BadgerPath), "backups")
		if err := os.MkdirAll(backupDir, 0755); err != nil {
			fmt.Fprintf(c.stdout, "Failed to create backup directory: %v\n", err)
			return 1
		}
		file = filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	}

	store, err := repositories.OpenStore(cfg.Storage.BadgerPath, false, log)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	f, err := os.Create(file)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := store.Backup(f); err != nil {
		fmt.Fprintf(c.stdout, "Failed to backup database: %v\n", err)
		return 1
	}

	fmt.Fprintf(c.stdout, "Database backed up successfully to %s\n", file)
	return 0
}

// restore replaces the badger database contents with the backup in file.
func (c *cli) restore(file string) int {
	cfg, log, err := c.setup()
	if err != nil {
		return 1
	}
	if code, ok := c.requireBadgerOnDisk(cfg.Storage); !ok {
		return code
	}

	fi, err := os.Stat(file)
	if os.IsNotExist(err) {
		fmt.Fprintf(c.stdout, "Backup file does not exist: %s\n", file)
		return 1
	}
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Fprintf(c.stdout, "Backup file is empty: %s\n", file)
		return 1
	}

	if _, err := os.Stat(cfg.Storage.BadgerPath); err == nil {
		if !c.confirm("Existing database found. Do you want to replace it?") {
			fmt.Fprintln(c.stdout, "Operation cancelled")
			return 1
		}
	}
	if err := os.MkdirAll(cfg.Storage.BadgerPath, 0755); err != nil {
		fmt.Fprintf(c.stdout, "Failed to create database directory: %v\n", err)
		return 1
	}

	store, err := repositories.OpenStore(cfg.Storage.BadgerPath, false, log)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(c.stdout, "Failed to clear database: %v\n", err)
		return 1
	}
	if err := store.Restore(f); err != nil {
		fmt.Fprintf(c.stdout, "Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Fprintln(c.stdout, "Database restored successfully")
	return 0
}

// clean deletes every blog and post in the configured store.
func (c *cli) clean(ctx context.Context) int {
	cfg, log, err := c.setup()
	if err != nil {
		return 1
	}

	if !c.confirm("Are you sure you want to delete every blog and post? This cannot be undone.") {
		fmt.Fprintln(c.stdout, "Operation cancelled")
		return 1
	}

	b, err := openBackend(ctx, cfg.Storage, log)
	if err != nil {
		fmt.Fprintf(c.stdout, "Failed to open storage: %v\n", err)
		return 1
	}
	defer b.close()

	if err := services.NewTestingService(b.blogs, b.posts).DeleteAll(ctx); err != nil {
		fmt.Fprintf(c.stdout, "Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Fprintln(c.stdout, "Database cleaned successfully")
	return 0
}

func (c *cli) requireBadgerOnDisk(cfg *config.ConfigStorage) (int, bool) {
	if cfg.Driver != config.DriverBadger || cfg.InMemory {
		fmt.Fprintln(c.stdout, "Error: backup and restore need an on-disk badger database")
		return 1, false
	}
	return 0, true
}

// confirm asks a yes/no question on stdin unless --yes was given.
func (c *cli) confirm(question string) bool {
	if c.opts.yes {
		return true
	}
	fmt.Fprintf(c.stdout, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(c.stdin).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}
