package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"carmatch/internal/api"
	"carmatch/internal/catalog"
	"carmatch/internal/config"
	"carmatch/internal/logging"
	"carmatch/internal/match"
)

// Daemon coordinates catalog refresh and the HTTP API, and enforces
// single-instance execution.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *catalog.Store
	snapshot *catalog.Snapshot
	registry *match.Registry
	search   *api.SearchService
	server   *apiServer

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu           sync.Mutex
	refreshCount int
	lastRefresh  time.Time
	lastError    error
}

// Status represents daemon runtime information.
type Status struct {
	Running       bool
	CatalogLoaded bool
	Records       int
	Makes         int
	OEMCodes      int
	BuiltAt       time.Time
	RefreshCount  int
	LastRefresh   time.Time
	LastError     error
	CatalogDBPath string
	LockFilePath  string
}

// New constructs a daemon with initialized dependencies. The resolver may be
// nil when the upstream catalogue is unreachable; searches will then fail
// with a configuration error while the rest of the API stays up.
func New(cfg *config.Config, store *catalog.Store, registry *match.Registry, resolver api.TrimResolver, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil || registry == nil || logger == nil {
		return nil, errors.New("daemon requires config, store, registry, and logger")
	}

	snapshot := &catalog.Snapshot{}
	search := api.NewSearchService(resolver, snapshot, registry,
		cfg.XCatalog.Country, cfg.XCatalog.SubmissionsEnabled, logger)

	lockPath := cfg.LockPath()
	d := &Daemon{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		snapshot: snapshot,
		registry: registry,
		search:   search,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}

	server, err := newAPIServer(cfg, d, logger)
	if err != nil {
		return nil, err
	}
	d.server = server
	return d, nil
}

// Start acquires the daemon lock, loads the catalog, and launches the
// refresh loop and API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another carmatch daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)

	if err := d.refresh(d.ctx); err != nil {
		// An empty or unreadable catalog is not fatal at startup; the
		// refresh loop retries and searches report the snapshot as
		// unavailable until a load succeeds.
		d.logger.Warn("initial catalog load failed", logging.Error(err))
	}

	d.wg.Add(1)
	go d.refreshLoop(d.ctx)

	if d.server != nil {
		if err := d.server.start(d.ctx); err != nil {
			d.cancel()
			d.wg.Wait()
			_ = d.lock.Unlock()
			return err
		}
	}

	d.running.Store(true)
	d.logger.Info("carmatch daemon started",
		logging.String("lock", d.lockPath),
		logging.String("catalog_db", d.store.Path()))
	return nil
}

// Stop stops background processing and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.server != nil {
		d.server.stop()
	}
	d.wg.Wait()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("carmatch daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status reports daemon and catalog state.
func (d *Daemon) Status() Status {
	status := Status{
		Running:       d.running.Load(),
		CatalogDBPath: d.store.Path(),
		LockFilePath:  d.lockPath,
	}
	if idx, err := d.snapshot.Current(); err == nil {
		status.CatalogLoaded = true
		status.Records = idx.Len()
		status.Makes = idx.MakeCount()
		status.OEMCodes = idx.OEMCodeCount()
		status.BuiltAt = idx.BuiltAt()
	}
	d.mu.Lock()
	status.RefreshCount = d.refreshCount
	status.LastRefresh = d.lastRefresh
	status.LastError = d.lastError
	d.mu.Unlock()
	return status
}

// Snapshot exposes the live catalog snapshot.
func (d *Daemon) Snapshot() *catalog.Snapshot {
	return d.snapshot
}

// SearchService exposes the API-facing search service.
func (d *Daemon) SearchService() *api.SearchService {
	return d.search
}

// refresh loads the catalog store into a fresh index and publishes it. The
// swap is atomic, so in-flight searches keep the index they started with.
func (d *Daemon) refresh(ctx context.Context) error {
	started := time.Now()
	records, err := d.store.LoadAll(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastError = err
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if len(records) == 0 {
		d.lastError = errors.New("catalog store is empty")
		return d.lastError
	}

	idx := catalog.NewIndex(records)
	d.snapshot.Publish(idx)
	d.refreshCount++
	d.lastRefresh = time.Now()

	d.logger.Info("catalog refreshed",
		logging.Int("records", idx.Len()),
		logging.Int("makes", idx.MakeCount()),
		logging.Duration("elapsed", time.Since(started)))
	return nil
}

func (d *Daemon) refreshLoop(ctx context.Context) {
	defer d.wg.Done()

	interval := time.Duration(d.cfg.Catalog.RefreshInterval) * time.Second
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.refresh(ctx); err != nil {
				d.logger.Warn("catalog refresh failed", logging.Error(err))
			}
		}
	}
}
