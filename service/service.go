package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultBackgroundTimeout = 30 * time.Second
	defaultSellerCacheSize   = 1_024
	defaultSellerCacheTTL    = 10 * time.Minute
)

type Config struct {
	Store     Store
	Images    ImageStore
	Publisher Publisher
	// Subscriber backs chat event streams. Streams are disabled without one.
	Subscriber Subscriber

	TokenKey string
	// AssetsURLPrefix is prepended to member profile images and item
	// thumbnails.
	AssetsURLPrefix string
	// MediaURLPrefix is prepended to stored chat images.
	MediaURLPrefix string

	SellerCacheSize   int
	SellerCacheTTL    time.Duration
	BaseCtx           context.Context
	BackgroundTimeout time.Duration
}

type Service struct {
	Store      Store
	Images     ImageStore
	Publisher  Publisher
	Subscriber Subscriber

	tokenKey        string
	assetsURLPrefix string
	mediaURLPrefix  string
	sellers         *expirable.LRU[int64, int64]

	baseCtx           context.Context
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
	errs              chan error

	mu     sync.RWMutex
	closed bool
}

func New(cfg *Config) *Service {
	baseCtx := cfg.BaseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	backgroundTimeout := cfg.BackgroundTimeout
	if backgroundTimeout <= 0 {
		backgroundTimeout = defaultBackgroundTimeout
	}

	cacheSize := cfg.SellerCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultSellerCacheSize
	}

	cacheTTL := cfg.SellerCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultSellerCacheTTL
	}

	return &Service{
		Store:      cfg.Store,
		Images:     cfg.Images,
		Publisher:  cfg.Publisher,
		Subscriber: cfg.Subscriber,

		tokenKey:        cfg.TokenKey,
		assetsURLPrefix: cfg.AssetsURLPrefix,
		mediaURLPrefix:  cfg.MediaURLPrefix,
		sellers:         expirable.NewLRU[int64, int64](cacheSize, nil, cacheTTL),

		baseCtx:           baseCtx,
		backgroundTimeout: backgroundTimeout,
		errs:              make(chan error, 1),
	}
}

func (svc *Service) Errs() <-chan error {
	return svc.errs
}

// Close waits for background work and closes Errs. Work scheduled after
// Close is dropped. Calling Close more than once is a no-op.
func (svc *Service) Close() error {
	svc.mu.Lock()
	if svc.closed {
		svc.mu.Unlock()
		return nil
	}
	svc.closed = true
	svc.mu.Unlock()

	svc.wg.Wait()
	close(svc.errs)
	return nil
}

// Ping reports whether the store is reachable.
func (svc *Service) Ping(ctx context.Context) error {
	return svc.Store.Ping(ctx)
}

func (svc *Service) background(fn func(ctx context.Context) error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if svc.closed {
		return
	}

	svc.wg.Go(func() {
		defer func() {
			if rcv := recover(); rcv != nil {
				select {
				case svc.errs <- fmt.Errorf("service background panic: %v", rcv):
				default:
				}
			}
		}()

		ctx, cancel := context.WithTimeout(svc.baseCtx, svc.backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			select {
			case svc.errs <- fmt.Errorf("service background error: %w", err):
			default:
			}
		}
	})
}
