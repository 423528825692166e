package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/allergy-forecast/internal/cache"
	"ulascansenturk/allergy-forecast/internal/db/forecastquery"
	"ulascansenturk/allergy-forecast/internal/metrics"
	"ulascansenturk/allergy-forecast/internal/providers"
	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

type ForecastRequestAggregator interface {
	AddRequest(ctx context.Context, req ForecastRequest) (<-chan ForecastResponse, error)
	ProcessQueueForTesting(key string)
	Shutdown()
}

type forecastQueue struct {
	request  ForecastRequest
	channels []chan ForecastResponse
	timer    *time.Timer
	closed   bool
	mu       sync.Mutex
}

type forecastAggregator struct {
	forecastAPI       providers.ForecastProvider
	cacheProvider     cache.Cache
	forecastQueryRepo forecastquery.Repository
	queues            map[string]*forecastQueue
	queueMutex        sync.RWMutex
	maxQueueSize      int
	maxWaitTime       time.Duration
	cacheTTL          time.Duration
	failedCacheTTL    time.Duration
}

// NewForecastRequestAggregator coalesces identical forecast requests. The
// cache and repository are optional.
func NewForecastRequestAggregator(
	forecastAPI providers.ForecastProvider,
	cacheProvider cache.Cache,
	forecastQueryRepo forecastquery.Repository,
	maxQueueSize int,
	maxWaitTime time.Duration,
	cacheTTL time.Duration,
	failedCacheTTL time.Duration,
) ForecastRequestAggregator {
	return &forecastAggregator{
		forecastAPI:       forecastAPI,
		cacheProvider:     cacheProvider,
		forecastQueryRepo: forecastQueryRepo,
		queues:            make(map[string]*forecastQueue),
		maxQueueSize:      maxQueueSize,
		maxWaitTime:       maxWaitTime,
		cacheTTL:          cacheTTL,
		failedCacheTTL:    failedCacheTTL,
	}
}

func (a *forecastAggregator) AddRequest(ctx context.Context, req ForecastRequest) (<-chan ForecastResponse, error) {
	// buffered so a flush never blocks on a caller that gave up
	responseChan := make(chan ForecastResponse, 1)

	if cached, ok := a.lookupCache(ctx, req); ok {
		responseChan <- cached
		close(responseChan)
		return responseChan, nil
	}

	key := req.Key()

	for {
		queue := a.queueFor(key, req)

		queue.mu.Lock()
		if queue.closed {
			// flushed between lookup and lock; the next lookup creates a fresh queue
			queue.mu.Unlock()
			continue
		}

		if len(queue.channels) == 0 {
			queue.timer = time.AfterFunc(a.maxWaitTime, func() {
				a.processQueue(key, queue)
			})
		}

		queue.channels = append(queue.channels, responseChan)

		if len(queue.channels) >= a.maxQueueSize {
			if queue.timer != nil {
				queue.timer.Stop()
				queue.timer = nil
			}
			go a.processQueue(key, queue)
		}

		queue.mu.Unlock()
		return responseChan, nil
	}
}

func (a *forecastAggregator) queueFor(key string, req ForecastRequest) *forecastQueue {
	a.queueMutex.RLock()
	queue, exists := a.queues[key]
	a.queueMutex.RUnlock()

	if exists {
		return queue
	}

	a.queueMutex.Lock()
	defer a.queueMutex.Unlock()

	queue, exists = a.queues[key]
	if !exists {
		queue = &forecastQueue{request: req}
		a.queues[key] = queue
	}

	return queue
}

func (a *forecastAggregator) lookupCache(ctx context.Context, req ForecastRequest) (ForecastResponse, bool) {
	if a.cacheProvider == nil {
		return ForecastResponse{}, false
	}

	data, found, err := a.cacheProvider.Get(ctx, req.Key())
	if err != nil {
		metrics.CacheLookup(metrics.CacheError)
		log.Warn().Err(err).Str("key", req.Key()).Msg("Failed to read forecast cache")
		return ForecastResponse{}, false
	}

	if !found || data == nil {
		metrics.CacheLookup(metrics.CacheMiss)
		return ForecastResponse{}, false
	}

	metrics.CacheLookup(metrics.CacheHit)

	response := ForecastResponse{
		ZIPCode:  req.ZIPCode,
		Category: req.Category,
		Kind:     req.Kind,
		Cached:   true,
	}

	if data.InvalidZIP {
		response.Err = &iqvia.InvalidZIPError{ZIP: req.ZIPCode, Reason: data.Reason}
	} else {
		response.Data = data.Payload
	}

	return response, true
}

// processQueue flushes the queue registered under key. A nil expected queue
// flushes whatever is registered; otherwise a stale timer for an already
// replaced queue is ignored.
func (a *forecastAggregator) processQueue(key string, expected *forecastQueue) {
	a.queueMutex.Lock()
	queue, exists := a.queues[key]
	if !exists || (expected != nil && queue != expected) {
		a.queueMutex.Unlock()
		return
	}
	delete(a.queues, key)
	a.queueMutex.Unlock()

	queue.mu.Lock()
	queue.closed = true
	channels := queue.channels
	queue.channels = nil
	if queue.timer != nil {
		queue.timer.Stop()
		queue.timer = nil
	}
	queue.mu.Unlock()

	if len(channels) == 0 {
		return
	}

	req := queue.request
	metrics.Coalesced(len(channels))

	start := time.Now()
	data, err := a.forecastAPI.GetForecast(context.Background(), req.Category, req.Kind, req.ZIPCode)
	elapsed := time.Since(start).Seconds()

	response := ForecastResponse{
		ZIPCode:  req.ZIPCode,
		Category: req.Category,
		Kind:     req.Kind,
	}

	switch {
	case err == nil:
		metrics.ObserveUpstream(string(req.Category), string(req.Kind), metrics.OutcomeSuccess, elapsed)
		response.Data = data
		a.storeCache(req, &cache.ForecastCacheData{Payload: data}, a.cacheTTL)
		a.logQuery(req, len(channels), false)
	case errors.Is(err, iqvia.ErrInvalidZIP):
		metrics.ObserveUpstream(string(req.Category), string(req.Kind), metrics.OutcomeInvalidZIP, elapsed)
		response.Err = err

		reason := err.Error()
		var zipErr *iqvia.InvalidZIPError
		if errors.As(err, &zipErr) {
			reason = zipErr.Reason
		}
		a.storeCache(req, &cache.ForecastCacheData{InvalidZIP: true, Reason: reason}, a.failedCacheTTL)
		a.logQuery(req, len(channels), true)
	default:
		metrics.ObserveUpstream(string(req.Category), string(req.Kind), metrics.OutcomeError, elapsed)
		log.Error().Err(err).Str("key", key).Msg("Forecast request failed")
		response.Err = err
	}

	for _, ch := range channels {
		ch <- response
		close(ch)
	}
}

func (a *forecastAggregator) storeCache(req ForecastRequest, data *cache.ForecastCacheData, ttl time.Duration) {
	if a.cacheProvider == nil || ttl <= 0 {
		return
	}

	if err := a.cacheProvider.Set(context.Background(), req.Key(), data, ttl); err != nil {
		log.Warn().Err(err).Str("key", req.Key()).Msg("Failed to write forecast cache")
	}
}

func (a *forecastAggregator) logQuery(req ForecastRequest, requestCount int, invalidZIP bool) {
	if a.forecastQueryRepo == nil {
		return
	}

	go func() {
		err := a.forecastQueryRepo.LogForecastQuery(req.ZIPCode, string(req.Category), string(req.Kind), requestCount, invalidZIP)
		if err != nil {
			log.Error().Err(err).Str("key", req.Key()).Msg("Failed to log forecast query")
		}
	}()
}

func (a *forecastAggregator) Shutdown() {
	a.queueMutex.Lock()
	defer a.queueMutex.Unlock()

	for _, queue := range a.queues {
		queue.mu.Lock()

		queue.closed = true
		if queue.timer != nil {
			queue.timer.Stop()
			queue.timer = nil
		}

		for _, ch := range queue.channels {
			close(ch)
		}
		queue.channels = nil

		queue.mu.Unlock()
	}

	a.queues = make(map[string]*forecastQueue)
}

func (a *forecastAggregator) ProcessQueueForTesting(key string) {
	a.processQueue(key, nil)
}
