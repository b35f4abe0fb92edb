package jobs

import (
	"context"
	"log"
	"sync"
	"time"
)

// FeedPurger removes transfer news items past their expiry.
type FeedPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// FeedCleanupJob periodically deletes expired news items so stale rumours
// drop out of the database rather than merely being filtered from listings.
type FeedCleanupJob struct {
	purger   FeedPurger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewFeedCleanupJob creates a new feed cleanup job
func NewFeedCleanupJob(purger FeedPurger, interval time.Duration) *FeedCleanupJob {
	if interval == 0 {
		interval = time.Hour
	}
	return &FeedCleanupJob{
		purger:   purger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the feed cleanup job
func (j *FeedCleanupJob) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	log.Println("Feed cleanup job started")
}

// Stop gracefully stops the job
func (j *FeedCleanupJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	log.Println("Feed cleanup job stopped")
}

func (j *FeedCleanupJob) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			j.RunOnce(context.Background())
		case <-j.stopCh:
			return
		}
	}
}

// RunOnce performs a single purge (for manual trigger or testing)
func (j *FeedCleanupJob) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	deleted, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		log.Printf("Error purging expired news: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Purged %d expired news items", deleted)
	}
}
