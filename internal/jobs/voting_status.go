package jobs

import (
	"context"
	"log"
	"sync"
	"time"
)

// RoundCloser closes the voting round once its deadline has passed.
type RoundCloser interface {
	CloseIfExpired(ctx context.Context) (bool, error)
}

// VotingStatusJob periodically checks whether the shirt voting round has
// reached its deadline and closes it. Closing on read alone is not enough:
// the tally snapshot should freeze at the deadline even when nobody visits
// the page.
type VotingStatusJob struct {
	closer   RoundCloser
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewVotingStatusJob creates a new voting status job
func NewVotingStatusJob(closer RoundCloser, interval time.Duration) *VotingStatusJob {
	if interval == 0 {
		interval = time.Minute
	}
	return &VotingStatusJob{
		closer:   closer,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the voting status job
func (j *VotingStatusJob) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	log.Println("Voting status job started")
}

// Stop gracefully stops the job
func (j *VotingStatusJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	log.Println("Voting status job stopped")
}

func (j *VotingStatusJob) run() {
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

// RunOnce performs a single deadline check (for manual trigger or testing)
func (j *VotingStatusJob) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	closed, err := j.closer.CloseIfExpired(ctx)
	if err != nil {
		log.Printf("Error checking voting deadline: %v", err)
		return
	}
	if closed {
		log.Println("Voting round closed: deadline reached")
	}
}
