package config

import (
	"sync"
)

// FlagSet holds the boolean feature gates for the public site sections.
// Sections with a disabled flag respond as not found.
type FlagSet struct {
	RSVP        bool
	Voting      bool
	Merchandise bool
	Trivia      bool
	News        bool
	Contact     bool
}

// Flags is an explicitly-owned feature flag container with a reload
// lifecycle. Handlers read flags through Current; operational tooling
// triggers Reload after changing the environment. Subscribers are
// notified after every reload.
type Flags struct {
	mu      sync.RWMutex
	current FlagSet
	subs    []chan FlagSet
}

// LoadFlags reads the feature gates from the environment.
func LoadFlags() *Flags {
	return &Flags{current: readFlagSet()}
}

func readFlagSet() FlagSet {
	return FlagSet{
		RSVP:        getBoolEnv("FEATURE_RSVP", true),
		Voting:      getBoolEnv("FEATURE_VOTING", true),
		Merchandise: getBoolEnv("FEATURE_MERCHANDISE", true),
		Trivia:      getBoolEnv("FEATURE_TRIVIA", true),
		News:        getBoolEnv("FEATURE_NEWS", true),
		Contact:     getBoolEnv("FEATURE_CONTACT", true),
	}
}

// Current returns a snapshot of the flag set.
func (f *Flags) Current() FlagSet {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Reload re-reads the gates from the environment and notifies subscribers.
// Notification is non-blocking; a subscriber that has not drained its
// channel misses intermediate snapshots, never the latest state.
func (f *Flags) Reload() FlagSet {
	next := readFlagSet()

	f.mu.Lock()
	f.current = next
	subs := make([]chan FlagSet, len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, ch := range subs {
		// Replace an undrained snapshot so a slow subscriber always
		// receives the latest state.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- next:
		default:
		}
	}
	return next
}

// Subscribe registers a channel that receives a snapshot after each reload.
// The returned cancel function removes the subscription.
func (f *Flags) Subscribe() (<-chan FlagSet, func()) {
	ch := make(chan FlagSet, 1)

	f.mu.Lock()
	f.subs = append(f.subs, ch)
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, sub := range f.subs {
			if sub == ch {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}
