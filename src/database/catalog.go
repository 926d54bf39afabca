package database

import (
	"errors"
	"sync"

	"Backend-Mergington-API/src/models"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up for this activity")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
)

// Catalog is the single source of truth for all activities. It lives entirely
// in process memory: the seed it is constructed with is the system's whole
// configuration, and process exit is the only teardown. A RWMutex serializes
// roster mutations so the unique-email invariant holds under concurrent
// requests.
type Catalog struct {
	mu         sync.RWMutex
	activities map[string]models.Activity
}

// NewCatalog builds a catalog populated from seed. The seed is copied, so the
// caller's map can be reused to reset later.
func NewCatalog(seed map[string]models.Activity) *Catalog {
	c := &Catalog{}
	c.Reset(seed)
	return c
}

// All returns a snapshot of the full catalog. Rosters are cloned, so callers
// can serialize the result without holding the lock.
func (c *Catalog) All() map[string]models.Activity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]models.Activity, len(c.activities))
	for name, activity := range c.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Find looks up one activity by its exact name (case- and space-sensitive).
func (c *Catalog) Find(name string) (models.Activity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	activity, ok := c.activities[name]
	if !ok {
		return models.Activity{}, false
	}
	return activity.Clone(), true
}

// AddParticipant appends email to the named activity's roster. It fails with
// ErrActivityNotFound if the activity does not exist and ErrAlreadySignedUp if
// the email is already on the roster; failed calls never mutate state.
//
// max_participants is advisory only and deliberately not checked here.
func (c *Catalog) AddParticipant(name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !activity.Participants.Add(email) {
		return ErrAlreadySignedUp
	}
	c.activities[name] = activity
	return nil
}

// RemoveParticipant removes exactly one occurrence of email from the named
// activity's roster. It fails with ErrActivityNotFound if the activity does
// not exist and ErrNotSignedUp if the email is not on the roster.
func (c *Catalog) RemoveParticipant(name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	activity, ok := c.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !activity.Participants.Remove(email) {
		return ErrNotSignedUp
	}
	c.activities[name] = activity
	return nil
}

// Reset clears the catalog and repopulates it from seed. Tests use this to
// restore the fixed startup state between cases.
func (c *Catalog) Reset(seed map[string]models.Activity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.activities = make(map[string]models.Activity, len(seed))
	for name, activity := range seed {
		c.activities[name] = activity.Clone()
	}
}
