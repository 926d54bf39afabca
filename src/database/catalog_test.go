package database

import (
	"testing"

	"Backend-Mergington-API/src/models"
	"Backend-Mergington-API/src/seeder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededCatalog() *Catalog {
	return NewCatalog(seeder.DefaultActivities())
}

func TestCatalogSeed(t *testing.T) {
	catalog := newSeededCatalog()

	all := catalog.All()
	assert.Len(t, all, 9)

	chess, ok := catalog.Find("Chess Club")
	require.True(t, ok)
	assert.Equal(t, models.Roster{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	assert.Equal(t, 12, chess.MaxParticipants)
}

func TestCatalogFindIsExactMatch(t *testing.T) {
	catalog := newSeededCatalog()

	_, ok := catalog.Find("chess club")
	assert.False(t, ok)

	_, ok = catalog.Find("Chess Club ")
	assert.False(t, ok)
}

func TestCatalogAddParticipant(t *testing.T) {
	catalog := newSeededCatalog()

	err := catalog.AddParticipant("Chess Club", "test@mergington.edu")
	require.NoError(t, err)

	chess, _ := catalog.Find("Chess Club")
	assert.Equal(t, models.Roster{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"test@mergington.edu",
	}, chess.Participants)
}

func TestCatalogAddParticipantUnknownActivity(t *testing.T) {
	catalog := newSeededCatalog()

	err := catalog.AddParticipant("Nonexistent Activity", "test@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestCatalogAddParticipantDuplicate(t *testing.T) {
	catalog := newSeededCatalog()

	err := catalog.AddParticipant("Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)

	// Failed calls never mutate state, no matter how often they repeat.
	err = catalog.AddParticipant("Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)

	chess, _ := catalog.Find("Chess Club")
	assert.Len(t, chess.Participants, 2)
}

func TestCatalogRemoveParticipant(t *testing.T) {
	catalog := newSeededCatalog()

	err := catalog.RemoveParticipant("Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	chess, _ := catalog.Find("Chess Club")
	assert.Equal(t, models.Roster{"daniel@mergington.edu"}, chess.Participants)
}

func TestCatalogRemoveParticipantErrors(t *testing.T) {
	catalog := newSeededCatalog()

	err := catalog.RemoveParticipant("Nonexistent Activity", "x@mergington.edu")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	err = catalog.RemoveParticipant("Chess Club", "notregistered@mergington.edu")
	assert.ErrorIs(t, err, ErrNotSignedUp)

	chess, _ := catalog.Find("Chess Club")
	assert.Len(t, chess.Participants, 2)
}

func TestCatalogMaxParticipantsNotEnforced(t *testing.T) {
	catalog := NewCatalog(map[string]models.Activity{
		"Tiny Club": {
			Description:     "A very small club",
			Schedule:        "Never",
			MaxParticipants: 1,
			Participants:    models.Roster{"only@mergington.edu"},
		},
	})

	// Capacity is advisory metadata; signups past it still succeed.
	err := catalog.AddParticipant("Tiny Club", "extra@mergington.edu")
	assert.NoError(t, err)

	tiny, _ := catalog.Find("Tiny Club")
	assert.Len(t, tiny.Participants, 2)
}

func TestCatalogReset(t *testing.T) {
	catalog := newSeededCatalog()

	require.NoError(t, catalog.AddParticipant("Chess Club", "test@mergington.edu"))
	require.NoError(t, catalog.RemoveParticipant("Gym Class", "john@mergington.edu"))

	catalog.Reset(seeder.DefaultActivities())

	chess, _ := catalog.Find("Chess Club")
	assert.Equal(t, models.Roster{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	gym, _ := catalog.Find("Gym Class")
	assert.Equal(t, models.Roster{"john@mergington.edu", "olivia@mergington.edu"}, gym.Participants)
}

func TestCatalogSnapshotsAreDetached(t *testing.T) {
	catalog := newSeededCatalog()

	all := catalog.All()
	all["Chess Club"].Participants[0] = "sneaky@mergington.edu"

	chess, _ := catalog.Find("Chess Club")
	assert.Equal(t, "michael@mergington.edu", chess.Participants[0])
}
