package seeder

import "Backend-Mergington-API/src/models"

// DefaultActivities returns the nine fixed activities the catalog starts with.
// This literal seed is the system's persisted configuration; no endpoint
// creates or deletes an activity. Callers get a fresh map on every call, so
// one caller's mutations never leak into another's seed.
func DefaultActivities() map[string]models.Activity {
	return map[string]models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    models.Roster{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    models.Roster{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    models.Roster{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the varsity soccer team for practice and matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    models.Roster{"james@mergington.edu", "ava@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Swim laps and train for competitive swimming events",
			Schedule:        "Tuesdays and Thursdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 15,
			Participants:    models.Roster{"noah@mergington.edu", "isabella@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and various art mediums",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    models.Roster{"mia@mergington.edu", "liam@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in plays and learn acting techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    models.Roster{"charlotte@mergington.edu", "ethan@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking skills through debates",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    models.Roster{"william@mergington.edu", "amelia@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science and engineering challenges",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 24,
			Participants:    models.Roster{"benjamin@mergington.edu", "harper@mergington.edu"},
		},
	}
}
