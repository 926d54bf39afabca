package models

// Activity is one extracurricular offering. The activity name is not a field
// here: it is the Catalog key and the URL path segment, matched byte-for-byte.
type Activity struct {
	Description     string `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int    `json:"max_participants" example:"12"`
	Participants    Roster `json:"participants"`
}

// Clone returns a copy whose roster does not share memory with the receiver.
func (a Activity) Clone() Activity {
	a.Participants = a.Participants.Clone()
	return a
}
