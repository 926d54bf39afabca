package models

// Roster is an order-preserving sequence of unique participant emails.
// Uniqueness is enforced by Add itself rather than checked by callers, and the
// insertion order is what GET /activities reports. It marshals as a plain JSON
// array. Rosters are small, so membership checks are linear scans.
type Roster []string

// Contains reports whether email is already on the roster (exact match).
func (r Roster) Contains(email string) bool {
	for _, e := range r {
		if e == email {
			return true
		}
	}
	return false
}

// Add appends email to the end of the roster. It returns false and leaves the
// roster unchanged if the email is already present.
func (r *Roster) Add(email string) bool {
	if r.Contains(email) {
		return false
	}
	*r = append(*r, email)
	return true
}

// Remove deletes exactly one occurrence of email, keeping the order of the
// remaining entries. It returns false if the email is not on the roster.
func (r *Roster) Remove(email string) bool {
	for i, e := range *r {
		if e == email {
			*r = append((*r)[:i], (*r)[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a roster that shares no backing storage with the receiver.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	copy(out, r)
	return out
}
