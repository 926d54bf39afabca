package activities

import (
	"Backend-Mergington-API/src/database"
	"Backend-Mergington-API/src/models"
)

// Service sits between the HTTP controllers and the catalog. The catalog is
// injected rather than reached through a package global so tests can run each
// case against its own store.
type Service struct {
	catalog *database.Catalog
}

// NewService wraps the given catalog.
func NewService(catalog *database.Catalog) *Service {
	return &Service{catalog: catalog}
}

// GetAllActivities returns a snapshot of every activity keyed by name.
func (s *Service) GetAllActivities() map[string]models.Activity {
	return s.catalog.All()
}

// SignupStudent adds email to the named activity's roster. Errors pass
// through from the catalog: database.ErrActivityNotFound or
// database.ErrAlreadySignedUp.
func (s *Service) SignupStudent(activityName, email string) error {
	return s.catalog.AddParticipant(activityName, email)
}

// UnregisterStudent removes email from the named activity's roster. Errors
// pass through from the catalog: database.ErrActivityNotFound or
// database.ErrNotSignedUp.
func (s *Service) UnregisterStudent(activityName, email string) error {
	return s.catalog.RemoveParticipant(activityName, email)
}
