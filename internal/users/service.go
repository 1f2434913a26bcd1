package users

import "context"

// Service handles preference business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// GetPreferences returns the preference list for a user.
func (s *Service) GetPreferences(ctx context.Context, id string) ([]string, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Preferences, nil
}

// SetPreferences replaces the full preference list for a user.
func (s *Service) SetPreferences(ctx context.Context, id string, preferences []string) (*User, error) {
	return s.repo.UpdatePreferences(ctx, id, preferences)
}
