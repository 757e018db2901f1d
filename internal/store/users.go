package store

import (
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

func (s *Store) CreateUser(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:        newID(),
		Username:  username,
		Password:  password,
		CreatedAt: timezone.Now(),
	}
	s.users.put(user.ID, user)
	return user
}

func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

func (s *Store) FindUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.all() {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}
