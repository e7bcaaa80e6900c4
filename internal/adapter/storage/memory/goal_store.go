// Package memory holds process-lifetime stores used when Redis or PostgreSQL
// are disabled.
package memory

import (
	"context"
	"sync"
)

// GoalStore implements ports.GoalStore in memory.
type GoalStore struct {
	mu    sync.RWMutex
	goals map[string]string
}

func NewGoalStore() *GoalStore {
	return &GoalStore{goals: make(map[string]string)}
}

func (s *GoalStore) Get(_ context.Context, accountUID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals[accountUID], nil
}

func (s *GoalStore) Set(_ context.Context, accountUID, goalUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[accountUID] = goalUID
	return nil
}

func (s *GoalStore) Delete(_ context.Context, accountUID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.goals, accountUID)
	return nil
}
