package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// AddEngineer добавляет инженера. Статус по умолчанию active.
func (s *Service) AddEngineer(ctx context.Context, in domain.EngineerInput) (*domain.Engineer, error) {
	in = trimEngineerInput(in)
	if err := domain.Validate(in); err != nil {
		s.logger.Warn("AddEngineer: invalid input: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	engineer := &domain.Engineer{
		ID:        s.uniqueEngineerID(now),
		Status:    domain.EngineerActive,
		CreatedAt: now,
	}
	engineer.Apply(in)

	next := append(cloneEngineers(s.engineers), engineer)
	if err := s.repo.SaveEngineers(ctx, next); err != nil {
		s.logger.Error("AddEngineer: failed to persist engineer: %v", err)
		return nil, fmt.Errorf("%w: AddEngineer - persist: %v", ErrInternal, err)
	}
	s.engineers = next

	s.logger.Info("AddEngineer: engineer id=%s (%s) added", engineer.ID, engineer.Name)
	return cloneEngineer(engineer), nil
}

// EditEngineer обновляет поля инженера; ID не меняется
func (s *Service) EditEngineer(ctx context.Context, id string, in domain.EngineerInput) (*domain.Engineer, error) {
	in = trimEngineerInput(in)
	if err := domain.Validate(in); err != nil {
		s.logger.Warn("EditEngineer: invalid input for id=%s: %v", id, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.engineerIndex(id)
	if idx < 0 {
		s.logger.Warn("EditEngineer: engineer id=%s not found", id)
		return nil, &domain.NotFoundError{Entity: "engineer", ID: id}
	}

	next := cloneEngineers(s.engineers)
	next[idx].Apply(in)

	if err := s.repo.SaveEngineers(ctx, next); err != nil {
		s.logger.Error("EditEngineer: failed to persist engineer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: EditEngineer - persist: %v", ErrInternal, err)
	}
	s.engineers = next

	s.logger.Info("EditEngineer: engineer id=%s updated", id)
	return cloneEngineer(next[idx]), nil
}

// DeleteEngineer удаляет инженера из списка. Записи, ссылающиеся на него,
// не изменяются и показываются как "Unassigned".
func (s *Service) DeleteEngineer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.engineerIndex(id)
	if idx < 0 {
		s.logger.Warn("DeleteEngineer: engineer id=%s not found", id)
		return &domain.NotFoundError{Entity: "engineer", ID: id}
	}

	next := make([]*domain.Engineer, 0, len(s.engineers)-1)
	for i, e := range s.engineers {
		if i != idx {
			next = append(next, cloneEngineer(e))
		}
	}

	if err := s.repo.SaveEngineers(ctx, next); err != nil {
		s.logger.Error("DeleteEngineer: failed to persist engineers: %v", err)
		return fmt.Errorf("%w: DeleteEngineer - persist: %v", ErrInternal, err)
	}
	s.engineers = next

	s.logger.Info("DeleteEngineer: engineer id=%s deleted", id)
	return nil
}

// GetEngineer возвращает инженера по ID
func (s *Service) GetEngineer(_ context.Context, id string) (*domain.Engineer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.engineerIndex(id)
	if idx < 0 {
		return nil, &domain.NotFoundError{Entity: "engineer", ID: id}
	}
	return cloneEngineer(s.engineers[idx]), nil
}

// ListEngineers возвращает инженеров; activeOnly оставляет только доступных для назначения
func (s *Service) ListEngineers(_ context.Context, activeOnly bool) []*domain.Engineer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Engineer, 0, len(s.engineers))
	for _, e := range s.engineers {
		if activeOnly && !e.IsActive() {
			continue
		}
		result = append(result, cloneEngineer(e))
	}
	return result
}

func (s *Service) engineerIndex(id string) int {
	for i, e := range s.engineers {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// uniqueEngineerID derives the id from the clock, stepping forward a
// millisecond at a time while it collides with an existing engineer
func (s *Service) uniqueEngineerID(now time.Time) string {
	id := domain.NewEngineerID(now)
	for s.engineerIndex(id) >= 0 {
		now = now.Add(time.Millisecond)
		id = domain.NewEngineerID(now)
	}
	return id
}

func trimEngineerInput(in domain.EngineerInput) domain.EngineerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Specialization = strings.TrimSpace(in.Specialization)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

func cloneEngineer(e *domain.Engineer) *domain.Engineer {
	out := *e
	return &out
}

func cloneEngineers(in []*domain.Engineer) []*domain.Engineer {
	out := make([]*domain.Engineer, len(in), len(in)+1)
	for i, e := range in {
		out[i] = cloneEngineer(e)
	}
	return out
}
