package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/karltiama/endurorevamp-sub001/internal/domain"
)

// MockAthleteRepository is a mock implementation of AthleteRepository
type MockAthleteRepository struct {
	athletes map[uuid.UUID]*domain.Athlete
	err      error
}

func NewMockAthleteRepository() *MockAthleteRepository {
	return &MockAthleteRepository{
		athletes: make(map[uuid.UUID]*domain.Athlete),
	}
}

func (m *MockAthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) error {
	if m.err != nil {
		return m.err
	}
	if athlete.ID == uuid.Nil {
		athlete.ID = uuid.New()
	}
	m.athletes[athlete.ID] = athlete
	return nil
}

func (m *MockAthleteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	if m.err != nil {
		return nil, m.err
	}
	athlete, ok := m.athletes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return athlete, nil
}

func (m *MockAthleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	if m.err != nil {
		return m.err
	}
	m.athletes[athlete.ID] = athlete
	return nil
}

func (m *MockAthleteRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.athletes[id]
	return ok, nil
}

func (m *MockAthleteRepository) SetError(err error) {
	m.err = err
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	activities map[uuid.UUID]*domain.Activity
	err        error
}

func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{
		activities: make(map[uuid.UUID]*domain.Activity),
	}
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if m.err != nil {
		return m.err
	}
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	activity.CreatedAt = time.Now()
	m.activities[activity.ID] = activity
	return nil
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	activity, ok := m.activities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return activity, nil
}

func (m *MockActivityRepository) List(ctx context.Context, athleteID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.forAthlete(athleteID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

func (m *MockActivityRepository) ListSince(ctx context.Context, athleteID uuid.UUID, since time.Time) ([]domain.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Activity
	for _, a := range m.forAthlete(athleteID) {
		if !a.StartDate.Before(since) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func (m *MockActivityRepository) ListRecent(ctx context.Context, athleteID uuid.UUID, limit int) ([]domain.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.forAthlete(athleteID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.activities[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.activities, id)
	return nil
}

func (m *MockActivityRepository) forAthlete(athleteID uuid.UUID) []domain.Activity {
	var result []domain.Activity
	for _, a := range m.activities {
		if a.AthleteID == athleteID {
			result = append(result, *a)
		}
	}
	return result
}

func (m *MockActivityRepository) SetError(err error) {
	m.err = err
}

// MockGoalRepository is a mock implementation of GoalRepository
type MockGoalRepository struct {
	goals map[string]*domain.Goal // keyed by athleteID:type
	err   error
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals: make(map[string]*domain.Goal),
	}
}

func goalKey(athleteID uuid.UUID, goalType domain.GoalType) string {
	return athleteID.String() + ":" + string(goalType)
}

func (m *MockGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	if m.err != nil {
		return m.err
	}
	m.goals[goalKey(goal.AthleteID, goal.Type)] = goal
	return nil
}

func (m *MockGoalRepository) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Goal
	for _, g := range m.goals {
		if g.AthleteID == athleteID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *MockGoalRepository) ListActive(ctx context.Context, athleteID uuid.UUID) ([]domain.Goal, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Goal
	for _, g := range m.goals {
		if g.AthleteID == athleteID && g.Active {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *MockGoalRepository) Delete(ctx context.Context, athleteID uuid.UUID, goalType domain.GoalType) error {
	if m.err != nil {
		return m.err
	}
	key := goalKey(athleteID, goalType)
	if _, ok := m.goals[key]; !ok {
		return domain.ErrNotFound
	}
	delete(m.goals, key)
	return nil
}

// MockPlanRepository is a mock implementation of PlanRepository
type MockPlanRepository struct {
	plans map[uuid.UUID]*domain.WeeklyWorkoutPlan
	err   error
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{
		plans: make(map[uuid.UUID]*domain.WeeklyWorkoutPlan),
	}
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *domain.WeeklyWorkoutPlan) error {
	if m.err != nil {
		return m.err
	}
	for id, existing := range m.plans {
		if existing.AthleteID == plan.AthleteID && existing.WeekStart.Equal(plan.WeekStart) && id != plan.ID {
			delete(m.plans, id)
		}
	}
	stored := *plan
	m.plans[plan.ID] = &stored
	return nil
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	plan, ok := m.plans[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

func (m *MockPlanRepository) GetLatest(ctx context.Context, athleteID uuid.UUID) (*domain.WeeklyWorkoutPlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.WeeklyWorkoutPlan
	for _, p := range m.plans {
		if p.AthleteID != athleteID {
			continue
		}
		if latest == nil || p.WeekStart.After(latest.WeekStart) {
			latest = p
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

// MockCoachLLM is a mock implementation of llm.CoachLLM
type MockCoachLLM struct {
	summary *domain.CoachSummary
	err     error
	lastCtx *domain.CoachContext
}

func (m *MockCoachLLM) GenerateSummary(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachSummary, error) {
	m.lastCtx = coachCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

// Helper functions
func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}
