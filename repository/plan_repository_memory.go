package repository

import (
	"context"
	"sync"

	"debt-repayment/domain"
)

// PlanRepositoryMemory keeps the most recent plans in memory. Once capacity
// is reached the oldest plan is dropped.
type PlanRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	plans    map[string]domain.RepaymentPlan
}

// NewPlanRepositoryMemory creates a plan store holding at most capacity
// plans. A capacity <= 0 means unbounded.
func NewPlanRepositoryMemory(capacity int) *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		capacity: capacity,
		plans:    make(map[string]domain.RepaymentPlan),
	}
}

func (r *PlanRepositoryMemory) Save(_ context.Context, plan domain.RepaymentPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plans[plan.ID]; !exists {
		r.order = append(r.order, plan.ID)
	}
	r.plans[plan.ID] = plan

	for r.capacity > 0 && len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.plans, oldest)
	}
	return nil
}

func (r *PlanRepositoryMemory) Get(_ context.Context, id string) (domain.RepaymentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return domain.RepaymentPlan{}, ErrPlanNotFound
	}
	return plan, nil
}
