package repository

import (
	"context"
	"errors"

	"debt-repayment/domain"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	Save(ctx context.Context, plan domain.RepaymentPlan) error
	Get(ctx context.Context, id string) (domain.RepaymentPlan, error)
}
