package leave

import "context"

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter ListFilter) ([]Application, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, actorID string, rejectionReason *string) error
}

type BalanceRepository interface {
	GetBalance(ctx context.Context, employeeID string, year int) (Balance, error)
	SetAllocation(ctx context.Context, employeeID string, year int, typ Type, allocated, carryForward float64) error
	AddUsed(ctx context.Context, employeeID string, year int, typ Type, days float64) error
}
