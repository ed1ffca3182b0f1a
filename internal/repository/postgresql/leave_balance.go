package postgresql

import (
	"context"
	"fmt"

	"github.com/workforcelab/hrms-backend-go/internal/domain/leave"
	"github.com/workforcelab/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetBalance assembles the per-type ledger rows into one Balance. An
// employee with no rows gets an empty ledger, not an error.
func (r *leaveBalanceRepositoryImpl) GetBalance(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT leave_type, allocated, used, carry_forward
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`, employeeID, year)
	if err != nil {
		return leave.Balance{}, err
	}
	defer rows.Close()

	b := leave.Balance{
		EmployeeID:   employeeID,
		Year:         year,
		Allocated:    make(map[leave.Type]float64),
		Used:         make(map[leave.Type]float64),
		CarryForward: make(map[leave.Type]float64),
	}

	for rows.Next() {
		var typ leave.Type
		var allocated, used, carryForward float64
		if err := rows.Scan(&typ, &allocated, &used, &carryForward); err != nil {
			return leave.Balance{}, err
		}
		typ = typ.Normalized()
		b.Allocated[typ] = allocated
		b.Used[typ] = used
		b.CarryForward[typ] = carryForward
	}
	if err := rows.Err(); err != nil {
		return leave.Balance{}, err
	}

	return b, nil
}

func (r *leaveBalanceRepositoryImpl) SetAllocation(ctx context.Context, employeeID string, year int, typ leave.Type, allocated, carryForward float64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (id, employee_id, year, leave_type, allocated, used, carry_forward, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 0, $5, NOW(), NOW())
		ON CONFLICT (employee_id, year, leave_type) DO UPDATE SET
			allocated = EXCLUDED.allocated,
			carry_forward = EXCLUDED.carry_forward,
			updated_at = NOW()
	`, employeeID, year, typ.Normalized(), allocated, carryForward)
	if err != nil {
		return fmt.Errorf("set leave allocation: %w", err)
	}
	return nil
}

// AddUsed increments the used counter when an application is approved.
// The row is created on first use so unconfigured types still track.
func (r *leaveBalanceRepositoryImpl) AddUsed(ctx context.Context, employeeID string, year int, typ leave.Type, days float64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (id, employee_id, year, leave_type, allocated, used, carry_forward, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, 0, $4, 0, NOW(), NOW())
		ON CONFLICT (employee_id, year, leave_type) DO UPDATE SET
			used = leave_balances.used + EXCLUDED.used,
			updated_at = NOW()
	`, employeeID, year, typ.Normalized(), days)
	if err != nil {
		return fmt.Errorf("add used leave days: %w", err)
	}
	return nil
}
