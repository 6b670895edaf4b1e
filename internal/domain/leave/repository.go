package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// Update persists status and review changes
	Update(ctx context.Context, req Request) error

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]Request, int64, error)

	// HasPendingOverlap reports whether the employee already has a
	// pending request intersecting [start, end]
	HasPendingOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
