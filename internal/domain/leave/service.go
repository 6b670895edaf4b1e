package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// SubmitLeave files a request for the authenticated employee
	SubmitLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// GetMyLeaves retrieves the authenticated employee's requests
	GetMyLeaves(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// ListLeaves retrieves requests across employees (admin)
	ListLeaves(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// ApproveLeave approves a pending request (admin)
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)

	// RejectLeave rejects a pending request (admin)
	RejectLeave(ctx context.Context, id string) (LeaveResponse, error)
}
