package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/wagepoint/wagepoint-api/internal/domain/leave"
	"github.com/wagepoint/wagepoint-api/internal/domain/notification"
	"github.com/wagepoint/wagepoint-api/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	notificationService notification.Service
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	notificationService notification.Service,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:     leaveRepository,
		notificationService: notificationService,
	}
}

func claimsFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// SubmitLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlaps, err := s.LeaveRepository.HasPendingOverlap(ctx, employeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrOverlappingRequest
	}

	request := leave.Request{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.notify(ctx, employeeID, nil, "Leave request submitted",
		fmt.Sprintf("Your leave request from %s to %s is pending review.", req.StartDate, req.EndDate))

	return leave.ToLeaveResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}
	filter.EmployeeID = &employeeID

	requests, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toListResponse(requests, total, filter), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toListResponse(requests, total, filter), nil
}

// ApproveLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, id, leave.StatusApproved, "Leave request approved",
		"Your leave request has been approved.")
}

// RejectLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, id, leave.StatusRejected, "Leave request rejected",
		"Your leave request has been rejected.")
}

func (s *LeaveServiceImpl) review(ctx context.Context, id string, status leave.Status, title, message string) (leave.LeaveResponse, error) {
	reviewerID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyReviewed
	}

	now := time.Now().UTC()
	request.Status = status
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now

	if err := s.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notify(ctx, request.EmployeeID, &reviewerID, title, message)

	return leave.ToLeaveResponse(request), nil
}

func (s *LeaveServiceImpl) notify(ctx context.Context, recipientID string, senderID *string, title, message string) {
	_ = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		SenderID:    senderID,
		Category:    notification.CategoryLeave,
		Title:       title,
		Message:     message,
	})
}

func toListResponse(requests []leave.Request, total int64, filter leave.LeaveFilter) leave.ListLeaveResponse {
	responses := make([]leave.LeaveResponse, len(requests))
	for i, req := range requests {
		responses[i] = leave.ToLeaveResponse(req)
	}

	return leave.ListLeaveResponse{
		Requests: responses,
		Pagination: leave.PaginationResponse{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}
}
