package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveAlreadyReviewed = errors.New("leave request already reviewed")
	ErrOverlappingRequest   = errors.New("a pending leave request already covers this period")
)
