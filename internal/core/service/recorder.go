package service

import "github.com/linkboard/linkboard-api/internal/core/domain"

// ActivityRecorder accepts audit events for asynchronous persistence.
// Recording must not block the request path; implementations drop or
// buffer as they see fit. A nil recorder disables auditing.
type ActivityRecorder interface {
	Record(activity domain.Activity)
}
