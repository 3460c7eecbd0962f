package domain

import "time"

// ActivityKind enumerates the audited actions.
type ActivityKind string

const (
	ActivityUserSignedUp ActivityKind = "user_signed_up"
	ActivityLinkPosted   ActivityKind = "link_posted"
	ActivityVoteCast     ActivityKind = "vote_cast"
)

// Activity is an audit record of a user action, persisted off the
// request path. It carries no correctness weight; losing one is logged,
// not fatal.
type Activity struct {
	Kind      ActivityKind
	UserID    string
	SubjectID string // link id for posts and votes, empty for signups
	Timestamp time.Time
}
