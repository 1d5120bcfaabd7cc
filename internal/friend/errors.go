package friend

import "errors"

// Semantic outcomes the handlers translate to response status codes. Anything
// not in this list surfaces as a generic operation failure.
var (
	ErrInvalidParam  = errors.New("invalid parameter")
	ErrApplySelf     = errors.New("cannot apply to yourself")
	ErrAlreadyFriend = errors.New("already friends")
	ErrApplyLimit    = errors.New("apply limit reached")
	ErrExecuteFailed = errors.New("store execute failed")
	ErrNotFound      = errors.New("record not found")
)
