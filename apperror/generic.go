package apperror

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoData         = Error("no records found")
	ErrVoteClosed     = Error("voting period has ended")
	ErrInvalidVote    = Error("unknown vote action")
	ErrInvalidSortKey = Error("unknown sort rule")
)
