package reservation

type Status string

const (
	StatusBooked     Status = "booked"
	StatusCancelled  Status = "cancelled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes booked -> cancelled and booked -> in_progress -> completed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusBooked:
		return next == StatusCancelled || next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

type Origin string

const (
	OriginAdmin      Origin = "admin"
	OriginMemberSelf Origin = "member_self"
	OriginAgent      Origin = "agent"
)

func (o Origin) String() string {
	return string(o)
}

func (o Origin) IsValid() bool {
	switch o {
	case OriginAdmin, OriginMemberSelf, OriginAgent:
		return true
	default:
		return false
	}
}
