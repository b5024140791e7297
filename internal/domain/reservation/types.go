package reservation

type Kind string

const (
	KindScheduled Kind = "SCHEDULED"
	KindWalkin    Kind = "WALKIN"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	return k == KindScheduled || k == KindWalkin
}

// QueueStatus is the walk-in lifecycle. StatusNone marks a scheduled booking
// that has not been promoted into the queue yet.
type QueueStatus string

const (
	StatusNone      QueueStatus = ""
	StatusRed       QueueStatus = "RED"
	StatusOrange    QueueStatus = "ORANGE"
	StatusGreen     QueueStatus = "GREEN"
	StatusCompleted QueueStatus = "COMPLETED"
	StatusExpired   QueueStatus = "EXPIRED"
	StatusCancelled QueueStatus = "CANCELLED"
)

func (s QueueStatus) String() string { return string(s) }

func (s QueueStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusRed, StatusOrange, StatusGreen, StatusCompleted, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s QueueStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive is true for entries that count towards a provider's load.
func (s QueueStatus) IsActive() bool {
	switch s {
	case StatusRed, StatusOrange, StatusGreen:
		return true
	default:
		return false
	}
}

type AssignmentStatus string

const (
	Unassigned AssignmentStatus = "UNASSIGNED"
	Assigned   AssignmentStatus = "ASSIGNED"
)

func (a AssignmentStatus) String() string { return string(a) }
