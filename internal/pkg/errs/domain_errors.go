package errs

var (
	// Validation errors
	ErrValidation           = Define(KindValidation, "VALIDATION_FAILED", "validation failed")
	ErrInvalidSlot          = Define(KindValidation, "INVALID_SLOT", "slot is not bookable for this date")
	ErrSameDayScheduling    = Define(KindValidation, "SAME_DAY_SCHEDULING", "same-day bookings must use the walk-in queue")
	ErrPastDate             = Define(KindValidation, "PAST_DATE", "date is in the past")
	ErrSchedulingDisabled   = Define(KindValidation, "SCHEDULING_DISABLED", "location does not accept scheduled bookings")
	ErrServiceDisabled      = Define(KindValidation, "SERVICE_DISABLED", "service is not offered")
	ErrProviderNotQualified = Define(KindValidation, "PROVIDER_NOT_QUALIFIED", "provider does not perform this service")
	ErrInvalidHours         = Define(KindValidation, "INVALID_HOURS", "invalid operating hours")
	ErrInvalidTimeOfDay     = Define(KindValidation, "INVALID_TIME", "invalid time of day")
	ErrInvalidCustomer      = Define(KindValidation, "INVALID_CUSTOMER", "customer name and phone are required")

	// Conflict errors: caller re-fetches and re-submits with a different selection
	ErrSlotTaken = Define(KindConflict, "SLOT_TAKEN", "slot was taken by a concurrent booking")

	// State errors
	ErrExpiredBooking    = Define(KindStateConflict, "EXPIRED_BOOKING", "booking expired before check-in")
	ErrAlreadyCheckedIn  = Define(KindStateConflict, "ALREADY_CHECKED_IN", "booking is already checked in")
	ErrCheckInTooEarly   = Define(KindStateConflict, "CHECKIN_TOO_EARLY", "scheduled booking is not open for check-in yet")
	ErrNotServing        = Define(KindStateConflict, "NOT_SERVING", "booking is not being served")
	ErrInvalidTransition = Define(KindStateConflict, "INVALID_TRANSITION", "transition not allowed from current state")

	// Unavailable errors
	ErrLocationClosed     = Define(KindUnavailable, "LOCATION_CLOSED", "location is not accepting walk-ins")
	ErrProviderPaused     = Define(KindUnavailable, "PROVIDER_PAUSED", "provider is paused")
	ErrNoEligibleProvider = Define(KindUnavailable, "NO_ELIGIBLE_PROVIDER", "no provider can take this service right now")

	// Invariant violations: a synchronization bug upstream
	ErrProviderOccupied = Define(KindInvariantViolation, "PROVIDER_OCCUPIED", "provider already serving a booking")

	// Not found
	ErrLocationNotFound    = Define(KindNotFound, "LOCATION_NOT_FOUND", "location not found")
	ErrProviderNotFound    = Define(KindNotFound, "PROVIDER_NOT_FOUND", "provider not found")
	ErrServiceNotFound     = Define(KindNotFound, "SERVICE_NOT_FOUND", "service not found")
	ErrReservationNotFound = Define(KindNotFound, "RESERVATION_NOT_FOUND", "reservation not found")

	ErrForbidden = Define(KindForbidden, "FORBIDDEN", "operation not permitted")

	// Operation errors
	ErrDatabaseOperationFailed = Define(KindInternal, "DATABASE_FAILURE", "database operation failed")
)
