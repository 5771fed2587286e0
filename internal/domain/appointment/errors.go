package appointment

import "github.com/BruksfildServices01/tutor-contacts/internal/httperr"

// ===============================
// Error codes
// ===============================

const (
	CodeInvalidFormat   = "invalid_appointment_format"
	CodeInvalidDay      = "invalid_day"
	CodeOverlapConflict = "overlapping_appointment"
	CodeDuplicate       = "duplicate_appointment"
	CodeNotFound        = "appointment_not_found"
)

const MessageConstraints = "Appointment should be of the format 'HH:MM-HH:MM DAY' " +
	"and adhere to the following constraints:\n" +
	"1. HH:MM follows 24 hour time; HH is from 00 to 23, MM is from 00 to 59.\n" +
	"2. The start time must be before the end time.\n" +
	"3. This is followed by a DAY. DAY must be one of: 'MON', 'TUE', 'WED', 'THU', 'FRI', 'SAT', 'SUN'"

var (
	ErrInvalidFormat = httperr.BusinessError{
		Code:    CodeInvalidFormat,
		Message: MessageConstraints,
	}
	ErrInvalidDay = httperr.BusinessError{
		Code:    CodeInvalidDay,
		Message: "Days should be one of: MON, TUE, WED, THU, FRI, SAT, SUN",
	}
	ErrOverlapConflict = httperr.BusinessError{
		Code:    CodeOverlapConflict,
		Message: "This person's appointments clash with an existing appointment",
	}
	ErrDuplicate = httperr.BusinessError{
		Code:    CodeDuplicate,
		Message: "This appointment already exists",
	}
	ErrNotFound = httperr.BusinessError{
		Code:    CodeNotFound,
		Message: "The specified appointment could not be found",
	}
)
