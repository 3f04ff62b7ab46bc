package commands

import "petagenda/internal/pkg/errs"

var (
	ErrSubscriptionNotFound    = errs.New("subscription not found")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrDuplicateAppointment    = errs.New("duplicate appointment occurrence")
	ErrBoardingNotFound        = errs.New("boarding record not found")
	ErrValidation              = errs.New("validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
