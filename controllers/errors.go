package controllers

// ErrTableNotAvailable is returned when an order is placed against a
// table that is not in the Available state.
var ErrTableNotAvailable = &CustomError{"table is not available"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
