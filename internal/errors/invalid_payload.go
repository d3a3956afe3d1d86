package errors

var ErrInvalidPayload = &Exception{
	Kind:    KindInvalidPayload,
	Message: "invalid task payload",
}
