package errors

var ErrConstraint = &Exception{
	Kind:    KindConstraint,
	Message: "task is missing a required field",
}
