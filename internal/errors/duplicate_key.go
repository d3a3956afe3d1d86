package errors

var ErrDuplicateKey = &Exception{
	Kind:    KindDuplicateKey,
	Message: "task id already exists",
}
