package errors

var ErrConnection = &Exception{
	Kind:    KindConnection,
	Message: "failed to open task store",
}
