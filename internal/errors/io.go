package errors

var ErrIO = &Exception{
	Kind:    KindIO,
	Message: "task store I/O failure",
}
