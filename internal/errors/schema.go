package errors

var ErrSchema = &Exception{
	Kind:    KindSchema,
	Message: "failed to ensure task schema",
}
