package pfid

// Errors
var (
	ErrInvalidBinaryInput = &CodecError{"binary input must be exactly 20 bytes"}
	ErrInvalidTextInput   = &CodecError{"text input is not a valid pfid"}
	ErrInvalidPartition   = &CodecError{"partition outside [0, 2^30)"}
	ErrInvalidTimestamp   = &CodecError{"timestamp outside [0, 2^48)"}
)

// CodecError represents a codec contract violation. All four sentinel
// errors indicate malformed input, not transient failure; callers should
// not retry.
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
