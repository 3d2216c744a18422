package zerror

// ZError is an error carrying a transport independent status, a stable
// machine readable code and a client safe message.
type ZError struct {
	parent error
	status Status
	code   string
	msg    string
}

// NewZError initializes a ZError instance.
//
// code example: PRODUCT_NOT_FOUND
func NewZError(parent error, status Status, code, msg string) ZError {
	return ZError{
		parent: parent,
		status: status,
		code:   code,
		msg:    msg,
	}
}

// New creates a predefined ZError without parent.
func New(status Status, code, msg string) ZError {
	return NewZError(nil, status, code, msg)
}

func (e ZError) Error() string {
	s := e.code + ": " + e.msg
	if e.parent != nil {
		s += ": " + e.parent.Error()
	}
	return s
}

// WrapParent returns a copy of e caused by parent.
func (e ZError) WrapParent(parent error) ZError {
	if parent == nil {
		return e
	}
	e.parent = parent
	return e
}

func (e ZError) Unwrap() error {
	return e.parent
}

// Is reports whether target is a ZError with the same status and code,
// so predefined errors keep matching after WrapParent.
func (e ZError) Is(target error) bool {
	t, ok := target.(ZError)
	if !ok {
		return false
	}
	return e.status == t.status && e.code == t.code
}

func (e ZError) Status() Status { return e.status }

func (e ZError) Code() string { return e.code }

func (e ZError) Msg() string { return e.msg }

func (e ZError) Parent() error { return e.parent }

func NewNotFound(code, msg string) ZError {
	return New(StatusNotFound, code, msg)
}

func NewConflict(code, msg string) ZError {
	return New(StatusConflict, code, msg)
}

func NewBadRequest(code, msg string) ZError {
	return New(StatusBadRequest, code, msg)
}

func NewValidationFailed(code, msg string) ZError {
	return New(StatusValidationFailed, code, msg)
}

func NewInternalServerError(code, msg string) ZError {
	return New(StatusInternalServerError, code, msg)
}

func NewServiceUnavailable(code, msg string) ZError {
	return New(StatusServiceUnavailable, code, msg)
}
