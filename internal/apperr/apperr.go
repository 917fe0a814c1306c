package apperr

import "errors"

// Kind 业务错误类别，核心层只返回这几类；
// HTTP 状态码的映射留给 transport 层。
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindTransition // 非法状态流转（确认/取消）
	KindUnauthenticated
	KindForbidden
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Invalid(msg string) error    { return &Error{Kind: KindInvalid, Msg: msg} }
func Transition(msg string) error { return &Error{Kind: KindTransition, Msg: msg} }
func Unauth(msg string) error     { return &Error{Kind: KindUnauthenticated, Msg: msg} }
func Forbidden(msg string) error  { return &Error{Kind: KindForbidden, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// Wrap 已分类的错误原样透传，其余包成 Internal
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return Internal(msg, err)
}

// KindOf 未分类错误一律按 Internal 处理
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, k Kind) bool { return err != nil && KindOf(err) == k }
