package pacer

// Wrap returns fn with the limiter's wait injected before every call.
// The wait uses the interval configured at call time, not at wrap time,
// so reconfiguring the limiter affects all future calls through the
// returned function. The return value passes through untouched.
//
// Callables of other arities are wrapped by closing over their
// arguments:
//
//	paced := pacer.Wrap(limiter, func(req request) response {
//		return handle(req.ctx, req.id, req.body)
//	})
func Wrap[T, R any](l Limiter, fn func(T) R) func(T) R {
	return func(arg T) R {
		l.Wait()
		return fn(arg)
	}
}

// WrapErr is Wrap for error-returning callables. The callable's error
// passes through unchanged; the wrapper never inspects or replaces it.
func WrapErr[T, R any](l Limiter, fn func(T) (R, error)) func(T) (R, error) {
	return func(arg T) (R, error) {
		l.Wait()
		return fn(arg)
	}
}

// Wrap0 is Wrap for niladic callables.
func Wrap0(l Limiter, fn func()) func() {
	return func() {
		l.Wait()
		fn()
	}
}
