package bassert

// Debug runs fn only when the build carries the bassertdebug tag.
// When the tag is absent this is a complete no-op: fn is never invoked,
// so no check inside it runs and none of its operand expressions are
// evaluated. Callers must not rely on side effects of expressions used
// only inside a Debug closure.
//
//	bassert.Debug(func() {
//	    bassert.Eq(recount(tree), tree.size)
//	})
func Debug(fn func()) {
	if debugEnabled {
		fn()
	}
}

// DebugEnabled reports whether debug checks are compiled in.
func DebugEnabled() bool {
	return debugEnabled
}
