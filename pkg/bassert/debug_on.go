//go:build bassertdebug

package bassert

// debugEnabled is true when the bassertdebug build tag is set.
// Being a constant, the disabled branch in Debug compiles away.
const debugEnabled = true
