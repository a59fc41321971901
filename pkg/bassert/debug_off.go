//go:build !bassertdebug

package bassert

// debugEnabled is false in default builds. Build with
// -tags bassertdebug to compile debug checks in.
const debugEnabled = false
