//go:build !pariterdebug

package producer

// debugAssertions gates precondition checks on SplitAt and Produce. Enable
// with -tags pariterdebug.
const debugAssertions = false
