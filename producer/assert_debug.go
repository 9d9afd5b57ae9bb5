//go:build pariterdebug

package producer

const debugAssertions = true
