//go:build debug

package breakout

const debugAsserts = true
