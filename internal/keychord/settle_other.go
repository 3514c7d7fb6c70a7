//go:build !linux

package keychord

const settleTime = 0
