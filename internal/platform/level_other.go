//go:build !amd64

package platform

const amd64Level = 0
