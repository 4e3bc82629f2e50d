//go:build amd64 && amd64.v3

package platform

const amd64Level = 3
