//go:build !asimd_nochecks

package arm64

const checksEnabled = true
