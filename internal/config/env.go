// Package config resolves process-level overrides from the environment.
//
// Values are read once by the caller at startup and passed on as ordinary
// options; nothing in the scanning code reads the environment itself.
package config

import (
	"math"
	"os"
	"strconv"
	"strings"
)

// EnvFloat returns the number held in the environment variable name, or def
// when the variable is unset, empty or does not start with a number.
//
// Only the leading numeric part is used, so "4 threads" yields 4.
func EnvFloat(name string, def float64) float64 {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	// Longest numeric prefix wins.
	for end := len(raw); end > 0; end-- {
		if v, ok := parseFinite(raw[:end]); ok {
			return v
		}
	}
	return def
}

// parseFinite parses s as a float, rejecting infinities and NaN.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// EnvInt is EnvFloat truncated toward zero.
func EnvInt(name string, def int) int {
	return int(EnvFloat(name, float64(def)))
}
