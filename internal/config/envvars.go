// ABOUTME: Environment variable expansion in profile string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the string fields of p.
func ResolveEnvVars(p *Profile) {
	p.Run = expandEnv(p.Run)
	p.Format = expandEnv(p.Format)
	p.Frame = expandEnv(p.Frame)
	p.LogLevel = expandEnv(p.LogLevel)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
