package config

import "strings"

// Environment discriminates deployment targets. Debug surfaces such as pprof
// stay enabled on every environment except prod.
type Environment int32

const (
	UNDEFINED_ENV Environment = iota
	LOCAL_ENV
	DEV_ENV
	UAT_ENV
	PROD_ENV
)

var environmentNames = map[Environment]string{
	LOCAL_ENV: "local",
	DEV_ENV:   "dev",
	UAT_ENV:   "uat",
	PROD_ENV:  "prod",
}

// StringToEnvironment parses the configured environment name, case
// insensitively. Unknown names map to UNDEFINED_ENV.
func StringToEnvironment(s string) Environment {
	s = strings.ToLower(s)
	for env, name := range environmentNames {
		if name == s {
			return env
		}
	}
	return UNDEFINED_ENV
}

func (e Environment) String() string {
	if name, ok := environmentNames[e]; ok {
		return name
	}
	return "UNDEFINED"
}
