package config

import "os"

// Environment names the runtime environment the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the current environment. CI detection takes
// precedence over ENV so pipeline runs never load .env files or relax
// secret validation.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch Environment(os.Getenv("ENV")) {
	case Production:
		return Production
	case Test:
		return Test
	}
	return Development
}

// IsProduction reports whether the process runs with production settings.
func IsProduction() bool {
	return GetEnvironment() == Production
}

// IsCI reports whether the process runs inside a CI pipeline.
func IsCI() bool {
	return GetEnvironment() == CI
}

// IsDevelopment reports whether the process runs with local defaults.
func IsDevelopment() bool {
	return GetEnvironment() == Development
}
