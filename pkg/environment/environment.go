package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a configuration value to an Environment. Unknown values are
// returned unchanged, lower-cased.
func Parse(s string) Environment {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "prod", string(Production):
		return Production
	case "stage", string(Staging):
		return Staging
	case "dev", "", string(Development):
		return Development
	default:
		return Environment(v)
	}
}

func (e Environment) IsProduction() bool {
	return Parse(string(e)) == Production
}

func (e Environment) String() string {
	return string(e)
}
