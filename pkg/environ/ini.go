package environ

import (
	"fmt"

	ini "gopkg.in/ini.v1"
)

// LoadINI reads one section of an INI file as a set of environment variables.
// An empty section selects the default (unnamed) section.
// '#' and ';' inside a value are kept; only whole-line comments are skipped.
func LoadINI(path, section string) (map[string]string, error) {
	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}

	vars := sec.KeysHash()
	for k := range vars {
		if err := ValidateName(k); err != nil {
			return nil, fmt.Errorf("env file %s: %w", path, err)
		}
	}
	return vars, nil
}
