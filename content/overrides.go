package content

import (
	"fmt"
	"os"

	"github.com/Zachkp/cloud-portfolio/typewriter"
	"gopkg.in/yaml.v3"
)

// Overrides is the YAML shape of CONTENT_FILE. Only non-empty fields replace
// the built-in values.
type Overrides struct {
	Name        string   `yaml:"name"`
	Role        string   `yaml:"role"`
	Tagline     string   `yaml:"tagline"`
	Email       string   `yaml:"email"`
	GitHub      string   `yaml:"github"`
	LinkedIn    string   `yaml:"linkedin"`
	HeroPhrases []string `yaml:"hero_phrases"`
}

// LoadOverrides reads and validates a YAML overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML from %s: %w", path, err)
	}

	// An absent list keeps the defaults; a present one must be usable.
	if o.HeroPhrases != nil {
		if err := typewriter.ValidatePhrases(o.HeroPhrases); err != nil {
			return nil, fmt.Errorf("invalid hero_phrases in %s: %w", path, err)
		}
	}
	return &o, nil
}

// Apply copies the non-empty override fields onto s.
func (o *Overrides) Apply(s *Site) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&s.Profile.Name, o.Name)
	set(&s.Profile.Role, o.Role)
	set(&s.Profile.Tagline, o.Tagline)
	set(&s.Profile.Email, o.Email)
	set(&s.Profile.GitHub, o.GitHub)
	set(&s.Profile.LinkedIn, o.LinkedIn)
	if len(o.HeroPhrases) > 0 {
		s.Profile.HeroPhrases = append([]string(nil), o.HeroPhrases...)
	}
}

// Load returns the default site with the overrides file applied. An empty
// path returns the defaults unchanged.
func Load(path string) (*Site, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	o, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	o.Apply(s)
	return s, nil
}
