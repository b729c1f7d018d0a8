// Package config loads globc's JSON configuration document, the way the
// teacher's pkg/handler/load_config.go loads swerver.json: read the file,
// unmarshal into a wire-format struct, then translate it into the defaults
// the rest of the program consumes.
package config

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/haliax/globc/pkg/minimatch"
)

// fileConfiguration is the on-disk JSON shape. Field validation is enforced
// on this struct before it's translated into Configuration, mirroring the
// teacher's serveConfiguration/Configuration split.
type fileConfiguration struct {
	NoCase     bool           `json:"nocase"`
	Dot        bool           `json:"dot"`
	NoExt      bool           `json:"noExt"`
	NoBrace    bool           `json:"noBrace"`
	NoGlobStar bool           `json:"noGlobStar"`
	MatchBase  bool           `json:"matchBase"`
	Patterns   []namedPattern `json:"patterns" validate:"dive"`
}

type namedPattern struct {
	Name    string `json:"name" validate:"required,min=1"`
	Pattern string `json:"pattern" validate:"required,min=1"`
}

// Configuration is globc's resolved runtime configuration: default match
// Options plus a set of reusable, named patterns a CLI invocation can refer
// to by name instead of repeating the glob text.
type Configuration struct {
	Options  minimatch.Options
	Patterns map[string]string
}

// Load reads and validates path, producing defaults when the file doesn't
// exist — same "best-effort, never fatal" posture as
// LoadServeConfiguration.
func Load(path string) (Configuration, error) {
	config := Configuration{Patterns: map[string]string{}}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		// Absent config file means "use defaults", exactly as the teacher's
		// loader does by ignoring the ReadFile error and unmarshaling a
		// still-zero struct.
		return config, nil
	}

	var raw fileConfiguration
	if err := json.Unmarshal(data, &raw); err != nil {
		return config, errors.Wrapf(err, "parsing config %q", path)
	}

	validate := validator.New()
	if err := validate.Struct(raw); err != nil {
		return config, errors.Wrapf(err, "validating config %q", path)
	}

	config.Options = minimatch.Options{
		NoCase:     raw.NoCase,
		Dot:        raw.Dot,
		NoExt:      raw.NoExt,
		NoBrace:    raw.NoBrace,
		NoGlobStar: raw.NoGlobStar,
		MatchBase:  raw.MatchBase,
	}
	for _, p := range raw.Patterns {
		config.Patterns[p.Name] = p.Pattern
	}

	return config, nil
}

// Resolve looks up name in the loaded pattern set, falling back to treating
// name itself as a literal glob pattern when there's no match — so
// `globc match mypattern ./...` works whether mypattern is a config alias
// or a raw glob.
func (c Configuration) Resolve(name string) string {
	if p, ok := c.Patterns[name]; ok {
		return p
	}
	return name
}
