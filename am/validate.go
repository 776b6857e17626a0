package am

import (
	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/teranos/rnokpp/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Generate),
		validation.Field(&c.Output),
	)
	if err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrap(err, "invalid configuration"), errors.ErrInvalidRequest),
			"run 'rnokpp am show' to see where each value comes from")
	}
	return nil
}

// Validate checks the age window: 0 <= min_age <= max_age <= MaxAgeLimit.
func (g GenerateConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.MinAge, validation.Min(0), validation.Max(MaxAgeLimit)),
		validation.Field(&g.MaxAge,
			validation.Max(MaxAgeLimit),
			// Min skips zero values, so the ordering check is explicit
			validation.By(func(value interface{}) error {
				if maxAge, _ := value.(int); maxAge < g.MinAge {
					return errors.Newf("must be no less than min_age (%d)", g.MinAge)
				}
				return nil
			}),
		),
	)
}

// Validate checks the output format.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Format, validation.In(FormatText, FormatJSON)),
	)
}

// CheckUnknownKeys decodes a TOML config file and returns the keys that
// do not map onto Config, in file order. Viper ignores such keys silently,
// so misspellings would otherwise go unnoticed.
func CheckUnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to parse %s", path),
			"config files are TOML")
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}
