package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/xenking/customer-report/internal/loyalty"
	"github.com/xenking/customer-report/internal/report"
)

// Config holds the raw application configuration, loadable from environment
// variables (REPORT_ prefix) or YAML config files. The zero-input defaults
// reproduce the plain text report with the standard loyalty discount.
type Config struct {
	Format   string `default:"text" usage:"Report output format: text or json"`
	Discount DiscountConfig
}

// DiscountConfig controls the loyalty discount policy.
type DiscountConfig struct {
	Threshold string `default:"1000" usage:"Order total that must be exceeded to earn a discount"`
	Rate      string `default:"0.1"  usage:"Fraction of the total granted as discount"`
}

// Policy converts the discount settings to a loyalty.Policy.
func (c DiscountConfig) Policy() (loyalty.Policy, error) {
	return loyalty.NewPolicy(c.Threshold, c.Rate)
}

func loaderConfig() aconfig.Config {
	return aconfig.Config{
		EnvPrefix: "REPORT",
		SkipFlags: true,
		Files:     []string{"config.yaml", "/etc/customer-report/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	}
}

// LoadConfig loads configuration from environment variables and YAML config
// files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, loaderConfig())
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}

// Options are the parsed settings Run works with.
type Options struct {
	Format   string
	Renderer report.Renderer
	Policy   loyalty.Policy
}

// Options parses and validates the raw configuration values.
func (c *Config) Options() (*Options, error) {
	renderer, err := report.NewRenderer(c.Format)
	if err != nil {
		return nil, errors.Wrap(err, "format")
	}
	policy, err := c.Discount.Policy()
	if err != nil {
		return nil, errors.Wrap(err, "discount")
	}
	return &Options{
		Format:   c.Format,
		Renderer: renderer,
		Policy:   policy,
	}, nil
}
