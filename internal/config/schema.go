package config

// Config holds pagenumber tunables.
// Stored at: {home}/config.yaml
//
// Every field here has a spec-defined default. Fields with a matching infer
// flag (classifier kind, pass-1/pass-2 density thresholds, two-pass,
// opportunistic fill) may be overridden per invocation, and a flag that is
// given always wins over the config file.
type Config struct {
	Registry   RegistryCfg   `mapstructure:"registry" yaml:"registry"`
	Extractor  ExtractorCfg  `mapstructure:"extractor" yaml:"extractor"`
	Enumerator EnumeratorCfg `mapstructure:"enumerator" yaml:"enumerator"`
	Trellis    TrellisCfg    `mapstructure:"trellis" yaml:"trellis"`
	Classifier ClassifierCfg `mapstructure:"classifier" yaml:"classifier"`
	Run        RunCfg        `mapstructure:"run" yaml:"run"`
}

// RegistryCfg configures the scheme registry.
type RegistryCfg struct {
	// CompositeLimit bounds the number of dynamically-discovered composite
	// schemes admitted over the lifetime of a run.
	CompositeLimit int `mapstructure:"composite_limit" yaml:"composite_limit"`
}

// ExtractorCfg configures the candidate extractor.
type ExtractorCfg struct {
	// NegativesPerPage is the number of non-matching words sampled per page
	// as negative classifier training material, and the threshold at which
	// the central-margin edge policy kicks in.
	NegativesPerPage int `mapstructure:"negatives_per_page" yaml:"negatives_per_page"`
}

// EnumeratorCfg configures the sequence enumerator's density-parking thresholds.
type EnumeratorCfg struct {
	Pass1DensityThreshold float64 `mapstructure:"pass1_density_threshold" yaml:"pass1_density_threshold"`
	Pass2DensityThreshold float64 `mapstructure:"pass2_density_threshold" yaml:"pass2_density_threshold"`
}

// TrellisCfg configures trellis edge and emission costs.
type TrellisCfg struct {
	NoneCost     float64 `mapstructure:"none_cost" yaml:"none_cost"`
	Pass1Factor  float64 `mapstructure:"pass1_factor" yaml:"pass1_factor"`
	Pass2Factor  float64 `mapstructure:"pass2_factor" yaml:"pass2_factor"`
	EmissionCost float64 `mapstructure:"emission_cost" yaml:"emission_cost"`
}

// ClassifierCfg configures the feature extractor / classifier trainer.
type ClassifierCfg struct {
	// Kind selects "naivebayes" or "logisticregression".
	Kind string `mapstructure:"kind" yaml:"kind"`
	// Seed drives all randomness (negative sampling, classifier init) for
	// reproducibility across runs on identical inputs.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// LogisticRegularization records the L2 penalty (liblinear-equivalent,
	// C=1.0 default). The classifier does not read it: NewLogisticRegression
	// always uses C=1.0.
	LogisticRegularization float64 `mapstructure:"logistic_regularization" yaml:"logistic_regularization"`
}

// RunCfg configures driver-level behavior.
type RunCfg struct {
	TwoPass             bool   `mapstructure:"two_pass" yaml:"two_pass"`
	OpportunisticFill   bool   `mapstructure:"opportunistic_fill" yaml:"opportunistic_fill"`
	RetryAttempts       uint   `mapstructure:"retry_attempts" yaml:"retry_attempts"`
	RetryDelayMS        int    `mapstructure:"retry_delay_ms" yaml:"retry_delay_ms"`
	ArchiveToolsVersion string `mapstructure:"archive_tools_version" yaml:"archive_tools_version"`
}

// DefaultConfig returns configuration with the spec-mandated defaults.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryCfg{
			CompositeLimit: 2500,
		},
		Extractor: ExtractorCfg{
			NegativesPerPage: 10,
		},
		Enumerator: EnumeratorCfg{
			Pass1DensityThreshold: 0.3,
			Pass2DensityThreshold: 0.05,
		},
		Trellis: TrellisCfg{
			NoneCost:     2.0,
			Pass1Factor:  3.0,
			Pass2Factor:  1.0,
			EmissionCost: 1.0,
		},
		Classifier: ClassifierCfg{
			Kind:                   "naivebayes",
			Seed:                   42,
			LogisticRegularization: 1.0,
		},
		Run: RunCfg{
			TwoPass:             true,
			OpportunisticFill:   false,
			RetryAttempts:       3,
			RetryDelayMS:        200,
			ArchiveToolsVersion: "2",
		},
	}
}
