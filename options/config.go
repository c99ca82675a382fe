package options

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors surfaced by Validate. Configuration errors are fatal:
// the caller must abort the solve rather than attempt recovery.
var (
	// ErrInvalidLength indicates Length is outside the supported range.
	ErrInvalidLength = errors.New("options: length must be between 2 and 6")

	// ErrSkipConversionRequiresCycles indicates Conversion=Skip was
	// requested without WithCycles; without cycles there is no closing
	// pair to skip, so the combination is meaningless and rejected.
	ErrSkipConversionRequiresCycles = errors.New("options: Conversion=Skip requires WithCycles")

	// ErrCyclesRequireMinLength indicates WithCycles was requested with
	// Length < 4; cycles shorter than 4 are not simple induced cycles.
	ErrCyclesRequireMinLength = errors.New("options: WithCycles requires Length >= 4")

	// ErrInvalidThreads indicates Threads <= 0 was requested for DriverMT.
	ErrInvalidThreads = errors.New("options: Threads must be > 0 for DriverMT")

	// ErrInvalidKRange indicates KMax < KMin.
	ErrInvalidKRange = errors.New("options: KMax must be >= KMin")
)

// Config is the immutable, validated bundle of solver policy knobs. Build
// one with New(opts...); New always validates before returning.
type Config struct {
	Mode        Mode
	Restriction Restriction
	Conversion  Conversion
	Length      int
	WithCycles  bool
	Selector    SelKind
	LB          LBKind
	Driver      DriverKind
	KMin        int
	KMax        int
	AllSolutions bool
	Threads     int
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithMode sets the edit-direction policy. Default: Edit.
func WithMode(m Mode) Option { return func(c *Config) { c.Mode = m } }

// WithRestriction sets the branching restriction. Default: None.
func WithRestriction(r Restriction) Option { return func(c *Config) { c.Restriction = r } }

// WithConversion sets the closing-pair treatment. Default: Normal.
func WithConversion(cv Conversion) Option { return func(c *Config) { c.Conversion = cv } }

// WithLength sets ℓ, the target forbidden-subgraph length. Default: 4.
func WithLength(length int) Option { return func(c *Config) { c.Length = length } }

// WithCycles enables forbidding induced C_ℓ in addition to P_ℓ.
func WithCycles(enabled bool) Option { return func(c *Config) { c.WithCycles = enabled } }

// WithSelector sets the branching-selector variant. Default: SelFirst.
func WithSelector(s SelKind) Option { return func(c *Config) { c.Selector = s } }

// WithLB sets the lower-bound engine variant. Default: LBBasic.
func WithLB(lb LBKind) Option { return func(c *Config) { c.LB = lb } }

// WithDriver sets the search driver. Default: DriverST.
func WithDriver(d DriverKind) Option { return func(c *Config) { c.Driver = d } }

// WithKRange sets the inclusive search range [kMin, kMax].
func WithKRange(kMin, kMax int) Option {
	return func(c *Config) { c.KMin = kMin; c.KMax = kMax }
}

// WithAllSolutions makes the driver continue the search after a first
// solution is found, instead of stopping at it.
func WithAllSolutions(all bool) Option { return func(c *Config) { c.AllSolutions = all } }

// WithThreads sets the DriverMT worker-pool size. Default: 1.
func WithThreads(n int) Option { return func(c *Config) { c.Threads = n } }

// New builds a Config from defaults plus opts, in order, then validates it.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		Mode:        Edit,
		Restriction: None,
		Conversion:  Normal,
		Length:      4,
		WithCycles:  true,
		Selector:    SelFirst,
		LB:          LBBasic,
		Driver:      DriverST,
		KMin:        0,
		KMax:        0,
		Threads:     1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the orthogonal-axis and driver constraints documented in
// §9 of the specification. It never mutates c.
func Validate(c *Config) error {
	if c.Length < 2 || c.Length > 6 {
		return ErrInvalidLength
	}
	if c.Conversion == Skip && !c.WithCycles {
		return ErrSkipConversionRequiresCycles
	}
	if c.WithCycles && c.Length < 4 {
		return ErrCyclesRequireMinLength
	}
	if c.Driver == DriverMT && c.Threads <= 0 {
		return ErrInvalidThreads
	}
	if c.KMax < c.KMin {
		return ErrInvalidKRange
	}
	// needs_no_edit_branch is produced by SelMost/SelMostPruned, and by
	// SelSingleMost only under Restriction=Redundant; it is only sound under
	// Restriction=Redundant (§4.6, §9), so reject SelMost/SelMostPruned with
	// any other Restriction here rather than deep in the selector/driver.
	if (c.Selector == SelMost || c.Selector == SelMostPruned) && c.Restriction != Redundant {
		return fmt.Errorf("options: selector %v produces a no-edit branch, which requires Restriction=Redundant: %w", c.Selector, ErrNoEditBranchRequiresRedundant)
	}
	return nil
}

// ErrNoEditBranchRequiresRedundant indicates a selector that can produce a
// "mark but don't edit" branch was configured with a Restriction other
// than Redundant, under which that branch would be unsound.
var ErrNoEditBranchRequiresRedundant = errors.New("options: no-edit branch requires Restriction=Redundant")

// yamlConfig mirrors Config with lowercase snake-case keys so operators can
// hand-write the non-CLI tunables as YAML, matching the pack's existing use
// of yaml.v3 for declarative configuration documents.
type yamlConfig struct {
	Mode         string `yaml:"mode"`
	Restriction  string `yaml:"restriction"`
	Conversion   string `yaml:"conversion"`
	Length       int    `yaml:"length"`
	WithCycles   bool   `yaml:"with_cycles"`
	Selector     string `yaml:"selector"`
	LB           string `yaml:"lb"`
	Driver       string `yaml:"driver"`
	KMin         int    `yaml:"k_min"`
	KMax         int    `yaml:"k_max"`
	AllSolutions bool   `yaml:"all_solutions"`
	Threads      int    `yaml:"threads"`
}

// LoadYAML parses a YAML document into a validated Config. It does not
// parse CLI arguments; the caller is responsible for obtaining r (e.g. from
// an already-opened config file) — parsing argv remains out of scope.
func LoadYAML(r io.Reader) (*Config, error) {
	var yc yamlConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&yc); err != nil {
		return nil, fmt.Errorf("options: decode yaml: %w", err)
	}

	mode, err := parseMode(yc.Mode)
	if err != nil {
		return nil, err
	}
	restriction, err := parseRestriction(yc.Restriction)
	if err != nil {
		return nil, err
	}
	conversion, err := parseConversion(yc.Conversion)
	if err != nil {
		return nil, err
	}
	selector, err := parseSelector(yc.Selector)
	if err != nil {
		return nil, err
	}
	lb, err := parseLB(yc.LB)
	if err != nil {
		return nil, err
	}
	driver, err := parseDriver(yc.Driver)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithMode(mode),
		WithRestriction(restriction),
		WithConversion(conversion),
		WithCycles(yc.WithCycles),
		WithSelector(selector),
		WithLB(lb),
		WithDriver(driver),
		WithKRange(yc.KMin, yc.KMax),
		WithAllSolutions(yc.AllSolutions),
	}
	if yc.Length != 0 {
		opts = append(opts, WithLength(yc.Length))
	}
	if yc.Threads != 0 {
		opts = append(opts, WithThreads(yc.Threads))
	}

	return New(opts...)
}

func parseMode(s string) (Mode, error) {
	switch s {
	case "", "Edit":
		return Edit, nil
	case "DeleteOnly":
		return DeleteOnly, nil
	case "InsertOnly":
		return InsertOnly, nil
	default:
		return 0, fmt.Errorf("options: unknown mode %q", s)
	}
}

func parseRestriction(s string) (Restriction, error) {
	switch s {
	case "", "None":
		return None, nil
	case "Undo":
		return Undo, nil
	case "Redundant":
		return Redundant, nil
	default:
		return 0, fmt.Errorf("options: unknown restriction %q", s)
	}
}

func parseConversion(s string) (Conversion, error) {
	switch s {
	case "", "Normal":
		return Normal, nil
	case "Last":
		return Last, nil
	case "Skip":
		return Skip, nil
	default:
		return 0, fmt.Errorf("options: unknown conversion %q", s)
	}
}

func parseSelector(s string) (SelKind, error) {
	switch s {
	case "", "First":
		return SelFirst, nil
	case "Least":
		return SelLeastUnedited, nil
	case "Most":
		return SelMost, nil
	case "Most-Pruned":
		return SelMostPruned, nil
	case "Single-Most":
		return SelSingleMost, nil
	default:
		return 0, fmt.Errorf("options: unknown selector %q", s)
	}
}

func parseLB(s string) (LBKind, error) {
	switch s {
	case "No":
		return LBNone, nil
	case "", "Basic":
		return LBBasic, nil
	case "ARW":
		return LBARW, nil
	default:
		return 0, fmt.Errorf("options: unknown lb %q", s)
	}
}

func parseDriver(s string) (DriverKind, error) {
	switch s {
	case "", "ST":
		return DriverST, nil
	case "MT":
		return DriverMT, nil
	default:
		return 0, fmt.Errorf("options: unknown driver %q", s)
	}
}
