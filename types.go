package assetskema

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// Coercion selects how numeric inputs are converted to declared types.
type Coercion int

const (
	// CoerceLax accepts JSON numbers, Go numeric kinds, integral floats for
	// integer fields and numeric strings.
	CoerceLax Coercion = iota
	// CoerceStrict accepts JSON numbers and Go numeric kinds only.
	CoerceStrict
)

// AliasPolicy derives wire names from declared field identities.
type AliasPolicy int

const (
	AliasCamel AliasPolicy = iota // mime_type -> mimeType
	AliasNone                     // wire name equals the declared identity
)

// ModelConfig is the configuration value passed to each model declaration.
// It is copied into the model at Build time; later changes to a ModelConfig
// value never affect models that were already built.
type ModelConfig struct {
	Title          string
	Unknown        UnknownPolicy
	Coercion       Coercion
	Aliases        AliasPolicy
	PopulateByName bool // accept the declared identity in addition to the wire name
	FailFast       bool // stop at the first issue instead of collecting all
}

// DefaultModelConfig returns the configuration shared by the avatar rule sets:
// unknown keys rejected, lax numeric coercion, lowerCamelCase wire names
// and population by declared name.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Unknown:        UnknownStrict,
		Coercion:       CoerceLax,
		Aliases:        AliasCamel,
		PopulateByName: true,
	}
}

// WithTitle returns a copy with the given title.
func (c ModelConfig) WithTitle(title string) ModelConfig {
	c.Title = title
	return c
}

// WithUnknown returns a copy with the given unknown-key policy.
func (c ModelConfig) WithUnknown(p UnknownPolicy) ModelConfig {
	c.Unknown = p
	return c
}

// WithCoercion returns a copy with the given coercion policy.
func (c ModelConfig) WithCoercion(m Coercion) ModelConfig {
	c.Coercion = m
	return c
}

// WithAliases returns a copy with the given alias policy.
func (c ModelConfig) WithAliases(p AliasPolicy) ModelConfig {
	c.Aliases = p
	return c
}

// WithFailFast returns a copy with fail-fast enabled or disabled.
func (c ModelConfig) WithFailFast(enabled bool) ModelConfig {
	c.FailFast = enabled
	return c
}
