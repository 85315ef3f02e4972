package avatar

import (
	"context"
	"fmt"
	"strings"

	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	js "github.com/reoring/assetskema/jsonschema"
)

// RuleSet holds every avatar model built against one set of Limits. Models
// that nest another model share its pointer, so generated documents reference
// a single definition for it.
type RuleSet struct {
	limits Limits
	models []*dsl.ObjectSchema
	byKey  map[string]*dsl.ObjectSchema
}

type ruleSetBuilder struct {
	rs  *RuleSet
	err error
}

func (b *ruleSetBuilder) add(m *dsl.ObjectSchema, err error) *dsl.ObjectSchema {
	if b.err != nil {
		return nil
	}
	if err != nil {
		b.err = err
		return nil
	}
	b.rs.models = append(b.rs.models, m)
	b.rs.byKey[keyOf(m.Name())] = m
	return m
}

// NewRuleSet validates l and builds the models.
func NewRuleSet(l Limits) (*RuleSet, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	rs := &RuleSet{limits: l, byKey: map[string]*dsl.ObjectSchema{}}
	b := &ruleSetBuilder{rs: rs}

	b.add(MeshTriangleCount(l))
	materials := b.add(MaterialNames())
	b.add(CommonTextureProperties(l))
	standard := b.add(TexturePropertiesStandard(l))
	normalOcclusion := b.add(TexturePropertiesNormalOcclusion(l))
	var textures *dsl.ObjectSchema
	if b.err == nil {
		textures = b.add(TextureSchemaStandard(standard))
		b.add(TextureSchemaNormalOcclusion(normalOcclusion))
	}
	common := b.add(CommonMesh(l))
	b.add(MeshAttributes())
	var mesh *dsl.ObjectSchema
	if b.err == nil {
		mesh = b.add(Mesh(common))
	}
	animation := b.add(NoAnimation())
	scene := b.add(SceneProperties())
	b.add(Transform())
	b.add(JointHierarchy())
	if b.err == nil {
		b.add(AssetGlasses(Sections{
			Scene:     scene,
			Mesh:      mesh,
			Materials: materials,
			Animation: animation,
			Textures:  textures,
		}))
	}
	if b.err != nil {
		return nil, fmt.Errorf("avatar: build models: %w", b.err)
	}
	return rs, nil
}

// Limits returns the limits the models were built with.
func (rs *RuleSet) Limits() Limits { return rs.limits }

// Models returns the models in declaration order.
func (rs *RuleSet) Models() []*dsl.ObjectSchema {
	return append([]*dsl.ObjectSchema(nil), rs.models...)
}

// Names returns the model names in declaration order.
func (rs *RuleSet) Names() []string {
	out := make([]string, len(rs.models))
	for i, m := range rs.models {
		out[i] = m.Name()
	}
	return out
}

// Model looks a model up by name. The match ignores the case of the first
// letter and an optional ".schema.json" suffix, so "MeshTriangleCount",
// "meshTriangleCount" and "meshTriangleCount.schema.json" are the same model.
func (rs *RuleSet) Model(name string) (*dsl.ObjectSchema, error) {
	if m, ok := rs.byKey[keyOf(name)]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Validate checks input against the named model. The error is non-nil only
// when the model does not exist; violations are reported in the Result.
func (rs *RuleSet) Validate(ctx context.Context, name string, input any) (assetskema.Result[map[string]any], error) {
	m, err := rs.Model(name)
	if err != nil {
		return assetskema.Result[map[string]any]{}, err
	}
	return assetskema.Check[map[string]any](ctx, m, input), nil
}

func keyOf(name string) string {
	if strings.HasSuffix(name, ".schema.json") {
		return name
	}
	return js.SchemaID(name)
}
