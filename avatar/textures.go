package avatar

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/errmap"
)

// MimeType is an accepted texture encoding.
type MimeType string

const (
	MimePNG  MimeType = "image/png"
	MimeJPEG MimeType = "image/jpeg"
)

// Resolution is a power-of-two square texture resolution.
type Resolution string

// Resolutions lists the accepted resolutions in ascending order.
var Resolutions = []Resolution{
	"16x16",
	"32x32",
	"64x64",
	"128x128",
	"256x256",
	"512x512",
	"1024x1024",
}

// TextureSlot is a material input a texture map can occupy.
type TextureSlot string

const (
	SlotNormal            TextureSlot = "normalTexture"
	SlotBaseColor         TextureSlot = "baseColorTexture"
	SlotEmissive          TextureSlot = "emissiveTexture"
	SlotMetallicRoughness TextureSlot = "metallicRoughnessTexture"
	SlotOcclusion         TextureSlot = "occlusionTexture"
)

// StandardSlots are the slots of the standard PBR shader.
var StandardSlots = []TextureSlot{SlotNormal, SlotBaseColor, SlotEmissive, SlotMetallicRoughness, SlotOcclusion}

// NormalOcclusionSlots are the slots of assets limited to normal and
// occlusion maps.
var NormalOcclusionSlots = []TextureSlot{SlotNormal, SlotOcclusion}

var textureErrors = errmap.New(CodeTexture).
	On("instances", assetskema.CodeTooSmall, "Texture map is unused.").
	On("mime_type", errmap.AnyCategory, "Texture map must be encoded as PNG or JPEG. Found {value} instead.").
	On("resolution", errmap.AnyCategory, "Image resolution must be a power of 2 and square. Maximum {expected_max}. Found {value} instead.").
	On("size", assetskema.CodeTooBig, "Texture map exceeds maximum allowed storage size of {limit_mb} MB.").
	On("gpu_size", assetskema.CodeTooBig, "Texture map exceeds maximum allowed GPU size of {limit_mb} MB when fully decompressed.").
	MustBuild()

var slotErrors = errmap.New(CodeTexture).
	On("slots", assetskema.CodeInvalidEnum, "This texture can only be used for slots: {expected}. Found '{value}' instead.").
	On("slots", assetskema.CodeTooShort, "Too few material slots ({count}) occupied by this texture! It must be used in at least {limit} material slots.").
	On("slots", assetskema.CodeTooLong, "Texture map used for too many slots ({count}). Allowed: {limit}.").
	MustBuild()

var textureMapErrors = errmap.New(CodeTexture).
	On("properties", assetskema.CodeTooShort, "Too few texture maps ({count})! This Asset type must have at least one base color texture map.").
	On("properties", assetskema.CodeTooLong, "Too many texture maps ({count})! Allowed: {limit}.").
	MustBuild()

func textureConfig() assetskema.ModelConfig {
	return assetskema.DefaultModelConfig().WithTitle("Common Texture Map Properties")
}

// commonTexture declares the fields shared by every texture map model.
func commonTexture(name string, l Limits) *dsl.ObjectBuilder {
	return dsl.Object().Name(name).Config(textureConfig()).
		Description("Validation schema for common properties of texture maps.").
		Field("name", dsl.String()).Required().
		Field("uri", dsl.String()).Required().
		Field("instances", dsl.Int().Ge(1)).Required().
		Field("mime_type", dsl.Enum(MimePNG, MimeJPEG)).Required().
		Field("compression", dsl.String()).Required().
		Field("resolution", dsl.Enum(Resolutions...)).
		Describe("Image resolution data used for textures. Power of 2 and square.").Required().
		Field("size", dsl.Int().Le(l.TextureFileSizeMB*1024*1024)).Required().
		Field("gpu_size", dsl.Int().Le(l.TextureGPUSizeMB*1024*1024)).Required().
		WrapAll(textureErrors)
}

// CommonTextureProperties declares the properties every texture map has.
func CommonTextureProperties(l Limits) (*dsl.ObjectSchema, error) {
	return commonTexture("CommonTextureProperties", l).Build()
}

func slotsOf(slots []TextureSlot) *dsl.ArraySchema[TextureSlot] {
	return dsl.Array[TextureSlot](dsl.Enum(slots...)).Min(1).Max(len(slots))
}

// TexturePropertiesStandard is a texture map that may occupy any slot of the
// standard PBR shader.
func TexturePropertiesStandard(l Limits) (*dsl.ObjectSchema, error) {
	return commonTexture("TexturePropertiesStandard", l).
		Description("Texture can occupy any material slot supported by the standard PBR shader.").
		Field("slots", slotsOf(StandardSlots)).Describe("Material inputs that this texture is used for.").Required().
		Wrap("slots", slotErrors).
		Build()
}

// TexturePropertiesNormalOcclusion is a texture map limited to the normal
// and occlusion slots.
func TexturePropertiesNormalOcclusion(l Limits) (*dsl.ObjectSchema, error) {
	return commonTexture("TexturePropertiesNormalOcclusion", l).
		Description("Texture is only allowed to occupy normal and occlusion material slots.").
		Field("slots", slotsOf(NormalOcclusionSlots)).Describe("Material input slots that this texture is used for.").Required().
		Wrap("slots", slotErrors).
		Build()
}

// TextureSchemaStandard lists the texture maps of a single- or multi-mesh
// asset; at least one map is required.
func TextureSchemaStandard(maps *dsl.ObjectSchema) (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("TextureSchemaStandard").
		Description("Texture schema for a single- or multi-mesh asset with standard PBR map support.").
		Field("properties", dsl.Array[map[string]any](maps).Min(1)).Comment(propertiesComment).Required().
		Wrap("properties", textureMapErrors).
		Build()
}

// TextureSchemaNormalOcclusion lists the texture maps of a single-mesh
// asset. Such assets have one material, so there cannot be more maps than
// slots.
func TextureSchemaNormalOcclusion(maps *dsl.ObjectSchema) (*dsl.ObjectSchema, error) {
	return dsl.Object().Name("TextureSchemaNormalOcclusion").
		Description("Texture schema for a single-mesh asset with only normal and occlusion map support.").
		Field("properties", dsl.Array[map[string]any](maps).Max(len(NormalOcclusionSlots))).Comment(propertiesComment).Required().
		Wrap("properties", textureMapErrors).
		Build()
}
