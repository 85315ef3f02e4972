package avatar

import (
	assetskema "github.com/reoring/assetskema"
	"github.com/reoring/assetskema/dsl"
	"github.com/reoring/assetskema/errmap"
)

// MaterialName is the name of a material an asset part must use.
type MaterialName string

const (
	MaterialBeard          MaterialName = "Wolf3D_Beard"
	MaterialBody           MaterialName = "Wolf3D_Body"
	MaterialFacewear       MaterialName = "Wolf3D_Facewear"
	MaterialGlasses        MaterialName = "Wolf3D_Glasses"
	MaterialHair           MaterialName = "Wolf3D_Hair"
	MaterialHalfBodyShirt  MaterialName = "Wolf3D_Shirt"
	MaterialHead           MaterialName = "Wolf3D_Skin"
	MaterialEye            MaterialName = "Wolf3D_Eye"
	MaterialTeeth          MaterialName = "Wolf3D_Teeth"
	MaterialHeadwear       MaterialName = "Wolf3D_Headwear"
	MaterialOutfitBottom   MaterialName = "Wolf3D_Outfit_Bottom"
	MaterialOutfitFootwear MaterialName = "Wolf3D_Outfit_Footwear"
	MaterialOutfitTop      MaterialName = "Wolf3D_Outfit_Top"
)

// partMaterials maps each part to its only allowed material, in
// declaration order.
var partMaterials = []struct {
	part     string
	material MaterialName
}{
	{"beard", MaterialBeard},
	{"body", MaterialBody},
	{"facewear", MaterialFacewear},
	{"glasses", MaterialGlasses},
	{"hair", MaterialHair},
	{"half_body_shirt", MaterialHalfBodyShirt},
	{"head", MaterialHead},
	{"eye", MaterialEye},
	{"teeth", MaterialTeeth},
	{"headwear", MaterialHeadwear},
	{"bottom", MaterialOutfitBottom},
	{"footwear", MaterialOutfitFootwear},
	{"top", MaterialOutfitTop},
}

// OutfitMaterials are the materials allowed on an outfit asset.
var OutfitMaterials = []MaterialName{
	MaterialBody,
	MaterialOutfitBottom,
	MaterialOutfitFootwear,
	MaterialOutfitTop,
}

// HeroAvatarMaterials are the materials allowed on a non-customizable avatar.
var HeroAvatarMaterials = []MaterialName{
	MaterialBeard,
	MaterialBody,
	MaterialFacewear,
	MaterialGlasses,
	MaterialHair,
	MaterialHead,
	MaterialEye,
	MaterialTeeth,
	MaterialHeadwear,
	MaterialOutfitBottom,
	MaterialOutfitFootwear,
	MaterialOutfitTop,
}

var materialErrors = errmap.New(CodeMaterialName).Docs(DocsValidation).
	On(errmap.AnyCategory, errmap.AnyCategory, "Material name should be {expected}. Found {value} instead.").
	On("outfit", errmap.AnyCategory, "Material name should be one of {expected}. Found {value} instead.").
	On("non_customizable_avatar", errmap.AnyCategory, "Material name should be one of {expected}. Found {value} instead.").
	MustBuild()

// MaterialNames declares the material each part, outfit or
// non-customizable avatar may use.
func MaterialNames() (*dsl.ObjectSchema, error) {
	b := dsl.Object().Name("MaterialNames").
		Config(assetskema.DefaultModelConfig().WithTitle("Material Names"))
	for _, pm := range partMaterials {
		b.Field(pm.part, dsl.Literal(string(pm.material))).Optional()
	}
	return b.
		Field("outfit", dsl.Enum(OutfitMaterials...)).Optional().
		Field("non_customizable_avatar", dsl.Enum(HeroAvatarMaterials...)).Optional().
		WrapAll(materialErrors).
		Build()
}
