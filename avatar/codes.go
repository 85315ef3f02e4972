package avatar

import "errors"

// Domain issue codes.
const (
	CodeTriangleCount  = "TRIANGLE_COUNT"
	CodeMaterialName   = "MATERIAL_NAME"
	CodeTexture        = "TextureError"
	CodeRenderMode     = "RENDER_MODE"
	CodePrimitives     = "PRIMITIVES"
	CodeIndices        = "INDICES"
	CodeInstances      = "INSTANCES"
	CodeMeshSize       = "MESH_SIZE"
	CodeAnimation      = "AnimationError"
	CodeMeshAttributes = "MESH_ATTRIBUTES"
)

// Documentation pages referenced by runtime messages.
const (
	DocsTriangleCount = "https://docs.readyplayer.me/asset-creation-guide/validation/validation-checks/mesh-validations/check-mesh-triangle-count"
	DocsValidation    = "https://docs.readyplayer.me/asset-creation-guide/validation/validation-checks/"
)

// ErrUnknownModel is returned when a rule set has no model of the given name.
var ErrUnknownModel = errors.New("avatar: unknown model")

// propertiesComment marks fields named "properties" in schema documents.
const propertiesComment = "gltf-transform's inspect() creates a 'properties' object. Do not confuse with the 'properties' keyword."
