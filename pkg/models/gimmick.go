package models

// GimmickCore is the tool implementation backing a gimmick.
type GimmickCore string

const (
	GimmickCoreWebSearch               GimmickCore = "web_search"
	GimmickCoreImageGenerator          GimmickCore = "image_generator"
	GimmickCoreCharacterImageGenerator GimmickCore = "character_image_generator"
	GimmickCoreSceneImageGenerator     GimmickCore = "scene_image_generator"
	GimmickCoreNotion                  GimmickCore = "notion"
)

// GimmickCoreDescriptions explains each core to agents and editors.
var GimmickCoreDescriptions = map[GimmickCore]string{
	GimmickCoreWebSearch:               "Searches the web for real-time or missing information using an LLM. Returns both summary and detailed results. Takes ~30 seconds to execute",
	GimmickCoreImageGenerator:          "Generates images from text prompts with optional reference images. Can modify existing images in context using text instructions. Takes ~30 seconds to execute",
	GimmickCoreCharacterImageGenerator: "Generates consistent character images using the gimmick's appearance as a base prompt to maintain character identity. Style defaults to \"anime style\" but can be customized (e.g., \"realistic\" for photorealistic). Optionally combines one image description from the images array with the base prompt",
	GimmickCoreSceneImageGenerator:     "Generates scene images with one or more characters using reference images and appearance prompts. Each image in the images array includes a reference image and its Stable Diffusion-style appearance prompt for scene composition",
	GimmickCoreNotion:                  "Interacts with Notion for content management and collaboration",
}

type GimmickPublic struct {
	ID         GimmickID   `json:"id"`
	Name       string      `json:"name"`
	Core       GimmickCore `json:"core"`
	Appearance string      `json:"appearance"`
}

type GimmickCost struct {
	Core            GimmickCore `json:"core"`
	ExecutionCost   float64     `json:"executionCost"`
	CanvasMaxLength int         `json:"canvasMaxLength"`
}
