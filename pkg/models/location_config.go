package models

// LocationCore is the scheduling loop that drives agents in a location.
type LocationCore string

const (
	LocationCoreRoundRobin      LocationCore = "round_robin"
	LocationCoreUpdateForever   LocationCore = "update_forever"
	LocationCoreUpdateOnce      LocationCore = "update_once"
	LocationCoreUpdateUntilIdle LocationCore = "update_until_idle"
)

// MaxLocationInterval is one hour in milliseconds.
const MaxLocationInterval = 60 * 60 * 1000

type LocationConfigCore struct {
	Name               LocationCore      `json:"name" validate:"oneof=round_robin update_forever update_once update_until_idle"`
	Sequential         *bool             `json:"sequential,omitempty"`
	Interval           *float64          `json:"interval,omitempty" validate:"omitnil,min=0,max=3600000"`
	MaxAgentExecutions Nullable[float64] `json:"maxAgentExecutions,omitzero" validate:"omitnil,min=1,max=10"`
}

// LocationConfigCanvas declares a canvas agents can read and write.
type LocationConfigCanvas struct {
	Name        string  `json:"name" validate:"utf16max=32,canvasname"`
	Description string  `json:"description" validate:"utf16max=1000"`
	MaxLength   float64 `json:"maxLength" validate:"min=100,max=5000"`
}

type LocationConfigGimmickImage struct {
	URL         *string `json:"url,omitempty" validate:"omitnil,imageref"`
	Name        *string `json:"name,omitempty" validate:"omitnil,utf16max=64"`
	Description string  `json:"description" validate:"utf16max=500"`
}

type LocationConfigGimmick struct {
	Core       GimmickCore                  `json:"core" validate:"oneof=web_search image_generator character_image_generator scene_image_generator notion"`
	Name       string                       `json:"name" validate:"utf16max=64"`
	Appearance string                       `json:"appearance" validate:"utf16max=500"`
	Images     []LocationConfigGimmickImage `json:"images,omitempty" validate:"omitempty,max=6,dive"`
}

// LocationConfig is the full, editable configuration of a location.
type LocationConfig struct {
	Name          string                  `json:"name" validate:"utf16max=64"`
	Thumbnail     Nullable[string]        `json:"thumbnail" validate:"omitnil,imageref"`
	Environment   LocationEnvironment     `json:"environment" validate:"oneof=CHAT NOVEL"`
	Core          LocationConfigCore      `json:"core"`
	Description   string                  `json:"description" validate:"utf16max=1000"`
	Rules         []string                `json:"rules" validate:"max=20,dive,utf16max=200"`
	Canvases      []LocationConfigCanvas  `json:"canvases" validate:"max=4,dive"`
	AgentCanvases []LocationConfigCanvas  `json:"agentCanvases" validate:"max=4,dive"`
	Gimmicks      []LocationConfigGimmick `json:"gimmicks" validate:"max=4,dive"`
}

// LocationConfigPatch is a partial LocationConfig.
type LocationConfigPatch struct {
	Name          *string                  `json:"name,omitempty" validate:"omitnil,utf16max=64"`
	Thumbnail     Nullable[string]         `json:"thumbnail,omitzero" validate:"omitnil,imageref"`
	Environment   *LocationEnvironment     `json:"environment,omitempty" validate:"omitnil,oneof=CHAT NOVEL"`
	Core          *LocationConfigCore      `json:"core,omitempty"`
	Description   *string                  `json:"description,omitempty" validate:"omitnil,utf16max=1000"`
	Rules         *[]string                `json:"rules,omitempty" validate:"omitnil,max=20,dive,utf16max=200"`
	Canvases      *[]LocationConfigCanvas  `json:"canvases,omitempty" validate:"omitnil,max=4,dive"`
	AgentCanvases *[]LocationConfigCanvas  `json:"agentCanvases,omitempty" validate:"omitnil,max=4,dive"`
	Gimmicks      *[]LocationConfigGimmick `json:"gimmicks,omitempty" validate:"omitnil,max=4,dive"`
}

// StrictLocationConfigPatch is a LocationConfigPatch that rejects unknown
// top-level members.
type StrictLocationConfigPatch struct {
	LocationConfigPatch
}

func (StrictLocationConfigPatch) StrictJSON() {}

func (p *StrictLocationConfigPatch) UnmarshalJSON(data []byte) error {
	return decodeStrict(data, &p.LocationConfigPatch)
}
