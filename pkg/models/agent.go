package models

import "time"

// AgentPublic is the view of an agent anyone may read.
type AgentPublic struct {
	ID          AgentID             `json:"id"`
	Name        string              `json:"name"`
	Avatar      Nullable[string]    `json:"avatar"`
	Role        Nullable[string]    `json:"role"`
	OwnerUserID UserID              `json:"ownerUserId"`
	LLMPreset   Nullable[LLMPreset] `json:"llmPreset"`
}

// AgentPrivate is the owner's view of an agent.
type AgentPrivate struct {
	AgentPublic
	Config          Nullable[AgentConfig] `json:"config"`
	CredentialTypes []string              `json:"credentialTypes"`
	IsEditable      bool                  `json:"isEditable"`
}

// AgentCost breaks down what one agent execution costs in credits.
type AgentCost struct {
	AgentID         AgentID  `json:"agentId"`
	TotalCost       float64  `json:"totalCost"`
	LLMPresetCost   float64  `json:"llmPresetCost"`
	GimmickCost     *float64 `json:"gimmickCost,omitempty"`
	CanvasMaxLength *int     `json:"canvasMaxLength,omitempty"`
	CanvasCost      *float64 `json:"canvasCost,omitempty"`
}

// AgentPreset is a ready-made configuration users can instantiate.
type AgentPreset struct {
	ID                     ID          `json:"id"`
	PresetName             string      `json:"presetName"`
	PresetShortDescription string      `json:"presetShortDescription"`
	PresetDescription      string      `json:"presetDescription"`
	Config                 AgentConfig `json:"config"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
}

// AgentHelperType selects which built-in helper agent GET /agents/helper
// returns.
type AgentHelperType string

const (
	AgentHelperTypeAgent    AgentHelperType = "AGENT_HELPER"
	AgentHelperTypeLocation AgentHelperType = "LOCATION_HELPER"
)

// AgentHelperTypes lists the accepted helper types.
var AgentHelperTypes = []AgentHelperType{AgentHelperTypeAgent, AgentHelperTypeLocation}
