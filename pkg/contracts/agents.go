package contracts

import (
	"net/http"

	"github.com/little-samo/samo-api/pkg/models"
)

func agentEndpoints() []Endpoint {
	return []Endpoint{
		endpoint[ListAgentsRequest, ListAgentsResponse]("agents.list", http.MethodGet, "/agents", AuthRequired, "List the caller's agents"),
		endpoint[GetAgentsByIDsRequest, GetAgentPublicsResponse]("agents.publics", http.MethodGet, "/agents/publics", AuthRequired, "Get public agents by id"),
		endpoint[GetAgentsByIDsRequest, GetAgentPrivatesResponse]("agents.privates", http.MethodGet, "/agents/privates", AuthRequired, "Get owned agents by id"),
		endpoint[UpdateAgentConfigRequest, UpdateAgentConfigResponse]("agents.updateConfig", http.MethodPatch, "/agents/config", AuthRequired, "Update agent configuration"),
		endpoint[UpdateAgentCredentialRequest, models.Result]("agents.updateCredential", http.MethodPatch, "/agents/credential", AuthRequired, "Update agent credential"),
		endpoint[DeleteAgentCredentialRequest, models.Result]("agents.deleteCredential", http.MethodDelete, "/agents/credential", AuthRequired, "Delete agent credential"),
		endpoint[ListAgentPresetsRequest, ListAgentPresetsResponse]("agents.presets", http.MethodGet, "/agents/presets", AuthRequired, "List agent presets"),
		endpoint[CreateAgentRequest, AgentResponse]("agents.create", http.MethodPost, "/agents", AuthRequired, "Create agent"),
		endpoint[CreateAgentFromPresetRequest, AgentResponse]("agents.createFromPreset", http.MethodPost, "/agents/from-preset", AuthRequired, "Create agent from preset"),
		endpoint[GetHelperAgentRequest, AgentResponse]("agents.helper", http.MethodGet, "/agents/helper", AuthRequired, "Get or create helper agent"),
		endpoint[AgentPathRequest, UploadAgentAvatarResponse]("agents.uploadAvatar", http.MethodPost, "/agents/{agentId}/upload-avatar", AuthRequired, "Upload agent avatar"),
		endpoint[AgentPathRequest, models.Result]("agents.delete", http.MethodDelete, "/agents/{agentId}", AuthRequired, "Delete agent"),
	}
}

// GET /agents
type ListAgentsRequest struct {
	Page  int `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit int `query:"limit" default:"10" json:"-" validate:"min=1,max=100"`
}

type ListAgentsResponse = models.Page[models.AgentPrivate]

// GET /agents/publics, GET /agents/privates
type GetAgentsByIDsRequest struct {
	AgentIDs models.IDList `query:"agentIds" json:"-" validate:"min=1,max=25"`
}

type GetAgentPublicsResponse struct {
	Agents []models.AgentPublic `json:"agents"`
}

type GetAgentPrivatesResponse struct {
	Agents []models.AgentPrivate `json:"agents"`
}

// PATCH /agents/config
type UpdateAgentConfigRequest struct {
	AgentID models.AgentID                `json:"agentId"`
	Config  models.StrictAgentConfigPatch `json:"config"`
}

type UpdateAgentConfigResponse = models.AgentConfigPatch

// PATCH /agents/credential
type UpdateAgentCredentialRequest struct {
	AgentID    models.AgentID         `json:"agentId"`
	Credential models.AgentCredential `json:"credential"`
}

// DELETE /agents/credential
type DeleteAgentCredentialRequest struct {
	AgentID        models.AgentID `json:"agentId"`
	CredentialType string         `json:"credentialType"`
}

// GET /agents/presets
type ListAgentPresetsRequest struct {
	Page  int `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit int `query:"limit" default:"20" json:"-" validate:"min=1,max=100"`
}

type ListAgentPresetsResponse = models.Page[models.AgentPreset]

// POST /agents
type CreateAgentRequest struct {
	Name   string `json:"name" validate:"utf16max=64"`
	Role   string `json:"role" validate:"utf16max=500"`
	Avatar string `json:"avatar" validate:"avatar"`
}

type AgentResponse struct {
	Agent models.AgentPrivate `json:"agent"`
}

// POST /agents/from-preset
type CreateAgentFromPresetRequest struct {
	PresetID models.ID `json:"presetId"`
}

// GET /agents/helper
type GetHelperAgentRequest struct {
	HelperType models.AgentHelperType `query:"helperType" json:"-" validate:"oneof=AGENT_HELPER LOCATION_HELPER"`
}

// AgentPathRequest addresses one agent by path.
type AgentPathRequest struct {
	AgentID models.AgentID `param:"agentId" json:"-"`
}

type UploadAgentAvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
