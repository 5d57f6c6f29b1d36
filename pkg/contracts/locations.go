package contracts

import (
	"net/http"

	"github.com/little-samo/samo-api/pkg/models"
)

func locationEndpoints() []Endpoint {
	return []Endpoint{
		endpoint[ListLocationsRequest, LocationCursorResponse]("locations.list", http.MethodGet, "/locations", AuthRequired, "List the caller's locations"),
		endpoint[PublishedLocationsRequest, PublishedLocationsResponse]("locations.published", http.MethodGet, "/locations/published", AuthOptional, "List published locations"),
		endpoint[Empty, TrendingLocationsResponse]("locations.trending", http.MethodGet, "/locations/trending", AuthOptional, "List trending locations"),
		endpoint[LocationsUnreadCountRequest, LocationsUnreadCountResponse]("locations.unreadCounts", http.MethodGet, "/locations/unread-counts", AuthRequired, "Unread counts for several locations"),
		endpoint[UpdateLocationConfigRequest, UpdateLocationConfigResponse]("locations.updateConfig", http.MethodPatch, "/locations/config", AuthRequired, "Update location configuration"),
		endpoint[UpdateLocationCredentialRequest, models.Result]("locations.updateCredential", http.MethodPatch, "/locations/credential", AuthRequired, "Update location credential"),
		endpoint[DeleteLocationCredentialRequest, models.Result]("locations.deleteCredential", http.MethodDelete, "/locations/credential", AuthRequired, "Delete location credential"),

		endpoint[CreateLocationRequest, LocationPrivateResponse]("locations.create", http.MethodPost, "/locations", AuthRequired, "Create location"),
		endpoint[CreateLocationFromPresetRequest, CreateLocationFromPresetResponse]("locations.createFromPreset", http.MethodPost, "/locations/from-preset", AuthRequired, "Create location from preset"),
		endpoint[PlatformQuery, LocationPrivateResponse]("locations.helper", http.MethodGet, "/locations/helper", AuthRequired, "Get or create helper location"),
		endpoint[AgentLocationQuery, LocationPrivateResponse]("locations.agentHelper", http.MethodGet, "/locations/agent-helper", AuthRequired, "Get or create agent helper location"),
		endpoint[LocationHelperQuery, LocationPrivateResponse]("locations.locationHelper", http.MethodGet, "/locations/location-helper", AuthRequired, "Get or create location helper location"),
		endpoint[AgentLocationQuery, LocationPrivateResponse]("locations.agentDm", http.MethodGet, "/locations/agent-dm", AuthRequired, "Get or create agent DM location"),

		endpoint[LocationPathRequest, LocationResponse]("locations.get", http.MethodGet, "/locations/{locationId}", AuthRequired, "Get location"),
		endpoint[LocationPathRequest, models.Result]("locations.delete", http.MethodDelete, "/locations/{locationId}", AuthRequired, "Delete location"),
		endpoint[UpdateLocationRequest, models.Result]("locations.update", http.MethodPatch, "/locations/{locationId}", AuthRequired, "Update location settings"),
		endpoint[LocationPathRequest, LocationPrivateResponse]("locations.private", http.MethodGet, "/locations/{locationId}/private", AuthRequired, "Get location private details"),
		endpoint[LocationPathRequest, LocationCostResponse]("locations.cost", http.MethodGet, "/locations/{locationId}/cost", AuthRequired, "Get location cost"),
		endpoint[ResetLocationRequest, models.Result]("locations.reset", http.MethodPost, "/locations/{locationId}/reset", AuthRequired, "Reset location"),
		endpoint[LocationPathRequest, LocationContentResponse]("locations.content", http.MethodGet, "/locations/{locationId}/content", AuthRequired, "Get location content"),
		endpoint[CreditsRequest, models.Result]("locations.depositCredits", http.MethodPost, "/locations/{locationId}/deposit-credits", AuthRequired, "Deposit credits"),
		endpoint[CreditsRequest, models.Result]("locations.withdrawCredits", http.MethodPost, "/locations/{locationId}/withdraw-credits", AuthRequired, "Withdraw credits"),
		endpoint[CreateLocationSnapshotRequest, CreateLocationSnapshotResponse]("locations.createSnapshot", http.MethodPost, "/locations/{locationId}/create-snapshot", AuthRequired, "Create shareable snapshot"),
		endpoint[GetLocationSnapshotRequest, LocationSnapshotResponse]("locations.snapshot", http.MethodGet, "/locations/snapshots/{snapshotKey}", AuthPublic, "Get snapshot by key"),
		endpoint[LocationPathRequest, Empty]("locations.markRead", http.MethodPost, "/locations/{locationId}/mark-read", AuthRequired, "Mark messages read"),
		endpoint[LocationPathRequest, LocationUnreadCountResponse]("locations.unreadCount", http.MethodGet, "/locations/{locationId}/unread-count", AuthRequired, "Get unread count"),
		endpoint[LocationAgentRequest, JoinAgentResponse]("locations.joinAgent", http.MethodPost, "/locations/{locationId}/join-agent", AuthRequired, "Join agent to location"),
		endpoint[LocationAgentRequest, RemoveAgentResponse]("locations.removeAgent", http.MethodPost, "/locations/{locationId}/remove-agent", AuthRequired, "Remove agent from location"),
		endpoint[UpdateLocationCanvasRequest, models.Result]("locations.updateCanvas", http.MethodPatch, "/locations/{locationId}/canvas", AuthRequired, "Update canvas"),

		endpoint[LocationPathRequest, ScheduledMessagesResponse]("locations.scheduledMessages", http.MethodGet, "/locations/{locationId}/scheduled-messages", AuthRequired, "List scheduled messages"),
		endpoint[CreateScheduledMessageRequest, ScheduledMessageResponse]("locations.createScheduledMessage", http.MethodPost, "/locations/{locationId}/scheduled-messages", AuthRequired, "Create scheduled message"),
		endpoint[UpdateScheduledMessageRequest, ScheduledMessageResponse]("locations.updateScheduledMessage", http.MethodPatch, "/locations/{locationId}/scheduled-messages/{messageId}", AuthRequired, "Update scheduled message"),
		endpoint[ScheduledMessagePathRequest, DeleteScheduledMessageResponse]("locations.deleteScheduledMessage", http.MethodDelete, "/locations/{locationId}/scheduled-messages/{messageId}", AuthRequired, "Delete scheduled message"),
	}
}

// ── Listings ────────────────────────────────────────────────

// GET /locations
type ListLocationsRequest struct {
	Cursor *string `query:"cursor,omitempty" json:"-"`
	Limit  float64 `query:"limit" default:"10" json:"-" validate:"min=1,max=10"`
}

type LocationCursorResponse struct {
	Locations []models.LocationListItem `json:"locations"`
	Meta      models.CursorMeta         `json:"meta"`
}

// GET /locations/published
type PublishedLocationsRequest struct {
	Page  int     `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit float64 `query:"limit" default:"10" json:"-" validate:"min=1,max=10"`
}

type PublishedLocationsResponse struct {
	Locations []models.LocationListItem `json:"locations"`
	Meta      models.PageMeta           `json:"meta"`
}

type TrendingLocationsResponse struct {
	Locations []models.LocationListItem `json:"locations"`
}

// GET /locations/unread-counts
type LocationsUnreadCountRequest struct {
	LocationIDs models.IDList `query:"locationIds" json:"-" validate:"min=1,max=10"`
}

type LocationUnreadCountItem struct {
	LocationID  models.LocationID       `json:"locationId"`
	UnreadCount int                     `json:"unreadCount"`
	LastMessage *models.LocationMessage `json:"lastMessage"`
}

type LocationsUnreadCountResponse struct {
	Data []LocationUnreadCountItem `json:"data"`
}

// ── Config and credentials ──────────────────────────────────

// PATCH /locations/config
type UpdateLocationConfigRequest struct {
	LocationID models.LocationID                `json:"locationId"`
	Config     models.StrictLocationConfigPatch `json:"config"`
}

type UpdateLocationConfigResponse = models.LocationConfigPatch

// PATCH /locations/credential
type UpdateLocationCredentialRequest struct {
	LocationID models.LocationID         `json:"locationId"`
	Credential models.LocationCredential `json:"credential"`
}

// DELETE /locations/credential
type DeleteLocationCredentialRequest struct {
	LocationID     models.LocationID `json:"locationId"`
	CredentialType string            `json:"credentialType"`
}

// ── Creation and helpers ────────────────────────────────────

// POST /locations
type CreateLocationRequest struct {
	Config   models.StrictLocationConfigPatch `json:"config"`
	Platform models.LocationPlatform          `json:"platform" default:"API" validate:"oneof=API"`
}

type LocationPrivateResponse struct {
	Location models.LocationPrivate `json:"location"`
}

// POST /locations/from-preset
type CreateLocationFromPresetRequest struct {
	PresetID models.ID               `json:"presetId"`
	Platform models.LocationPlatform `json:"platform" default:"API" validate:"oneof=API"`
	Import   bool                    `json:"import" default:"false"`
}

type CreateLocationFromPresetResponse struct {
	Location models.LocationPrivate `json:"location"`
	Agents   []models.AgentPrivate  `json:"agents"`
}

// PlatformQuery selects the platform of a helper location.
type PlatformQuery struct {
	Platform models.LocationPlatform `query:"platform" default:"API" json:"-" validate:"oneof=API"`
}

// AgentLocationQuery addresses a location derived from one agent.
type AgentLocationQuery struct {
	AgentID models.AgentID `query:"agentId" json:"-"`
	PlatformQuery
}

type LocationHelperQuery struct {
	LocationID models.LocationID `query:"locationId" json:"-"`
	PlatformQuery
}

// ── Single location ─────────────────────────────────────────

// LocationPathRequest addresses one location by path.
type LocationPathRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
}

type LocationResponse struct {
	Location models.LocationListItem `json:"location"`
}

// PATCH /locations/{locationId}
type UpdateLocationRequest struct {
	LocationID             models.LocationID                `param:"locationId" json:"-"`
	OverrideAgentLLMLevel  models.Nullable[models.LLMLevel] `json:"overrideAgentLlmLevel,omitzero" validate:"omitnil,oneof=FREE LOW MEDIUM HIGH"`
	Visibility             *models.Visibility               `json:"visibility,omitempty" validate:"omitnil,oneof=private public publish"`
	MaxUsers               *int                             `json:"maxUsers,omitempty" validate:"omitnil,min=1,max=99"`
	PublishDescription     *string                          `json:"publishDescription,omitempty" validate:"omitnil,utf16max=500"`
	Hashtags               []string                         `json:"hashtags,omitempty" validate:"omitempty,max=10,dive,utf16max=21"`
	UseLocationCreditOnly  *bool                            `json:"useLocationCreditOnly,omitempty"`
	CreditCostPerChat      *int                             `json:"creditCostPerChat,omitempty" validate:"omitnil,min=0,max=1000"`
	ChatRequiresPaidCredit *bool                            `json:"chatRequiresPaidCredit,omitempty"`
	IsAdminChat            *bool                            `json:"isAdminChat,omitempty"`
	IsSensitive            *bool                            `json:"isSensitive,omitempty"`
}

type LocationCostResponse struct {
	Cost models.LocationCost `json:"cost"`
}

// POST /locations/{locationId}/reset
type ResetLocationRequest struct {
	LocationID  models.LocationID `param:"locationId" json:"-"`
	ResetAgents bool              `json:"resetAgents" default:"false"`
}

type LocationContentResponse struct {
	Content models.LocationContent `json:"content"`
}

// POST /locations/{locationId}/deposit-credits and withdraw-credits
type CreditsRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
	Amount     int               `json:"amount" validate:"gt=0"`
}

// POST /locations/{locationId}/create-snapshot
type CreateLocationSnapshotRequest struct {
	LocationID  models.LocationID `param:"locationId" json:"-"`
	MaxMessages int               `json:"maxMessages" default:"30" coerce:"number" validate:"gt=0,max=100"`
}

type CreateLocationSnapshotResponse struct {
	SnapshotKey string `json:"snapshotKey"`
}

// GET /locations/snapshots/{snapshotKey}
type GetLocationSnapshotRequest struct {
	SnapshotKey string `param:"snapshotKey" json:"-" validate:"utf16max=128"`
}

type LocationSnapshotResponse struct {
	Snapshot models.LocationSnapshot `json:"snapshot"`
}

type LocationUnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// POST /locations/{locationId}/join-agent and remove-agent
type LocationAgentRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
	AgentID    models.AgentID    `json:"agentId"`
}

type JoinAgentResponse struct {
	AgentAdded bool   `json:"agentAdded"`
	Message    string `json:"message,omitempty"`
}

type RemoveAgentResponse struct {
	AgentRemoved bool   `json:"agentRemoved"`
	Message      string `json:"message,omitempty"`
}

// PATCH /locations/{locationId}/canvas
type UpdateLocationCanvasRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
	Name       string            `json:"name" validate:"utf16max=32"`
	Text       string            `json:"text" validate:"utf16max=5000"`
}

// ── Scheduled messages ──────────────────────────────────────

// ScheduleRepeat is the repetition shared by scheduled message requests.
// Times use the 24-hour H:MM or HH:MM form.
type ScheduleRepeat struct {
	RepeatTimesOfDay []string           `json:"repeatTimesOfDay" validate:"min=1,max=24,dive,hhmm"`
	RepeatDaysOfWeek []models.DayOfWeek `json:"repeatDaysOfWeek" default:"[]" validate:"max=7,dive,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
}

type ScheduledMessagesResponse struct {
	ScheduledMessages []models.LocationScheduledMessage `json:"scheduledMessages"`
}

// POST /locations/{locationId}/scheduled-messages
type CreateScheduledMessageRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
	ScheduleRepeat
	Message string `json:"message" validate:"utf16max=500"`
}

type ScheduledMessageResponse struct {
	ScheduledMessage models.LocationScheduledMessage `json:"scheduledMessage"`
}

// PATCH /locations/{locationId}/scheduled-messages/{messageId}
type UpdateScheduledMessageRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
	MessageID  string            `param:"messageId" json:"-"`
	ScheduleRepeat
	Message *string `json:"message,omitempty" validate:"omitnil,utf16max=500"`
}

type ScheduledMessagePathRequest struct {
	LocationID models.LocationID `param:"locationId" json:"-"`
	MessageID  string            `param:"messageId" json:"-"`
}

type DeleteScheduledMessageResponse struct {
	Deleted bool `json:"deleted"`
}
