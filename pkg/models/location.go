package models

import "time"

// LocationPlatform is where a location's conversation is surfaced.
type LocationPlatform string

const LocationPlatformAPI LocationPlatform = "API"

// LocationType tells private rooms from shared ones.
type LocationType string

const (
	LocationTypePrivate LocationType = "PRIVATE"
	LocationTypeGroup   LocationType = "GROUP"
	LocationTypePublic  LocationType = "PUBLIC"
)

// LocationEnvironment selects the client UI and the context agents get.
type LocationEnvironment string

const (
	LocationEnvironmentChat           LocationEnvironment = "CHAT"
	LocationEnvironmentNovel          LocationEnvironment = "NOVEL"
	LocationEnvironmentAgentHelper    LocationEnvironment = "AGENT_HELPER"
	LocationEnvironmentLocationHelper LocationEnvironment = "LOCATION_HELPER"
	LocationEnvironmentWebBrowser     LocationEnvironment = "WEB_BROWSER"
	LocationEnvironmentVideoGame      LocationEnvironment = "VIDEO_GAME"
)

// LLMLevel overrides the preset tier of every agent in a location.
type LLMLevel string

const (
	LLMLevelFree   LLMLevel = "FREE"
	LLMLevelLow    LLMLevel = "LOW"
	LLMLevelMedium LLMLevel = "MEDIUM"
	LLMLevelHigh   LLMLevel = "HIGH"
)

// Visibility is the publication state of a location or preset. Edited
// only appears as a listing filter.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
	VisibilityPublish Visibility = "publish"
	VisibilityEdited  Visibility = "edited"
)

type LocationPublic struct {
	ID                     LocationID             `json:"id"`
	Name                   string                 `json:"name"`
	Platform               LocationPlatform       `json:"platform"`
	Type                   LocationType           `json:"type"`
	Environment            LocationEnvironment    `json:"environment"`
	MaxUsers               int                    `json:"maxUsers"`
	Thumbnail              Nullable[string]       `json:"thumbnail"`
	OwnerUserID            Nullable[UserID]       `json:"ownerUserId"`
	CanvasConfigs          []LocationConfigCanvas `json:"canvasConfigs"`
	Gimmicks               []GimmickPublic        `json:"gimmicks"`
	SourceLocationPresetID Nullable[ID]           `json:"sourceLocationPresetId"`
	IsPublished            bool                   `json:"isPublished"`
	PublishedAt            Nullable[FlexTime]     `json:"publishedAt"`
	PublishDescription     Nullable[string]       `json:"publishDescription"`
	Hashtags               []string               `json:"hashtags"`
	Param1                 ID                     `json:"param1"`
	Param2                 ID                     `json:"param2"`
	Param3                 ID                     `json:"param3"`
	Param4                 ID                     `json:"param4"`
	FreeCreditBalance      float64                `json:"freeCreditBalance"`
	PaidCreditBalance      float64                `json:"paidCreditBalance"`
	TotalUsedCredit        float64                `json:"totalUsedCredit"`
	LastChargedCredit      float64                `json:"lastChargedCredit"`
	UseLocationCreditOnly  bool                   `json:"useLocationCreditOnly"`
	CreditCostPerChat      float64                `json:"creditCostPerChat"`
	ChatRequiresPaidCredit bool                   `json:"chatRequiresPaidCredit"`
	IsPublic               bool                   `json:"isPublic"`
	IsAdminChat            bool                   `json:"isAdminChat"`
	IsSensitive            bool                   `json:"isSensitive"`
	CreatedAt              time.Time              `json:"createdAt"`
	UpdatedAt              time.Time              `json:"updatedAt"`
}

type LocationPrivate struct {
	LocationPublic
	Config                Nullable[LocationConfig] `json:"config"`
	CredentialTypes       []string                 `json:"credentialTypes"`
	OverrideAgentLLMLevel Nullable[LLMLevel]       `json:"overrideAgentLlmLevel"`
	IsEditable            bool                     `json:"isEditable"`
}

// LocationListItem is a location as it appears in the sidebar.
type LocationListItem struct {
	LocationPublic
	LastMessage       Nullable[LocationMessage] `json:"lastMessage"`
	MessageCount      int                       `json:"messageCount"`
	UnreadCount       int                       `json:"unreadCount"`
	AgentIDs          []AgentID                 `json:"agentIds"`
	UserIDs           []UserID                  `json:"userIds"`
	PauseUpdateUntil  Nullable[FlexTime]        `json:"pauseUpdateUntil"`
	PauseUpdateReason Nullable[string]          `json:"pauseUpdateReason"`
}

type LocationCanvas struct {
	LastModifierEntityType EntityType `json:"lastModifierEntityType"`
	LastModifierEntityID   EntityID   `json:"lastModifierEntityId"`
	Text                   string     `json:"text"`
	IsExplicit             *bool      `json:"isExplicit,omitempty"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// LocationContent is the live state of a location beyond its messages.
type LocationContent struct {
	ID                 LocationID                `json:"id"`
	Canvases           map[string]LocationCanvas `json:"canvases"`
	Rendering          Nullable[string]          `json:"rendering"`
	SuggestedResponses Nullable[[]string]        `json:"suggestedResponses"`
}

type LocationCost struct {
	LocationID LocationID    `json:"locationId"`
	Agents     []AgentCost   `json:"agents"`
	Gimmicks   []GimmickCost `json:"gimmicks"`
}

// LocationMessage is one line of a location transcript.
type LocationMessage struct {
	EntityType EntityType `json:"entityType"`
	EntityID   EntityID   `json:"entityId"`
	Name       string     `json:"name"`
	Expression string     `json:"expression,omitempty"`
	Message    string     `json:"message,omitempty"`
	Action     string     `json:"action,omitempty"`
	Emotion    string     `json:"emotion,omitempty"`
	Image      string     `json:"image,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// LocationSnapshot is a shareable, frozen copy of a transcript.
type LocationSnapshot struct {
	SnapshotKey         string            `json:"snapshotKey"`
	SnapshotOwnerUserID UserID            `json:"snapshotOwnerUserId"`
	LocationID          LocationID        `json:"locationId"`
	LocationName        string            `json:"locationName"`
	LocationOwnerUserID UserID            `json:"locationOwnerUserId"`
	Messages            []LocationMessage `json:"messages"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// DayOfWeek names a weekday for repeating scheduled messages.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// LocationScheduledMessage is a message the platform posts into a location
// at fixed times of day.
type LocationScheduledMessage struct {
	ID               string             `json:"id"`
	LocationID       LocationID         `json:"locationId"`
	Message          string             `json:"message"`
	NextMessageAt    Nullable[FlexTime] `json:"nextMessageAt"`
	RepeatTimesOfDay []string           `json:"repeatTimesOfDay"`
	RepeatDaysOfWeek []DayOfWeek        `json:"repeatDaysOfWeek"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}
