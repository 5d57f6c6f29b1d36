package models

import "time"

// LocationPresetMessage is a transcript line seeded into new locations.
type LocationPresetMessage struct {
	EntityType EntityType `json:"entityType" validate:"oneof=agent user gimmick system"`
	EntityID   EntityID   `json:"entityId"`
	Message    *string    `json:"message,omitempty" validate:"omitnil,utf16max=800"`
	Image      *string    `json:"image,omitempty" validate:"omitnil,utf16max=2048"`
}

type LocationPresetCanvas struct {
	Name        string `json:"name" validate:"utf16max=32"`
	Text        string `json:"text" validate:"utf16max=5000"`
	ShowUpdates *bool  `json:"showUpdates,omitempty"`
}

type LocationPresetObjective struct {
	Description string `json:"description" validate:"utf16max=200"`
}

// LocationPresetMission is the goal shown to users of a preset.
type LocationPresetMission struct {
	MainMission string                    `json:"mainMission" validate:"utf16max=200"`
	Objectives  []LocationPresetObjective `json:"objectives" validate:"max=5,dive"`
}

type LocationPreset struct {
	ID                     ID                              `json:"id"`
	Name                   string                          `json:"name"`
	PresetDescription      string                          `json:"presetDescription"`
	PresetShortDescription string                          `json:"presetShortDescription"`
	Thumbnail              Nullable[string]                `json:"thumbnail"`
	Thumbnails             []string                        `json:"thumbnails"`
	OwnerUserID            Nullable[UserID]                `json:"ownerUserId"`
	SourceLocationID       Nullable[LocationID]            `json:"sourceLocationId"`
	Agents                 []AgentPublic                   `json:"agents"`
	AgentCosts             []AgentCost                     `json:"agentCosts"`
	Gimmicks               []GimmickPublic                 `json:"gimmicks"`
	GimmickCosts           []GimmickCost                   `json:"gimmickCosts"`
	Canvases               []LocationPresetCanvas          `json:"canvases"`
	CanvasConfigs          []LocationConfigCanvas          `json:"canvasConfigs"`
	Mission                Nullable[LocationPresetMission] `json:"mission"`
	Messages               []LocationPresetMessage         `json:"messages"`
	UserAvatar             Nullable[UserAvatar]            `json:"userAvatar"`
	Version                int                             `json:"version"`
	VersionUpdatedAt       time.Time                       `json:"versionUpdatedAt"`
	EditedPresetID         Nullable[ID]                    `json:"editedPresetId"`
	IsPublished            bool                            `json:"isPublished"`
	PublishedAt            Nullable[FlexTime]              `json:"publishedAt"`
	Tags                   []string                        `json:"tags"`
	Hashtags               []string                        `json:"hashtags"`
	LikeCount              int                             `json:"likeCount"`
	IsPublic               bool                            `json:"isPublic"`
	IsAllowImport          bool                            `json:"isAllowImport"`
	IsSensitive            bool                            `json:"isSensitive"`
	CreatedAt              time.Time                       `json:"createdAt"`
	UpdatedAt              time.Time                       `json:"updatedAt"`
}

// LocationPresetDetail adds the viewer's relation and usage counters.
type LocationPresetDetail struct {
	LocationPreset
	UserRating        Nullable[ReactionType] `json:"userRating"`
	HasReported       bool                   `json:"hasReported"`
	LocationCount     int                    `json:"locationCount"`
	TotalUsedCredit   float64                `json:"totalUsedCredit"`
	TotalMessageCount int                    `json:"totalMessageCount"`
}

// LocationPresetPrivate is the owner's editable view of a preset.
type LocationPresetPrivate struct {
	LocationPreset
	LocationConfig LocationConfig `json:"locationConfig"`
	AgentConfigs   []AgentConfig  `json:"agentConfigs"`
}

type LocationPresetComment struct {
	ID               ID                     `json:"id"`
	Content          string                 `json:"content"`
	AuthorUserID     UserID                 `json:"authorUserId"`
	LocationPresetID ID                     `json:"locationPresetId"`
	ParentCommentID  Nullable[ID]           `json:"parentCommentId"`
	LikeCount        int                    `json:"likeCount"`
	ReplyCount       int                    `json:"replyCount"`
	UserReaction     Nullable[ReactionType] `json:"userReaction"`
	HasReported      bool                   `json:"hasReported"`
	IsDeleted        bool                   `json:"isDeleted"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}
