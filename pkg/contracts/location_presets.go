package contracts

import (
	"net/http"

	"github.com/little-samo/samo-api/pkg/models"
)

func locationPresetEndpoints() []Endpoint {
	return []Endpoint{
		endpoint[ListLocationPresetsRequest, LocationPresetPageResponse]("presets.list", http.MethodGet, "/locations/presets", AuthRequired, "List the caller's location presets"),
		endpoint[PublishedLocationPresetsRequest, LocationPresetPageResponse]("presets.published", http.MethodGet, "/locations/presets/published", AuthOptional, "List published location presets"),
		endpoint[FollowingLocationPresetsRequest, FollowingLocationPresetsResponse]("presets.following", http.MethodGet, "/locations/presets/following", AuthRequired, "List presets published by followed users"),
		endpoint[SearchLocationPresetsRequest, LocationPresetPageResponse]("presets.search", http.MethodGet, "/locations/presets/search", AuthOptional, "Search location presets"),
		endpoint[Empty, SearchQueryRankingsResponse]("presets.searchRankings", http.MethodGet, "/locations/presets/search/rankings", AuthOptional, "Get search query rankings"),
		endpoint[TrendingLocationPresetsRequest, TrendingLocationPresetsResponse]("presets.trending", http.MethodGet, "/locations/presets/trending", AuthOptional, "List trending location presets"),

		endpoint[CreateLocationPresetRequest, LocationPresetResponse]("presets.create", http.MethodPost, "/locations/preset", AuthRequired, "Create location preset"),
		endpoint[PresetPathRequest, LocationPresetDetailResponse]("presets.get", http.MethodGet, "/locations/preset/{presetId}", AuthOptional, "Get location preset"),
		endpoint[PresetPathRequest, LocationPresetPrivateResponse]("presets.private", http.MethodGet, "/locations/preset/{presetId}/private", AuthRequired, "Get location preset private details"),
		endpoint[UpdateLocationPresetRequest, LocationPresetResponse]("presets.update", http.MethodPatch, "/locations/preset/{presetId}", AuthRequired, "Update location preset"),
		endpoint[SaveLocationPresetRequest, LocationPresetResponse]("presets.save", http.MethodPost, "/locations/preset/{presetId}/save", AuthRequired, "Save location preset"),
		endpoint[PublishLocationPresetRequest, LocationPresetResponse]("presets.publish", http.MethodPost, "/locations/preset/{presetId}/publish", AuthRequired, "Publish location preset"),
		endpoint[PresetPathRequest, LocationPresetResponse]("presets.sync", http.MethodPost, "/locations/preset/{presetId}/sync", AuthRequired, "Sync preset to its source location"),
		endpoint[UpdateLocationPresetRatingRequest, models.Result]("presets.rating", http.MethodPatch, "/locations/preset/{presetId}/rating", AuthRequired, "Like or dislike a preset"),
		endpoint[PresetPathRequest, models.Result]("presets.report", http.MethodPost, "/locations/preset/{presetId}/report", AuthRequired, "Report location preset"),
		endpoint[PresetPathRequest, models.Result]("presets.delete", http.MethodDelete, "/locations/preset/{presetId}", AuthRequired, "Delete location preset"),
		endpoint[PresetPathRequest, LocationPresetResponse]("presets.duplicate", http.MethodPost, "/locations/preset/{presetId}/duplicate", AuthRequired, "Duplicate location preset"),
		endpoint[TranslateLocationPresetRequest, LocationPresetResponse]("presets.translate", http.MethodPost, "/locations/preset/{presetId}/translate", AuthRequired, "Translate location preset"),
		endpoint[LocationPresetLocationsRequest, LocationCursorResponse]("presets.locations", http.MethodGet, "/locations/preset/{presetId}/locations", AuthRequired, "List locations created from a preset"),

		endpoint[GetPresetCommentsRequest, PresetCommentPageResponse]("presets.comments", http.MethodGet, "/locations/preset/{presetId}/comments", AuthOptional, "List preset comments"),
		endpoint[GetPresetCommentRepliesRequest, PresetCommentRepliesResponse]("presets.commentReplies", http.MethodGet, "/locations/preset/{presetId}/comments/{commentId}/replies", AuthOptional, "List replies to a preset comment"),
		endpoint[CreatePresetCommentRequest, PresetCommentResponse]("presets.createComment", http.MethodPost, "/locations/preset/{presetId}/comments", AuthRequired, "Comment on a preset"),
		endpoint[UpdatePresetCommentReactionRequest, models.Result]("presets.commentReaction", http.MethodPatch, "/locations/preset/{presetId}/comments/{commentId}/reaction", AuthRequired, "React to a preset comment"),
		endpoint[PresetCommentPathRequest, models.Result]("presets.reportComment", http.MethodPost, "/locations/preset/{presetId}/comments/{commentId}/report", AuthRequired, "Report a preset comment"),
		endpoint[PresetCommentPathRequest, models.Result]("presets.deleteComment", http.MethodDelete, "/locations/preset/{presetId}/comments/{commentId}", AuthRequired, "Delete a preset comment"),
		endpoint[PinPresetCommentRequest, models.Result]("presets.pinComment", http.MethodPatch, "/locations/preset/{presetId}/pin-comment", AuthRequired, "Pin or unpin a preset comment"),
	}
}

// Gender narrows preset listings by the protagonist's gender.
type Gender string

const (
	GenderAll    Gender = "all"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// PresetSort orders public preset listings.
type PresetSort string

const (
	PresetSortPopular PresetSort = "popular"
	PresetSortLatest  PresetSort = "latest"
)

// TranslationLanguage is a target language of preset translation.
type TranslationLanguage string

const (
	LanguageKorean   TranslationLanguage = "ko"
	LanguageEnglish  TranslationLanguage = "en"
	LanguageJapanese TranslationLanguage = "ja"
)

// ── Listings ────────────────────────────────────────────────

// GET /locations/presets
type ListLocationPresetsRequest struct {
	Visibility models.Visibility `query:"visibility" default:"publish" json:"-" validate:"oneof=edited private public publish"`
	Page       int               `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit      int               `query:"limit" default:"20" json:"-" validate:"min=1,max=100"`
}

type LocationPresetPageResponse = models.Page[models.LocationPresetDetail]

// GET /locations/presets/published
type PublishedLocationPresetsRequest struct {
	Type        models.LocationEnvironment `query:"type" json:"-" validate:"oneof=NOVEL"`
	Gender      Gender                     `query:"gender" default:"all" json:"-" validate:"oneof=all male female"`
	Tag         *string                    `query:"tag,omitempty" json:"-" validate:"omitnil,utf16max=32"`
	SortBy      PresetSort                 `query:"sortBy" default:"popular" json:"-" validate:"oneof=popular latest"`
	OwnerUserID *models.UserID             `query:"ownerUserId,omitempty" json:"-"`
	Page        int                        `query:"page" default:"1" json:"-" validate:"min=1,max=25"`
	Limit       float64                    `query:"limit" default:"10" json:"-" validate:"min=1,max=10"`
}

// GET /locations/presets/following
type FollowingLocationPresetsRequest struct {
	Page  int     `query:"page" default:"1" json:"-" validate:"min=1,max=10"`
	Limit float64 `query:"limit" default:"10" json:"-" validate:"min=1,max=10"`
}

// FollowingMeta pages a feed whose total is unknown.
type FollowingMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type FollowingLocationPresetsResponse struct {
	Data []models.LocationPresetDetail `json:"data"`
	Meta FollowingMeta                 `json:"meta"`
}

// GET /locations/presets/search
type SearchLocationPresetsRequest struct {
	Query  string                     `query:"query" json:"-" validate:"utf16min=1,utf16max=100"`
	Type   models.LocationEnvironment `query:"type" json:"-" validate:"oneof=NOVEL"`
	Gender Gender                     `query:"gender" default:"all" json:"-" validate:"oneof=all male female"`
	SortBy PresetSort                 `query:"sortBy" default:"popular" json:"-" validate:"oneof=popular latest"`
	Page   int                        `query:"page" default:"1" json:"-" validate:"min=1,max=10"`
	Limit  float64                    `query:"limit" default:"10" json:"-" validate:"min=1,max=10"`
}

type SearchQueryRankingsResponse struct {
	Queries []string `json:"queries"`
}

// GET /locations/presets/trending
type TrendingLocationPresetsRequest struct {
	Type   models.LocationEnvironment `query:"type" json:"-" validate:"oneof=NOVEL"`
	Gender Gender                     `query:"gender" default:"all" json:"-" validate:"oneof=all male female"`
}

type TrendingLocationPresetsResponse struct {
	Data []models.LocationPresetDetail `json:"data"`
}

// ── Preset CRUD ─────────────────────────────────────────────

// POST /locations/preset
type CreateLocationPresetRequest struct {
	LocationID             *models.LocationID          `json:"locationId,omitempty"`
	Visibility             *models.Visibility          `json:"visibility,omitempty" validate:"omitnil,oneof=private public publish"`
	Name                   *string                     `json:"name,omitempty" validate:"omitnil,utf16max=64"`
	PresetDescription      string                      `json:"presetDescription" validate:"utf16max=5000"`
	PresetShortDescription string                      `json:"presetShortDescription" validate:"utf16max=80"`
	Hashtags               []string                    `json:"hashtags,omitempty" validate:"omitempty,max=10,dive,utf16max=21"`
	IsAllowImport          *bool                       `json:"isAllowImport,omitempty"`
	IsSensitive            *bool                       `json:"isSensitive,omitempty"`
	LocationConfig         *models.LocationConfigPatch `json:"locationConfig,omitempty" validate:"omitnil"`
	AgentConfigs           []models.AgentConfigPatch   `json:"agentConfigs,omitempty" validate:"omitempty,dive"`
}

type LocationPresetResponse struct {
	Preset models.LocationPreset `json:"preset"`
}

// PresetPathRequest addresses one preset by path.
type PresetPathRequest struct {
	PresetID models.ID `param:"presetId" json:"-"`
}

type LocationPresetDetailResponse struct {
	Preset models.LocationPresetDetail `json:"preset"`
}

type LocationPresetPrivateResponse struct {
	Preset models.LocationPresetPrivate `json:"preset"`
}

// PATCH /locations/preset/{presetId}
//
// A null agent config entry keeps the agent at that position unchanged.
type UpdateLocationPresetRequest struct {
	PresetID               models.ID                                     `param:"presetId" json:"-"`
	Name                   *string                                       `json:"name,omitempty" validate:"omitnil,utf16max=64"`
	PresetDescription      *string                                       `json:"presetDescription,omitempty" validate:"omitnil,utf16max=5000"`
	PresetShortDescription *string                                       `json:"presetShortDescription,omitempty" validate:"omitnil,utf16max=80"`
	Thumbnail              *string                                       `json:"thumbnail,omitempty" validate:"omitnil,utf16max=2048"`
	Thumbnails             []string                                      `json:"thumbnails,omitempty" validate:"omitempty,max=100,dive,utf16max=2048"`
	Canvases               []models.LocationPresetCanvas                 `json:"canvases,omitempty" validate:"omitempty,max=4,dive"`
	Mission                models.Nullable[models.LocationPresetMission] `json:"mission,omitzero" validate:"omitnil"`
	Messages               []models.LocationPresetMessage                `json:"messages,omitempty" validate:"omitempty,max=10,dive"`
	UserAvatar             models.Nullable[models.UserAvatarInput]       `json:"userAvatar,omitzero" validate:"omitnil"`
	Tags                   []string                                      `json:"tags,omitempty" validate:"omitempty,max=8,dive,utf16max=32"`
	Hashtags               []string                                      `json:"hashtags,omitempty" validate:"omitempty,max=10,dive,utf16max=21"`
	IsAllowImport          *bool                                         `json:"isAllowImport,omitempty"`
	IsSensitive            *bool                                         `json:"isSensitive,omitempty"`
	LocationConfig         *models.LocationConfigPatch                   `json:"locationConfig,omitempty" validate:"omitnil"`
	AgentConfigs           []models.Nullable[models.AgentConfigPatch]    `json:"agentConfigs,omitempty" validate:"omitempty,dive,omitnil"`
}

// POST /locations/preset/{presetId}/save
type SaveLocationPresetRequest struct {
	PresetID   models.ID          `param:"presetId" json:"-"`
	Visibility *models.Visibility `json:"visibility,omitempty" validate:"omitnil,oneof=private public publish"`
}

// POST /locations/preset/{presetId}/publish
type PublishLocationPresetRequest struct {
	PresetID   models.ID         `param:"presetId" json:"-"`
	Visibility models.Visibility `json:"visibility" validate:"oneof=private public publish"`
}

// PATCH /locations/preset/{presetId}/rating
type UpdateLocationPresetRatingRequest struct {
	PresetID models.ID                            `param:"presetId" json:"-"`
	Rating   models.Nullable[models.ReactionType] `json:"rating" validate:"omitnil,oneof=LIKE DISLIKE"`
}

// POST /locations/preset/{presetId}/translate
type TranslateLocationPresetRequest struct {
	PresetID       models.ID           `param:"presetId" json:"-"`
	TargetLanguage TranslationLanguage `json:"targetLanguage" validate:"oneof=ko en ja"`
}

// GET /locations/preset/{presetId}/locations
type LocationPresetLocationsRequest struct {
	PresetID models.ID `param:"presetId" json:"-"`
	Cursor   *string   `query:"cursor,omitempty" json:"-"`
	Limit    float64   `query:"limit" default:"10" json:"-" validate:"min=1,max=10"`
}

// ── Comments ────────────────────────────────────────────────

// GET /locations/preset/{presetId}/comments
type GetPresetCommentsRequest struct {
	PresetID models.ID   `param:"presetId" json:"-"`
	SortBy   CommentSort `query:"sortBy" default:"latest" json:"-" validate:"oneof=latest recommended"`
	Page     int         `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit    int         `query:"limit" default:"20" json:"-" validate:"min=1,max=50"`
}

type PresetCommentPageResponse struct {
	Data          []models.LocationPresetComment `json:"data"`
	PinnedComment *models.LocationPresetComment  `json:"pinnedComment"`
	Meta          models.PageMeta                `json:"meta"`
}

// GET /locations/preset/{presetId}/comments/{commentId}/replies
type GetPresetCommentRepliesRequest struct {
	PresetID  models.ID `param:"presetId" json:"-"`
	CommentID models.ID `param:"commentId" json:"-"`
	Page      int       `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit     int       `query:"limit" default:"20" json:"-" validate:"min=1,max=50"`
}

type PresetCommentRepliesResponse = models.Page[models.LocationPresetComment]

// POST /locations/preset/{presetId}/comments
type CreatePresetCommentRequest struct {
	PresetID        models.ID  `param:"presetId" json:"-"`
	ParentCommentID *models.ID `json:"parentCommentId,omitempty"`
	Content         string     `json:"content" validate:"utf16min=1,utf16max=2000"`
	ContentImageURL *string    `json:"contentImageUrl,omitempty" validate:"omitnil,url"`
	IsSecret        bool       `json:"isSecret" default:"false"`
}

type PresetCommentResponse struct {
	Comment models.LocationPresetComment `json:"comment"`
}

// PATCH /locations/preset/{presetId}/comments/{commentId}/reaction
type UpdatePresetCommentReactionRequest struct {
	PresetID     models.ID                            `param:"presetId" json:"-"`
	CommentID    models.ID                            `param:"commentId" json:"-"`
	ReactionType models.Nullable[models.ReactionType] `json:"reactionType" validate:"omitnil,oneof=LIKE DISLIKE"`
}

type PresetCommentPathRequest struct {
	PresetID  models.ID `param:"presetId" json:"-"`
	CommentID models.ID `param:"commentId" json:"-"`
}

// PATCH /locations/preset/{presetId}/pin-comment
//
// A null comment id unpins the current comment.
type PinPresetCommentRequest struct {
	PresetID  models.ID                  `param:"presetId" json:"-"`
	CommentID models.Nullable[models.ID] `json:"commentId"`
}
