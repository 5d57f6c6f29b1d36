package models

import "time"

// UserPublic is the view of a user anyone may read.
type UserPublic struct {
	ID             UserID             `json:"id"`
	Username       Nullable[string]   `json:"username"`
	Nickname       string             `json:"nickname"`
	FirstName      Nullable[string]   `json:"firstName"`
	LastName       Nullable[string]   `json:"lastName"`
	BirthDate      Nullable[FlexTime] `json:"birthDate"`
	Email          Nullable[string]   `json:"email"`
	ProfilePicture Nullable[string]   `json:"profilePicture"`
	Appearance     Nullable[string]   `json:"appearance"`
}

// UserPrivate is the signed-in user's own view including quotas.
type UserPrivate struct {
	UserPublic
	DefaultCredits    float64 `json:"defaultCredits"`
	MaxAgents         int     `json:"maxAgents"`
	MaxLocationAgents int     `json:"maxLocationAgents"`
	MaxAgentLocations int     `json:"maxAgentLocations"`
	IsAllowSensitive  bool    `json:"isAllowSensitive"`
}

// UserAvatar is a persona a user saved for role-play in locations.
type UserAvatar struct {
	ID              ID               `json:"id"`
	UserID          UserID           `json:"userId"`
	Name            string           `json:"name"`
	Role            Nullable[string] `json:"role"`
	Avatar          string           `json:"avatar"`
	ReferenceAvatar Nullable[string] `json:"referenceAvatar"`
	ExamplePoses    []string         `json:"examplePoses"`
	Appearance      string           `json:"appearance"`
	Style           Nullable[string] `json:"style"`
	IsPublic        bool             `json:"isPublic"`
	LikeCount       int              `json:"likeCount"`
	IsLiked         bool             `json:"isLiked"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// UserAvatarInput is the persona shape a location preset update embeds.
type UserAvatarInput struct {
	Name            string     `json:"name" validate:"utf16max=64"`
	Role            *string    `json:"role,omitempty" validate:"omitnil,utf16max=200"`
	Avatar          string     `json:"avatar" validate:"utf16max=2048"`
	ReferenceAvatar *string    `json:"referenceAvatar,omitempty" validate:"omitnil,utf16max=2048"`
	ExamplePoses    []string   `json:"examplePoses,omitempty" validate:"omitempty,dive,utf16max=2048"`
	Appearance      string     `json:"appearance" validate:"utf16max=500"`
	Style           ImageStyle `json:"style,omitempty" validate:"omitempty,oneof=realistic webtoon webtoon2 illustration anime korean"`
}

// ReactionType is a like or dislike on a comment.
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
)

// UserComment is a guest-book comment left on a user profile.
type UserComment struct {
	ID              ID                     `json:"id"`
	UserID          UserID                 `json:"userId"`
	AuthorUserID    UserID                 `json:"authorUserId"`
	ParentCommentID Nullable[ID]           `json:"parentCommentId"`
	Content         string                 `json:"content"`
	ContentImageURL Nullable[string]       `json:"contentImageUrl"`
	IsSecret        bool                   `json:"isSecret"`
	LikeCount       int                    `json:"likeCount"`
	DislikeCount    int                    `json:"dislikeCount"`
	ReplyCount      int                    `json:"replyCount"`
	MyReaction      Nullable[ReactionType] `json:"myReaction"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// UserAPIKeyType names the integrations a user can mint API keys for.
type UserAPIKeyType string

const UserAPIKeyTypeMCP UserAPIKeyType = "MCP"

// Notice is an operator announcement.
type Notice struct {
	ID               ID                 `json:"id"`
	Content          string             `json:"content"`
	ContentImageURLs []string           `json:"contentImageUrls"`
	PublishedAt      Nullable[FlexTime] `json:"publishedAt"`
	IsAcknowledged   Nullable[bool]     `json:"isAcknowledged"`
	IsRead           Nullable[bool]     `json:"isRead"`
}

type UserNotificationType string

const (
	NotificationAdminMessage           UserNotificationType = "ADMIN_MESSAGE"
	NotificationAdminReward            UserNotificationType = "ADMIN_REWARD"
	NotificationSystemRewardAttendance UserNotificationType = "SYSTEM_REWARD_ATTENDANCE"
	NotificationSystemRewardLevelUp    UserNotificationType = "SYSTEM_REWARD_LEVEL_UP"
	NotificationCommentUser            UserNotificationType = "COMMENT_USER"
	NotificationCommentLocationPreset  UserNotificationType = "COMMENT_LOCATION_PRESET"
	NotificationLikeUser               UserNotificationType = "LIKE_USER"
	NotificationLikeLocationPreset     UserNotificationType = "LIKE_LOCATION_PRESET"
)

type UserNotification struct {
	ID                      ID                   `json:"id"`
	Type                    UserNotificationType `json:"type"`
	ActorUserID             Nullable[UserID]     `json:"actorUserId"`
	UserCommentID           Nullable[ID]         `json:"userCommentId"`
	LocationPresetID        Nullable[ID]         `json:"locationPresetId"`
	LocationPresetCommentID Nullable[ID]         `json:"locationPresetCommentId"`
	Content                 Nullable[string]     `json:"content"`
	Count                   Nullable[int]        `json:"count"`
	IsAcknowledged          bool                 `json:"isAcknowledged"`
	IsRead                  bool                 `json:"isRead"`
	CreatedAt               time.Time            `json:"createdAt"`
}
