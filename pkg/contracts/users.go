package contracts

import (
	"net/http"
	"time"

	"github.com/little-samo/samo-api/pkg/models"
)

func userEndpoints() []Endpoint {
	return []Endpoint{
		endpoint[Empty, CurrentUserResponse]("users.me", http.MethodGet, "/users/me", AuthRequired, "Get current user"),
		endpoint[UpdateCurrentUserRequest, models.Result]("users.updateMe", http.MethodPatch, "/users/me", AuthRequired, "Update current user"),
		endpoint[DeleteCurrentUserRequest, Empty]("users.deleteMe", http.MethodDelete, "/users/me", AuthRequired, "Delete current user"),

		endpoint[UserAvatarPageRequest, UserAvatarPageResponse]("users.avatars", http.MethodGet, "/users/me/avatars", AuthRequired, "List saved avatars"),
		endpoint[CreateUserAvatarRequest, UserAvatarResponse]("users.createAvatar", http.MethodPost, "/users/me/avatars", AuthRequired, "Create avatar"),
		endpoint[UpdateUserAvatarRequest, UserAvatarResponse]("users.updateAvatar", http.MethodPatch, "/users/me/avatars/{id}", AuthRequired, "Update avatar"),
		endpoint[UserAvatarIDRequest, Empty]("users.deleteAvatar", http.MethodDelete, "/users/me/avatars/{id}", AuthRequired, "Delete avatar"),
		endpoint[UserAvatarPageRequest, UserAvatarListResponse]("users.likedAvatars", http.MethodGet, "/users/me/avatars/liked", AuthRequired, "List liked avatars"),
		endpoint[UserAvatarPageRequest, UserAvatarListResponse]("users.publicAvatars", http.MethodGet, "/users/avatars", AuthOptional, "List public avatars"),
		endpoint[SearchPublicAvatarsRequest, UserAvatarListResponse]("users.searchAvatars", http.MethodGet, "/users/avatars/search", AuthOptional, "Search public avatars"),
		endpoint[UserAvatarIDRequest, UserAvatarResponse]("users.avatar", http.MethodGet, "/users/avatars/{id}", AuthOptional, "Get avatar"),
		endpoint[UserPublicAvatarsRequest, UserAvatarListResponse]("users.userAvatars", http.MethodGet, "/users/{userId}/avatars", AuthOptional, "List a user's public avatars"),
		endpoint[AvatarLikeRequest, AvatarLikeResponse]("users.likeAvatar", http.MethodPost, "/users/avatars/{avatarId}/like", AuthRequired, "Like avatar"),
		endpoint[AvatarLikeRequest, AvatarLikeResponse]("users.unlikeAvatar", http.MethodDelete, "/users/avatars/{avatarId}/like", AuthRequired, "Unlike avatar"),

		endpoint[Empty, AttendanceResponse]("users.attendance", http.MethodGet, "/users/me/attendance", AuthRequired, "Get attendance state"),
		endpoint[Empty, CheckAttendanceResponse]("users.checkAttendance", http.MethodPost, "/users/me/attendance", AuthRequired, "Check attendance"),
		endpoint[ValidateUserFieldRequest, ValidateUserFieldResponse]("users.validate", http.MethodPost, "/users/validate", AuthRequired, "Validate username or nickname"),
		endpoint[GetUsersByIDsRequest, GetUserPublicsResponse]("users.publics", http.MethodGet, "/users/publics", AuthRequired, "Get public users by id"),

		endpoint[UserPathRequest, Empty]("users.follow", http.MethodPost, "/users/{userId}/follow", AuthRequired, "Follow user"),
		endpoint[UserPathRequest, Empty]("users.unfollow", http.MethodDelete, "/users/{userId}/follow", AuthRequired, "Unfollow user"),
		endpoint[UserFollowPageRequest, UserFollowPageResponse]("users.followers", http.MethodGet, "/users/{userId}/followers", AuthOptional, "List followers"),
		endpoint[UserFollowPageRequest, UserFollowPageResponse]("users.following", http.MethodGet, "/users/{userId}/following", AuthOptional, "List followed users"),

		endpoint[GetUserCommentsRequest, UserCommentPageResponse]("users.comments", http.MethodGet, "/users/{userId}/comments", AuthOptional, "List profile comments"),
		endpoint[GetUserCommentRepliesRequest, UserCommentPageResponse]("users.commentReplies", http.MethodGet, "/users/{userId}/comments/{commentId}/replies", AuthOptional, "List comment replies"),
		endpoint[CreateUserCommentRequest, UserCommentResponse]("users.createComment", http.MethodPost, "/users/{userId}/comments", AuthRequired, "Create profile comment"),
		endpoint[UpdateUserCommentReactionRequest, models.Result]("users.commentReaction", http.MethodPatch, "/users/{userId}/comments/{commentId}/reaction", AuthRequired, "React to comment"),
		endpoint[UserCommentPathRequest, models.Result]("users.reportComment", http.MethodPost, "/users/{userId}/comments/{commentId}/report", AuthRequired, "Report comment"),
		endpoint[UserCommentPathRequest, models.Result]("users.deleteComment", http.MethodDelete, "/users/{userId}/comments/{commentId}", AuthRequired, "Delete comment"),

		endpoint[Empty, UserReferralResponse]("users.referral", http.MethodGet, "/users/me/referral", AuthRequired, "Get referral info"),
		endpoint[SetUserReferrerRequest, SetUserReferrerResponse]("users.setReferrer", http.MethodPost, "/users/me/referral", AuthRequired, "Set referrer code"),

		endpoint[PageQuery20, NoticePageResponse]("users.notices", http.MethodGet, "/users/me/notices", AuthOptional, "List notices"),
		endpoint[Empty, Empty]("users.acknowledgeNotices", http.MethodPost, "/users/me/notices/acknowledge", AuthRequired, "Acknowledge all notices"),
		endpoint[Empty, Empty]("users.readAllNotices", http.MethodPost, "/users/me/notices/read", AuthRequired, "Mark all notices read"),
		endpoint[ReadNoticeRequest, Empty]("users.readNotice", http.MethodPost, "/users/me/notices/{noticeId}/read", AuthRequired, "Mark notice read"),

		endpoint[PageQuery20, NotificationPageResponse]("users.notifications", http.MethodGet, "/users/me/notifications", AuthRequired, "List notifications"),
		endpoint[Empty, Empty]("users.acknowledgeNotifications", http.MethodPost, "/users/me/notifications/acknowledge", AuthRequired, "Acknowledge all notifications"),
		endpoint[Empty, Empty]("users.readAllNotifications", http.MethodPost, "/users/me/notifications/read", AuthRequired, "Mark all notifications read"),
		endpoint[ReadNotificationRequest, Empty]("users.readNotification", http.MethodPost, "/users/me/notifications/{notificationId}/read", AuthRequired, "Mark notification read"),

		endpoint[GetUserSettingsRequest, UserSettingsResponse]("users.settings", http.MethodGet, "/users/me/settings", AuthRequired, "Get settings by key"),
		endpoint[GetUserAPIKeyRequest, UserAPIKeyResponse]("users.apiKey", http.MethodGet, "/users/me/api-keys", AuthRequired, "Get API key"),
		endpoint[RegenerateUserAPIKeyRequest, UserAPIKeyResponse]("users.regenerateApiKey", http.MethodPost, "/users/me/api-keys/regenerate", AuthRequired, "Regenerate API key"),
	}
}

// PageQuery20 is the page and limit pair shared by listings capped at 20.
type PageQuery20 struct {
	Page  int `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit int `query:"limit" default:"20" json:"-" validate:"min=1,max=20"`
}

// ── Me ──────────────────────────────────────────────────────

type CurrentUserResponse struct {
	User models.UserPrivate `json:"user"`
}

// PATCH /users/me
type UpdateCurrentUserRequest struct {
	Username         *string          `json:"username,omitempty" validate:"omitnil,utf16min=4,utf16max=16,username"`
	Nickname         *string          `json:"nickname,omitempty" validate:"omitnil,utf16min=4,utf16max=32"`
	BirthDate        *models.FlexTime `json:"birthDate,omitempty"`
	ProfilePicture   *string          `json:"profilePicture,omitempty" validate:"omitnil,utf16max=2048"`
	Role             *string          `json:"role,omitempty" validate:"omitnil,utf16max=200"`
	AvatarName       *string          `json:"avatarName,omitempty" validate:"omitnil,utf16max=64"`
	Avatar           *string          `json:"avatar,omitempty" validate:"omitnil,utf16max=2048"`
	ReferenceAvatar  *string          `json:"referenceAvatar,omitempty" validate:"omitnil,utf16max=2048"`
	Appearance       *string          `json:"appearance,omitempty" validate:"omitnil,utf16max=500"`
	Bio              *string          `json:"bio,omitempty" validate:"omitnil,utf16max=500"`
	IsAllowSensitive *bool            `json:"isAllowSensitive,omitempty"`
}

// DELETE /users/me
type DeleteCurrentUserRequest struct {
	Reason string `json:"reason" validate:"utf16min=1,utf16max=500"`
}

// ── Avatars ─────────────────────────────────────────────────

// UserAvatarPageRequest pages through avatar listings.
type UserAvatarPageRequest = PageQuery20

type UserAvatarPageResponse = models.Page[models.UserAvatar]

type UserAvatarListResponse struct {
	Avatars []models.UserAvatar `json:"avatars"`
	Meta    models.PageMeta     `json:"meta"`
}

type UserAvatarResponse struct {
	Avatar models.UserAvatar `json:"avatar"`
}

// POST /users/me/avatars
type CreateUserAvatarRequest struct {
	Name            string            `json:"name" validate:"utf16max=64"`
	Role            *string           `json:"role,omitempty" validate:"omitnil,utf16max=200"`
	Avatar          string            `json:"avatar" validate:"utf16max=2048"`
	ReferenceAvatar *string           `json:"referenceAvatar,omitempty" validate:"omitnil,utf16max=2048"`
	ExamplePoses    []string          `json:"examplePoses,omitempty" validate:"omitempty,dive,utf16max=2048"`
	Appearance      string            `json:"appearance" validate:"utf16max=500"`
	Style           models.ImageStyle `json:"style,omitempty" validate:"omitempty,oneof=realistic webtoon webtoon2 illustration anime korean"`
	IsPublic        bool              `json:"isPublic" default:"false"`
}

// PATCH /users/me/avatars/{id}
type UpdateUserAvatarRequest struct {
	ID           models.ID `param:"id" json:"-"`
	ExamplePoses []string  `json:"examplePoses,omitempty" validate:"omitempty,dive,utf16max=2048"`
	IsPublic     *bool     `json:"isPublic,omitempty"`
}

type UserAvatarIDRequest struct {
	ID models.ID `param:"id" json:"-"`
}

// GET /users/avatars/search
type SearchPublicAvatarsRequest struct {
	Query string `query:"query" json:"-" validate:"utf16min=1,utf16max=100"`
	Page  int    `query:"page" default:"1" json:"-" validate:"min=1,max=10"`
	Limit int    `query:"limit" default:"20" json:"-" validate:"min=1,max=20"`
}

// GET /users/{userId}/avatars
type UserPublicAvatarsRequest struct {
	UserID models.UserID `param:"userId" json:"-"`
	PageQuery20
}

type AvatarLikeRequest struct {
	AvatarID models.ID `param:"avatarId" json:"-"`
}

type AvatarLikeResponse struct {
	LikeCount int  `json:"likeCount"`
	IsLiked   bool `json:"isLiked"`
}

// ── Attendance, validation, lookups ─────────────────────────

type AttendanceResponse struct {
	LastAttendanceAt   *time.Time `json:"lastAttendanceAt"`
	AttendanceStreak   int        `json:"attendanceStreak"`
	Rewards            []int      `json:"rewards"`
	Intervals          []int      `json:"intervals"`
	MinRewardCredits   int        `json:"minRewardCredits"`
	MaxRewardCredits   int        `json:"maxRewardCredits"`
	CycleDays          int        `json:"cycleDays"`
	BonusInterval      int        `json:"bonusInterval"`
	BonusMultiplier    float64    `json:"bonusMultiplier"`
	FinalDayMultiplier float64    `json:"finalDayMultiplier"`
	MaxSkipDays        int        `json:"maxSkipDays"`
}

type CheckAttendanceResponse struct {
	RewardCredits int `json:"rewardCredits"`
}

// POST /users/validate
type ValidateUserFieldRequest struct {
	Username *string `json:"username,omitempty" validate:"omitnil,utf16min=4,utf16max=16,username"`
	Nickname *string `json:"nickname,omitempty" validate:"omitnil,utf16min=4,utf16max=32"`
}

type ValidateUserFieldResponse struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// GET /users/publics
type GetUsersByIDsRequest struct {
	UserIDs    models.IDList      `query:"userIds" json:"-" validate:"min=1,max=25"`
	LocationID *models.LocationID `query:"locationId,omitempty" json:"-"`
}

type GetUserPublicsResponse struct {
	Users []models.UserPublic `json:"users"`
}

// ── Follows ─────────────────────────────────────────────────

type UserPathRequest struct {
	UserID models.UserID `param:"userId" json:"-"`
}

type UserFollowPageRequest struct {
	UserID models.UserID `param:"userId" json:"-"`
	PageQuery20
}

type UserFollowPageResponse struct {
	UserIDs []models.UserID `json:"userIds"`
	Meta    models.PageMeta `json:"meta"`
}

// ── Comments ────────────────────────────────────────────────

// CommentSort orders comment listings.
type CommentSort string

const (
	CommentSortLatest      CommentSort = "latest"
	CommentSortRecommended CommentSort = "recommended"
)

type GetUserCommentsRequest struct {
	UserID models.UserID `param:"userId" json:"-"`
	SortBy CommentSort   `query:"sortBy" default:"latest" json:"-" validate:"oneof=latest recommended"`
	Page   int           `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit  int           `query:"limit" default:"20" json:"-" validate:"min=1,max=50"`
}

type GetUserCommentRepliesRequest struct {
	UserID    models.UserID `param:"userId" json:"-"`
	CommentID models.ID     `param:"commentId" json:"-"`
	Page      int           `query:"page" default:"1" json:"-" validate:"min=1"`
	Limit     int           `query:"limit" default:"20" json:"-" validate:"min=1,max=50"`
}

type UserCommentPageResponse = models.Page[models.UserComment]

// POST /users/{userId}/comments
type CreateUserCommentRequest struct {
	UserID          models.UserID `param:"userId" json:"-"`
	ParentCommentID *models.ID    `json:"parentCommentId,omitempty"`
	Content         string        `json:"content" validate:"utf16min=1,utf16max=2000"`
	ContentImageURL *string       `json:"contentImageUrl,omitempty" validate:"omitnil,url"`
	IsSecret        bool          `json:"isSecret" default:"false"`
}

type UserCommentResponse struct {
	Comment models.UserComment `json:"comment"`
}

// PATCH /users/{userId}/comments/{commentId}/reaction
type UpdateUserCommentReactionRequest struct {
	UserID       models.UserID                        `param:"userId" json:"-"`
	CommentID    models.ID                            `param:"commentId" json:"-"`
	ReactionType models.Nullable[models.ReactionType] `json:"reactionType" validate:"omitnil,oneof=LIKE DISLIKE"`
}

type UserCommentPathRequest struct {
	UserID    models.UserID `param:"userId" json:"-"`
	CommentID models.ID     `param:"commentId" json:"-"`
}

// ── Referral ────────────────────────────────────────────────

type UserReferralResponse struct {
	ReferralCode             string     `json:"referralCode"`
	ReferrerID               *models.ID `json:"referrerId"`
	ReferrerCode             *string    `json:"referrerCode"`
	TotalRewardCredits       int        `json:"totalRewardCredits"`
	ReferralCount            int        `json:"referralCount"`
	RewardCreditsPerReferral int        `json:"rewardCreditsPerReferral"`
}

// POST /users/me/referral
type SetUserReferrerRequest struct {
	ReferralCode string `json:"referralCode" validate:"len=6,referralcode"`
}

type SetUserReferrerResponse struct {
	RewardCredits int `json:"rewardCredits"`
}

// ── Notices and notifications ───────────────────────────────

type NoticePageResponse struct {
	Data                []models.Notice `json:"data"`
	Meta                models.PageMeta `json:"meta"`
	UnacknowledgedCount int             `json:"unacknowledgedCount"`
}

type ReadNoticeRequest struct {
	NoticeID models.ID `param:"noticeId" json:"-"`
}

type NotificationPageResponse struct {
	Data                []models.UserNotification `json:"data"`
	Meta                models.PageMeta           `json:"meta"`
	UnacknowledgedCount int                       `json:"unacknowledgedCount"`
}

type ReadNotificationRequest struct {
	NotificationID models.ID `param:"notificationId" json:"-"`
}

// ── Settings and API keys ───────────────────────────────────

// GET /users/me/settings
type GetUserSettingsRequest struct {
	Keys models.CSV `query:"keys" json:"-" validate:"min=1"`
}

type UserSettingsResponse struct {
	Settings map[string]any `json:"settings"`
}

// GET /users/me/api-keys
type GetUserAPIKeyRequest struct {
	Type models.UserAPIKeyType `query:"type" json:"-" validate:"oneof=MCP"`
}

// POST /users/me/api-keys/regenerate
type RegenerateUserAPIKeyRequest struct {
	Type models.UserAPIKeyType `json:"type" validate:"oneof=MCP"`
}

type UserAPIKeyResponse struct {
	APIKey string `json:"apiKey"`
}
