package contracts

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/little-samo/samo-api/pkg/models"
)

// WSFrame is the envelope of every WebSocket message in both directions.
type WSFrame struct {
	Event     string          `json:"event"`
	RequestID string          `json:"requestId,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// WSMessage describes one client to server WebSocket message.
type WSMessage struct {
	Event       string     `json:"event"`
	Summary     string     `json:"summary"`
	NewRequest  func() any `json:"-"`
	NewResponse func() any `json:"-"`
}

func wsMessage[Req, Resp any](event, summary string) WSMessage {
	return WSMessage{
		Event:       event,
		Summary:     summary,
		NewRequest:  newOf[Req](),
		NewResponse: newOf[Resp](),
	}
}

var wsMessages = map[string]WSMessage{}

func init() {
	for _, m := range []WSMessage{
		wsMessage[Empty, CurrentUserResponse]("me", "Get current user"),
		wsMessage[LocationRoomRequest, JoinLocationResponse]("joinLocation", "Join a location room"),
		wsMessage[LocationRoomRequest, LeaveLocationResponse]("leaveLocation", "Leave a location room"),
		wsMessage[LocationRoomRequest, SubscribeLocationResponse]("subscribeLocation", "Subscribe to location updates"),
		wsMessage[LocationRoomRequest, UnsubscribeLocationResponse]("unsubscribeLocation", "Unsubscribe from location updates"),
		wsMessage[BanUserFromLocationRequest, BanUserFromLocationResponse]("banUserFromLocation", "Ban user from location"),
		wsMessage[GetLocationMessagesRequest, LocationMessagesResponse]("getLocationMessages", "Get location messages"),
		wsMessage[SendLocationMessageRequest, Empty]("sendMessage", "Send message to location"),
		wsMessage[SendSystemMessageRequest, Empty]("sendSystemMessage", "Send system message to location"),
		wsMessage[UpdateLocationImageRequest, UpdateLocationImageResponse]("updateLocationImage", "Update location image"),
		wsMessage[UpdateLocationRenderingRequest, Empty]("updateLocationRendering", "Update location rendering"),
		wsMessage[UpdateLocationMissionRequest, Empty]("updateLocationMission", "Update location mission"),
		wsMessage[LocationRoomRequest, Empty]("generateLocationSuggestedResponses", "Generate suggested responses"),
		wsMessage[UpdateLocationAgentIsActiveRequest, Empty]("updateLocationAgentIsActive", "Update agent active status"),
		wsMessage[LocationRoomRequest, Empty]("pauseLocationUpdate", "Pause location updates"),
		wsMessage[ResumeLocationUpdateRequest, ResumeLocationUpdateResponse]("resumeLocationUpdate", "Resume location updates"),
	} {
		wsMessages[m.Event] = m
	}
}

// WSMessages returns every WebSocket message sorted by event name.
func WSMessages() []WSMessage {
	out := make([]WSMessage, 0, len(wsMessages))
	for _, m := range wsMessages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Event < out[j].Event })
	return out
}

// LookupWS finds a WebSocket message by event name.
func LookupWS(event string) (WSMessage, bool) {
	m, ok := wsMessages[event]
	return m, ok
}

// LocationRoomRequest addresses the location of a room-level message.
type LocationRoomRequest struct {
	LocationID models.LocationID `json:"locationId"`
}

type JoinLocationResponse struct {
	Joined bool `json:"joined"`
}

type LeaveLocationResponse struct {
	Left bool `json:"left"`
}

type SubscribeLocationResponse struct {
	Subscribed bool `json:"subscribed"`
}

type UnsubscribeLocationResponse struct {
	Unsubscribed bool `json:"unsubscribed"`
}

// BanUserFromLocationRequest bans for one minute up to 30 days. Omitting the
// duration bans for good.
type BanUserFromLocationRequest struct {
	LocationID models.LocationID `json:"locationId"`
	UserID     models.UserID     `json:"userId"`
	DurationMs *int64            `json:"durationMs,omitempty" validate:"omitnil,min=60000,max=2592000000"`
}

type BanUserFromLocationResponse struct {
	BannedUntil time.Time `json:"bannedUntil"`
}

type GetLocationMessagesRequest struct {
	LocationID models.LocationID `json:"locationId"`
	Cursor     *string           `json:"cursor,omitempty"`
}

type LocationMessagesResponse struct {
	Messages   []models.LocationMessage `json:"messages"`
	NextCursor string                   `json:"nextCursor,omitempty"`
}

type SendLocationMessageRequest struct {
	LocationID     models.LocationID `json:"locationId"`
	Message        *string           `json:"message,omitempty" validate:"omitnil,utf16max=800"`
	Action         *string           `json:"action,omitempty" validate:"omitnil,utf16max=2000"`
	Image          *string           `json:"image,omitempty" validate:"omitnil,utf16max=2048"`
	CreditAmount   *int              `json:"creditAmount,omitempty" validate:"omitnil,gt=0"`
	PaidCreditOnly *bool             `json:"paidCreditOnly,omitempty"`
}

type SendSystemMessageRequest struct {
	LocationID   models.LocationID `json:"locationId"`
	Message      string            `json:"message" validate:"utf16max=800"`
	ResumeUpdate *bool             `json:"resumeUpdate,omitempty"`
}

type UpdateLocationImageRequest struct {
	LocationID models.LocationID `json:"locationId"`
	Image      string            `json:"image" validate:"utf16max=2048"`
	Index      *int              `json:"index,omitempty" validate:"omitnil,min=0,max=2"`
}

type UpdateLocationImageResponse struct {
	ImageURL string `json:"imageUrl,omitempty"`
}

// UpdateLocationRenderingRequest clears the rendering when it is null.
type UpdateLocationRenderingRequest struct {
	LocationID models.LocationID       `json:"locationId"`
	Rendering  models.Nullable[string] `json:"rendering" validate:"omitnil,utf16max=5000"`
}

// UpdateLocationMissionRequest clears the mission when it is null.
type UpdateLocationMissionRequest struct {
	LocationID models.LocationID                             `json:"locationId"`
	Mission    models.Nullable[models.LocationPresetMission] `json:"mission" validate:"omitnil"`
}

type UpdateLocationAgentIsActiveRequest struct {
	LocationID models.LocationID `json:"locationId"`
	AgentID    models.AgentID    `json:"agentId"`
	IsActive   bool              `json:"isActive"`
}

type ResumeLocationUpdateRequest struct {
	LocationID models.LocationID `json:"locationId"`
	DelayMs    int               `json:"delayMs" default:"0" validate:"min=0,max=60000"`
}

type ResumeLocationUpdateResponse struct {
	ResumeAt time.Time `json:"resumeAt"`
}
