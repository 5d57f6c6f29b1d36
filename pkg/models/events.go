package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownEventType is returned when an event's type tag names no
	// known variant.
	ErrUnknownEventType = errors.New("unknown event type")
	// ErrMissingEventType is returned when an event carries no type tag.
	ErrMissingEventType = errors.New("missing event type")
)

// decodeTagged reads the "type" member of data and decodes the rest into the
// variant registered for it.
func decodeTagged[E any](data []byte, variants map[string]func() E) (E, error) {
	var zero E
	var head struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return zero, fmt.Errorf("decode event: %w", err)
	}
	if head.Type == nil || *head.Type == "" {
		return zero, ErrMissingEventType
	}
	newEvent, ok := variants[*head.Type]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownEventType, *head.Type)
	}
	ev := newEvent()
	if err := json.Unmarshal(data, ev); err != nil {
		return zero, fmt.Errorf("decode %s event: %w", *head.Type, err)
	}
	return ev, nil
}

// ── Location events ─────────────────────────────────────────

type LocationEventType string

const (
	LocationEventAgentJoined             LocationEventType = "AgentJoined"
	LocationEventAgentLeft               LocationEventType = "AgentLeft"
	LocationEventAgentExecuting          LocationEventType = "AgentExecuting"
	LocationEventAgentExecuted           LocationEventType = "AgentExecuted"
	LocationEventUserJoined              LocationEventType = "UserJoined"
	LocationEventUserLeft                LocationEventType = "UserLeft"
	LocationEventGimmickExecuting        LocationEventType = "GimmickExecuting"
	LocationEventGimmickExecuted         LocationEventType = "GimmickExecuted"
	LocationEventAddMessage              LocationEventType = "AddMessage"
	LocationEventMessageProcessed        LocationEventType = "MessageProcessed"
	LocationEventRenderingUpdated        LocationEventType = "RenderingUpdated"
	LocationEventCanvasUpdated           LocationEventType = "CanvasUpdated"
	LocationEventPauseUpdateUntilUpdated LocationEventType = "PauseUpdateUntilUpdated"
)

// LocationEventBase holds the members every location event shares. UserIDs
// narrows delivery to specific users when set.
type LocationEventBase struct {
	LocationID LocationID        `json:"locationId"`
	UserIDs    []UserID          `json:"userIds,omitempty"`
	Type       LocationEventType `json:"type"`
}

// Base gives encoders access to the shared members.
func (b *LocationEventBase) Base() *LocationEventBase { return b }

// LocationEvent is implemented by pointers to every location event variant.
type LocationEvent interface {
	EventType() LocationEventType
	Base() *LocationEventBase
}

type LocationAgentJoinedEvent struct {
	LocationEventBase
	Agent AgentPublic `json:"agent"`
}

type LocationAgentLeftEvent struct {
	LocationEventBase
	AgentID AgentID `json:"agentId"`
}

type LocationAgentExecutingEvent struct {
	LocationEventBase
	AgentID AgentID `json:"agentId"`
}

type LocationAgentExecutedEvent struct {
	LocationEventBase
	AgentID AgentID `json:"agentId"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

type LocationUserJoinedEvent struct {
	LocationEventBase
	User UserPublic `json:"user"`
}

type LocationUserLeftEvent struct {
	LocationEventBase
	UserID UserID `json:"userId"`
}

type LocationGimmickExecutingEvent struct {
	LocationEventBase
	GimmickID GimmickID `json:"gimmickId"`
}

type LocationGimmickExecutedEvent struct {
	LocationEventBase
	GimmickID GimmickID `json:"gimmickId"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

type LocationAddMessageEvent struct {
	LocationEventBase
	Message LocationMessage `json:"message"`
}

type LocationMessageProcessedEvent struct {
	LocationEventBase
	LastMessageID string `json:"lastMessageId"`
}

type LocationRenderingUpdatedEvent struct {
	LocationEventBase
	Rendering Nullable[string] `json:"rendering"`
}

type LocationCanvasUpdatedEvent struct {
	LocationEventBase
	Name   string         `json:"name"`
	Canvas LocationCanvas `json:"canvas"`
}

type LocationPauseUpdateUntilUpdatedEvent struct {
	LocationEventBase
	PauseUpdateUntil  Nullable[FlexTime] `json:"pauseUpdateUntil"`
	PauseUpdateReason Nullable[string]   `json:"pauseUpdateReason"`
}

func (LocationAgentJoinedEvent) EventType() LocationEventType {
	return LocationEventAgentJoined
}

func (LocationAgentLeftEvent) EventType() LocationEventType {
	return LocationEventAgentLeft
}

func (LocationAgentExecutingEvent) EventType() LocationEventType {
	return LocationEventAgentExecuting
}

func (LocationAgentExecutedEvent) EventType() LocationEventType {
	return LocationEventAgentExecuted
}

func (LocationUserJoinedEvent) EventType() LocationEventType {
	return LocationEventUserJoined
}

func (LocationUserLeftEvent) EventType() LocationEventType {
	return LocationEventUserLeft
}

func (LocationGimmickExecutingEvent) EventType() LocationEventType {
	return LocationEventGimmickExecuting
}

func (LocationGimmickExecutedEvent) EventType() LocationEventType {
	return LocationEventGimmickExecuted
}

func (LocationAddMessageEvent) EventType() LocationEventType {
	return LocationEventAddMessage
}

func (LocationMessageProcessedEvent) EventType() LocationEventType {
	return LocationEventMessageProcessed
}

func (LocationRenderingUpdatedEvent) EventType() LocationEventType {
	return LocationEventRenderingUpdated
}

func (LocationCanvasUpdatedEvent) EventType() LocationEventType {
	return LocationEventCanvasUpdated
}

func (LocationPauseUpdateUntilUpdatedEvent) EventType() LocationEventType {
	return LocationEventPauseUpdateUntilUpdated
}

var locationEventVariants = map[string]func() LocationEvent{
	string(LocationEventAgentJoined):             func() LocationEvent { return &LocationAgentJoinedEvent{} },
	string(LocationEventAgentLeft):               func() LocationEvent { return &LocationAgentLeftEvent{} },
	string(LocationEventAgentExecuting):          func() LocationEvent { return &LocationAgentExecutingEvent{} },
	string(LocationEventAgentExecuted):           func() LocationEvent { return &LocationAgentExecutedEvent{} },
	string(LocationEventUserJoined):              func() LocationEvent { return &LocationUserJoinedEvent{} },
	string(LocationEventUserLeft):                func() LocationEvent { return &LocationUserLeftEvent{} },
	string(LocationEventGimmickExecuting):        func() LocationEvent { return &LocationGimmickExecutingEvent{} },
	string(LocationEventGimmickExecuted):         func() LocationEvent { return &LocationGimmickExecutedEvent{} },
	string(LocationEventAddMessage):              func() LocationEvent { return &LocationAddMessageEvent{} },
	string(LocationEventMessageProcessed):        func() LocationEvent { return &LocationMessageProcessedEvent{} },
	string(LocationEventRenderingUpdated):        func() LocationEvent { return &LocationRenderingUpdatedEvent{} },
	string(LocationEventCanvasUpdated):           func() LocationEvent { return &LocationCanvasUpdatedEvent{} },
	string(LocationEventPauseUpdateUntilUpdated): func() LocationEvent { return &LocationPauseUpdateUntilUpdatedEvent{} },
}

// EncodeLocationEvent stamps the variant's type tag on ev and encodes it.
func EncodeLocationEvent(ev LocationEvent) ([]byte, error) {
	ev.Base().Type = ev.EventType()
	return json.Marshal(ev)
}

// DecodeLocationEvent decodes a location event, dispatching on its type tag.
func DecodeLocationEvent(data []byte) (LocationEvent, error) {
	return decodeTagged(data, locationEventVariants)
}

// ── Item events ─────────────────────────────────────────────

type ItemEventType string

const (
	ItemEventCreated ItemEventType = "Created"
	ItemEventUpdated ItemEventType = "Updated"
)

type ItemEventBase struct {
	ItemID int           `json:"itemId"`
	Type   ItemEventType `json:"type"`
}

func (b *ItemEventBase) Base() *ItemEventBase { return b }

type ItemEvent interface {
	EventType() ItemEventType
	Base() *ItemEventBase
}

type ItemCreatedEvent struct {
	ItemEventBase
	Item Item `json:"item"`
}

type ItemUpdatedEvent struct {
	ItemEventBase
	Item ItemUpdate `json:"item"`
}

func (ItemCreatedEvent) EventType() ItemEventType { return ItemEventCreated }
func (ItemUpdatedEvent) EventType() ItemEventType { return ItemEventUpdated }

var itemEventVariants = map[string]func() ItemEvent{
	string(ItemEventCreated): func() ItemEvent { return &ItemCreatedEvent{} },
	string(ItemEventUpdated): func() ItemEvent { return &ItemUpdatedEvent{} },
}

func EncodeItemEvent(ev ItemEvent) ([]byte, error) {
	ev.Base().Type = ev.EventType()
	return json.Marshal(ev)
}

func DecodeItemEvent(data []byte) (ItemEvent, error) {
	return decodeTagged(data, itemEventVariants)
}

// ── User events ─────────────────────────────────────────────

type UserEventType string

const (
	UserEventItemEvent   UserEventType = "ItemEvent"
	UserEventUserUpdated UserEventType = "UserUpdated"
)

type UserEventBase struct {
	UserID int           `json:"userId"`
	Type   UserEventType `json:"type"`
}

func (b *UserEventBase) Base() *UserEventBase { return b }

type UserEvent interface {
	EventType() UserEventType
	Base() *UserEventBase
}

// UserItemEvent relays an item event to the item's owner.
type UserItemEvent struct {
	UserEventBase
	ItemEvent ItemEvent `json:"itemEvent"`
}

func (e *UserItemEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserEventBase
		ItemEvent json.RawMessage `json:"itemEvent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.ItemEvent) == 0 {
		return fmt.Errorf("itemEvent: %w", ErrMissingEventType)
	}
	inner, err := DecodeItemEvent(raw.ItemEvent)
	if err != nil {
		return fmt.Errorf("itemEvent: %w", err)
	}
	e.UserEventBase = raw.UserEventBase
	e.ItemEvent = inner
	return nil
}

type UserUpdatedEvent struct {
	UserEventBase
}

func (UserItemEvent) EventType() UserEventType    { return UserEventItemEvent }
func (UserUpdatedEvent) EventType() UserEventType { return UserEventUserUpdated }

var userEventVariants = map[string]func() UserEvent{
	string(UserEventItemEvent):   func() UserEvent { return &UserItemEvent{} },
	string(UserEventUserUpdated): func() UserEvent { return &UserUpdatedEvent{} },
}

// EncodeUserEvent stamps the type tags of ev and of a nested item event.
func EncodeUserEvent(ev UserEvent) ([]byte, error) {
	ev.Base().Type = ev.EventType()
	if ie, ok := ev.(*UserItemEvent); ok && ie.ItemEvent != nil {
		ie.ItemEvent.Base().Type = ie.ItemEvent.EventType()
	}
	return json.Marshal(ev)
}

func DecodeUserEvent(data []byte) (UserEvent, error) {
	return decodeTagged(data, userEventVariants)
}
