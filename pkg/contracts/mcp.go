package contracts

import "github.com/little-samo/samo-api/pkg/models"

// MCPTool exposes one HTTP operation as an MCP tool. The tool input merges
// the path parameters and body of the operation into one object.
type MCPTool struct {
	Name        string
	Description string
	Operation   string
	NewInput    func() any
}

// MCPTools lists the tools served on the MCP endpoint.
func MCPTools() []MCPTool {
	return []MCPTool{
		{
			Name:        "join_agent_to_location",
			Description: "Join one of your agents to a location so it takes part in the conversation.",
			Operation:   "locations.joinAgent",
			NewInput:    newOf[JoinAgentToLocationTool](),
		},
		{
			Name:        "remove_agent_from_location",
			Description: "Remove an agent from a location.",
			Operation:   "locations.removeAgent",
			NewInput:    newOf[RemoveAgentFromLocationTool](),
		},
		{
			Name:        "create_location_scheduled_message",
			Description: "Schedule a message that is posted to a location at fixed times of day.",
			Operation:   "locations.createScheduledMessage",
			NewInput:    newOf[CreateLocationScheduledMessageTool](),
		},
		{
			Name:        "update_location_scheduled_message",
			Description: "Change the schedule or text of a scheduled message.",
			Operation:   "locations.updateScheduledMessage",
			NewInput:    newOf[UpdateLocationScheduledMessageTool](),
		},
		{
			Name:        "delete_location_scheduled_message",
			Description: "Delete a scheduled message.",
			Operation:   "locations.deleteScheduledMessage",
			NewInput:    newOf[DeleteLocationScheduledMessageTool](),
		},
	}
}

type JoinAgentToLocationTool struct {
	LocationID models.LocationID `json:"locationId" jsonschema:"ID of the location"`
	AgentID    models.AgentID    `json:"agentId" jsonschema:"ID of the agent to join"`
}

type RemoveAgentFromLocationTool struct {
	LocationID models.LocationID `json:"locationId" jsonschema:"ID of the location"`
	AgentID    models.AgentID    `json:"agentId" jsonschema:"ID of the agent to remove"`
}

type CreateLocationScheduledMessageTool struct {
	LocationID       models.LocationID  `json:"locationId" jsonschema:"ID of the location"`
	RepeatTimesOfDay []string           `json:"repeatTimesOfDay" jsonschema:"Times of day to repeat the message (24-hour format)" validate:"min=1,max=24,dive,hhmm"`
	RepeatDaysOfWeek []models.DayOfWeek `json:"repeatDaysOfWeek" default:"[]" jsonschema:"Days of week to repeat the message" validate:"max=7,dive,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	Message          string             `json:"message" jsonschema:"Message text" validate:"utf16max=500"`
}

type UpdateLocationScheduledMessageTool struct {
	LocationID       models.LocationID  `json:"locationId" jsonschema:"ID of the location"`
	MessageID        string             `json:"messageId" jsonschema:"ID of the scheduled message"`
	RepeatTimesOfDay []string           `json:"repeatTimesOfDay" jsonschema:"Times of day to repeat the message (24-hour format)" validate:"min=1,max=24,dive,hhmm"`
	RepeatDaysOfWeek []models.DayOfWeek `json:"repeatDaysOfWeek" default:"[]" jsonschema:"Days of week to repeat the message" validate:"max=7,dive,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	Message          *string            `json:"message,omitempty" jsonschema:"New message text" validate:"omitnil,utf16max=500"`
}

type DeleteLocationScheduledMessageTool struct {
	LocationID models.LocationID `json:"locationId" jsonschema:"ID of the location"`
	MessageID  string            `json:"messageId" jsonschema:"ID of the scheduled message"`
}
