package models

// EntityType identifies who authored a message or modified a canvas.
type EntityType string

const (
	EntityTypeAgent   EntityType = "agent"
	EntityTypeUser    EntityType = "user"
	EntityTypeGimmick EntityType = "gimmick"
	EntityTypeSystem  EntityType = "system"
)

// EntityTypes lists every entity type in declaration order.
var EntityTypes = []EntityType{EntityTypeAgent, EntityTypeUser, EntityTypeGimmick, EntityTypeSystem}

// Entity is the minimal view shared by agents, users and gimmicks.
type Entity struct {
	ID         EntityID `json:"id"`
	Handle     string   `json:"handle,omitempty"`
	Name       string   `json:"name"`
	Appearance string   `json:"appearance"`
	Expression string   `json:"expression,omitempty"`
}
