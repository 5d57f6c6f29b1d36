package models

import "time"

type Item struct {
	ID          int              `json:"id"`
	ItemDataID  int              `json:"itemDataId"`
	Name        string           `json:"name"`
	Description Nullable[string] `json:"description"`
	Count       int              `json:"count"`
	Param1      int              `json:"param1"`
	Param2      int              `json:"param2"`
	Param3      int              `json:"param3"`
	Param4      int              `json:"param4"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ItemUpdate carries the mutable counters of an item.
type ItemUpdate struct {
	Count     int       `json:"count"`
	Param1    int       `json:"param1"`
	Param2    int       `json:"param2"`
	Param3    int       `json:"param3"`
	Param4    int       `json:"param4"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ItemRanking struct {
	Rank       int          `json:"rank"`
	OwnerAgent *AgentPublic `json:"ownerAgent,omitempty"`
	OwnerUser  *UserPublic  `json:"ownerUser,omitempty"`
	Count      int          `json:"count"`
}

// Ranking is one row of a leaderboard.
type Ranking struct {
	Type       int         `json:"type"`
	Date       time.Time   `json:"date"`
	Rank       int         `json:"rank"`
	LocationID *LocationID `json:"locationId,omitempty"`
	AgentID    *AgentID    `json:"agentId,omitempty"`
	UserID     *UserID     `json:"userId,omitempty"`
	Score      float64     `json:"score"`
}

// ImageStyle is the rendering style of generated images.
type ImageStyle string

const (
	ImageStyleRealistic    ImageStyle = "realistic"
	ImageStyleWebtoon      ImageStyle = "webtoon"
	ImageStyleWebtoon2     ImageStyle = "webtoon2"
	ImageStyleIllustration ImageStyle = "illustration"
	ImageStyleAnime        ImageStyle = "anime"
	ImageStyleKorean       ImageStyle = "korean"
)
