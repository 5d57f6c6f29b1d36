package contracts

import (
	"net/http"

	"github.com/little-samo/samo-api/pkg/models"
)

func miscEndpoints() []Endpoint {
	return []Endpoint{
		endpoint[ItemQuery, ItemsResponse]("items.list", http.MethodGet, "/items", AuthRequired, "List the caller's items"),
		endpoint[GenerateAvatarImageRequest, GenerateAvatarImageResponse]("images.avatar", http.MethodPost, "/images/avatar", AuthRequired, "Generate avatar image"),
		endpoint[GetRankingsRequest, GetRankingsResponse]("rankings.list", http.MethodGet, "/rankings", AuthOptional, "Get rankings by type"),
		endpoint[Empty, ImageUploadURLResponse]("upload.image", http.MethodPost, "/upload/image", AuthRequired, "Get a presigned image upload form"),
	}
}

// GET /items
//
// Entries of itemDataIds that are not numbers are dropped rather than
// rejected. The parameter may also repeat.
type ItemQuery struct {
	ItemDataIDs models.LenientIntList `query:"itemDataIds,omitempty" json:"-"`
}

type ItemsResponse struct {
	Items []models.Item `json:"items"`
}

// POST /images/avatar
type GenerateAvatarImageRequest struct {
	Image  *string `json:"image,omitempty" validate:"omitnil,utf16max=2048"`
	Prompt *string `json:"prompt,omitempty" validate:"omitnil,utf16max=500"`
}

type GenerateAvatarImageResponse struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// GET /rankings
type GetRankingsRequest struct {
	Type  int `query:"type" json:"-" validate:"min=0"`
	Limit int `query:"limit" default:"100" json:"-" validate:"min=1,max=100"`
}

type GetRankingsResponse struct {
	Rankings  []models.Ranking `json:"rankings"`
	MyRanking *models.Ranking  `json:"myRanking"`
}

// POST /upload/image
type ImageUploadURLResponse struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
	Path   string            `json:"path"`
}
