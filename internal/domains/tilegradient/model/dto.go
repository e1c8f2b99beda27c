package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTileGradientRequest - POST /api/mock/tile_gradients
// The wire names from/to map to the storage names from_color/to_color;
// the store only ever sees the storage names.
type CreateTileGradientRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Border string `json:"border"`
	Glow   string `json:"glow"`
}

func (r CreateTileGradientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.From, validation.Required.Error("from is required")),
		validation.Field(&r.To, validation.Required.Error("to is required")),
		validation.Field(&r.Border, validation.Required.Error("border is required")),
		validation.Field(&r.Glow, validation.Required.Error("glow is required")),
	)
}

func (r *CreateTileGradientRequest) ToEntity() *TileGradient {
	return &TileGradient{
		FromColor: r.From,
		ToColor:   r.To,
		Border:    r.Border,
		Glow:      r.Glow,
	}
}

// TileGradientResponse is the aliased outbound view.
type TileGradientResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Border string `json:"border"`
	Glow   string `json:"glow"`
}

func (t *TileGradient) ToResponse() *TileGradientResponse {
	return &TileGradientResponse{
		From:   t.FromColor,
		To:     t.ToColor,
		Border: t.Border,
		Glow:   t.Glow,
	}
}
