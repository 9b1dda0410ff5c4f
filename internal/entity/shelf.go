package entity

import "time"

type Shelf struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Capacity    *int32    `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s Shelf) EntityID() int64 { return s.ID }

type ShelfCreateInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Capacity    *int32  `json:"capacity,omitempty" validate:"omitempty,min=1,max=10000"`
}

type ShelfUpdateInput struct {
	ID          int64             `json:"id"`
	Name        Optional[string]  `json:"name,omitzero"`
	Description Optional[*string] `json:"description,omitzero"`
	Capacity    Optional[*int32]  `json:"capacity,omitzero"`
}

func (in ShelfUpdateInput) TargetID() int64 { return in.ID }

type ShelfFilter struct {
	Search *string `json:"search,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}
