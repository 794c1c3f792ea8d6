package dto

type CreatePetRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Breed string `json:"breed"`
	Age   int    `json:"age" binding:"gte=0"`
}

type PetDTO struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Breed     string `json:"breed,omitempty"`
	Age       int    `json:"age"`
	CreatedAt string `json:"created_at"`
}

type ListPetsResponse struct {
	Pets []PetDTO `json:"pets"`
}
