package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatsomint/pawfectfind-be/internal/api/dto"
	"github.com/thatsomint/pawfectfind-be/internal/api/model"
)

// PetHandler handles pet-related HTTP requests
type PetHandler struct {
	logger *slog.Logger
	pets   PetStore
}

// NewPetHandler creates a new PetHandler instance
func NewPetHandler(logger *slog.Logger, pets PetStore) *PetHandler {
	return &PetHandler{
		logger: logger,
		pets:   pets,
	}
}

// CreatePet handles POST /api/pets
func (h *PetHandler) CreatePet(c *gin.Context) {
	userID := c.GetInt64(ContextUserIDKey)

	var req dto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	pet := model.Pet{
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
		Breed:  req.Breed,
		Age:    req.Age,
	}

	if err := h.pets.CreatePet(c.Request.Context(), &pet); err != nil {
		h.logger.Error("Failed to create pet",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create pet",
		})
		return
	}

	c.JSON(http.StatusCreated, toPetDTO(&pet))
}

// ListPets handles GET /api/pets
func (h *PetHandler) ListPets(c *gin.Context) {
	userID := c.GetInt64(ContextUserIDKey)

	pets, err := h.pets.ListPetsByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list pets",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list pets",
		})
		return
	}

	response := dto.ListPetsResponse{
		Pets: make([]dto.PetDTO, len(pets)),
	}
	for i := range pets {
		response.Pets[i] = toPetDTO(&pets[i])
	}

	c.JSON(http.StatusOK, response)
}

func toPetDTO(pet *model.Pet) dto.PetDTO {
	return dto.PetDTO{
		ID:        pet.ID,
		UserID:    pet.UserID,
		Name:      pet.Name,
		Type:      pet.Type,
		Breed:     pet.Breed,
		Age:       pet.Age,
		CreatedAt: pet.CreatedAt.Format(time.RFC3339),
	}
}
