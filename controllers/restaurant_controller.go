package controllers

import (
	"errors"
	"strconv"

	"github.com/phatapon77/food-backend/entity"
	"github.com/phatapon77/food-backend/pkg/resp"
	"github.com/phatapon77/food-backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct{ Repo *repository.RestaurantRepository }

func NewRestaurantController(r *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: r}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, r)
}

type restaurantReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Picture     string `json:"picture"`
}

// POST /restaurants (admin)
func (h *RestaurantController) Create(c *gin.Context) {
	var req restaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r := entity.Restaurant{Name: req.Name, Description: req.Description, Address: req.Address, Picture: req.Picture}
	if err := h.Repo.Create(&r); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, r)
}

// DELETE /restaurants/:id (admin)
func (h *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
