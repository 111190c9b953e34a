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

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(r *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: r}
}

// GET /menus?restaurant_id=
func (h *MenuController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant_id"))
	if restID <= 0 {
		resp.BadRequest(c, "restaurant_id is required")
		return
	}
	out, err := h.Repo.ListByRestaurant(uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type menuReq struct {
	Name         string `json:"name" binding:"required"`
	Detail       string `json:"detail"`
	Price        int64  `json:"price" binding:"required,min=1"`
	Picture      string `json:"picture"`
	RestaurantID uint   `json:"restaurantId" binding:"required"`
}

// POST /menus (admin)
func (h *MenuController) Create(c *gin.Context) {
	var req menuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.Menu{
		Name: req.Name, Detail: req.Detail, Price: req.Price,
		Picture: req.Picture, RestaurantID: req.RestaurantID,
	}
	if err := h.Repo.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /menus/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req menuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m.Name, m.Detail, m.Price, m.Picture = req.Name, req.Detail, req.Price, req.Picture
	if err := h.Repo.Update(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /menus/:id (admin)
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
