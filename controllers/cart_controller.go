package controllers

import (
	"errors"
	"strconv"

	"github.com/phatapon77/food-backend/cart"
	"github.com/phatapon77/food-backend/pkg/resp"
	"github.com/phatapon77/food-backend/services"
	"github.com/phatapon77/food-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	v, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

type addToCartReq struct {
	MenuID         uint `json:"menuId" binding:"required"`
	ConfirmReplace bool `json:"confirmReplace"`
}

// POST /cart/items
// ข้ามร้าน → 409 พร้อม needsConfirm ให้หน้าเว็บถามผู้ใช้ แล้วยิงซ้ำด้วย confirmReplace=true
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, v, err := h.Svc.Add(uid, req.MenuID, req.ConfirmReplace)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if out == cart.NeedsConfirm {
		c.JSON(409, gin.H{"ok": false, "needsConfirm": true, "error": "cart has another restaurant"})
		return
	}
	resp.Created(c, gin.H{"replaced": out == cart.Replaced, "cart": v})
}

type cartItemReq struct {
	MenuID uint `json:"menuId" binding:"required"`
}

// PATCH /cart/items/increment
func (h *CartController) Increment(c *gin.Context) {
	h.patchQty(c, h.Svc.Increment)
}

// PATCH /cart/items/decrement (เหลือ 0 = ลบแถว)
func (h *CartController) Decrement(c *gin.Context) {
	h.patchQty(c, h.Svc.Decrement)
}

func (h *CartController) patchQty(c *gin.Context, fn func(uint, uint) (*services.CartView, error)) {
	uid := utils.CurrentUserID(c)

	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := fn(uid, req.MenuID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart/items/:menuId
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	menuID, _ := strconv.Atoi(c.Param("menuId"))

	v, err := h.Svc.Remove(uid, uint(menuID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
