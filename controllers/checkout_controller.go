package controllers

import (
	"context"
	"errors"

	"github.com/phatapon77/food-backend/pkg/resp"
	"github.com/phatapon77/food-backend/services"
	"github.com/phatapon77/food-backend/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

type checkoutReq struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// POST /checkout — สั่งจากตะกร้าที่เก็บไว้
// สำเร็จ → ตะกร้าถูกล้าง; พลาด → ตะกร้าคงเดิม หน้าเว็บให้กดสั่งซ้ำได้
func (h *CheckoutController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := h.Svc.Checkout(c.Request.Context(), uid, services.PaymentMethod(req.PaymentMethod))
	switch {
	case err == nil:
		resp.Created(c, res)
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrBadPaymentMethod),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrMenuNotInRestaurant):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(504, gin.H{"ok": false, "error": "order submission timed out, please retry"})
	default:
		resp.ServerError(c, err)
	}
}
