package controllers

import (
	"errors"
	"strconv"

	"github.com/phatapon77/food-backend/pkg/resp"
	"github.com/phatapon77/food-backend/services"
	"github.com/phatapon77/food-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type createOrderItemIn struct {
	MenuID    uint  `json:"menuId" binding:"required"`
	Qty       int   `json:"qty" binding:"required,min=1"`
	UnitPrice int64 `json:"unitPrice" binding:"required,min=1"`
}

type createOrderReq struct {
	RestaurantID  uint                `json:"restaurantId" binding:"required"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
	Items         []createOrderItemIn `json:"items" binding:"required,min=1"`
}

// POST /orders — สร้างออเดอร์ตรงจาก payload (ไม่ผ่านตะกร้าฝั่ง server)
// ยอดรวมไม่รับจาก client คิดใหม่ใน service
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items := make([]services.PayloadItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.PayloadItem{MenuID: it.MenuID, Qty: it.Qty, UnitPrice: it.UnitPrice})
	}
	p := &services.CheckoutPayload{
		RestaurantID:  req.RestaurantID,
		CustomerRef:   uid,
		PaymentMethod: services.PaymentMethod(req.PaymentMethod),
		Items:         items,
	}

	ref, err := h.Svc.CreateOrder(c.Request.Context(), p)
	switch {
	case err == nil:
		resp.Created(c, ref)
	case errors.Is(err, services.ErrRestaurantNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrBadPaymentMethod),
		errors.Is(err, services.ErrMenuNotInRestaurant):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /orders (admin) — ออเดอร์ทุกร้าน ?limit=
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /profile/orders — ออเดอร์ของตัวเอง
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id — เจ้าของออเดอร์หรือ admin
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := h.Svc.Detail(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if d.Order.UserID != utils.CurrentUserID(c) && utils.CurrentRole(c) != "admin" {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, d)
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status (admin)
// ออเดอร์ที่ปิดแล้ว (Completed/Cancelled) เปลี่ยนอีกไม่ได้ → 409
func (h *OrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := h.Svc.SetStatus(uint(id), req.Status)
	switch {
	case err == nil:
		resp.OK(c, o)
	case errors.Is(err, services.ErrUnknownStatus):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}
