package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/phatapon77/food-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed กระจายเหตุการณ์ออเดอร์ (สร้างใหม่/เปลี่ยนสถานะ) ให้หน้า admin แบบสด
// event จะถูกยิงหลัง DB commit แล้วเท่านั้น หน้าจอจึงไม่เห็นสถานะที่ยังไม่จริง
type OrderFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *OrderFeed) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish ใช้เป็น notifier ของ OrderService
// feed เต็มก็ทิ้ง event ได้ หน้า admin refresh เองอยู่แล้ว
func (h *OrderFeed) Publish(ev services.OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (admin เท่านั้น ผ่าน AuthMiddleware มาก่อน)
func (h *OrderFeed) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// อ่านทิ้งไว้เฉย ๆ เพื่อรู้ว่า client หลุดเมื่อไร
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
