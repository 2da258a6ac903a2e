package ws

import (
	"log"
	"net/http"

	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StatusHub pushes application-status changes to the owning applicant over
// websockets, replacing polling of the user's denormalized pointer. Events
// are emitted only after the underlying transaction commits, so a client
// never sees a status its own re-read would contradict.
type StatusHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> connections
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
}

type Subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type StatusEvent struct {
	UserID        uint   `json:"-"`
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

func NewStatusHub() *StatusHub {
	return &StatusHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

func (h *StatusHub) Run() {
	for {
		select {
		case sub := <-h.register:
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true

		case sub := <-h.unregister:
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}

		case ev := <-h.broadcast:
			for conn := range h.clients[ev.UserID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.UserID], conn)
				}
			}
		}
	}
}

// NotifyStatus implements the service layer's StatusNotifier.
func (h *StatusHub) NotifyStatus(userID uint, applicationID, status string) {
	h.broadcast <- StatusEvent{UserID: userID, ApplicationID: applicationID, Status: status}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/application-status
func (h *StatusHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain discards inbound frames (the stream is one-way) and unregisters the
// connection when the client goes away.
func (h *StatusHub) drain(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
