package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var (
	courseClients = make(map[string]map[*websocket.Conn]bool) // Map of course ID to connected clients
	broadcast     = make(chan GameUpdate)                     // Broadcast channel for updates
	mutex         sync.Mutex                                  // Protects courseClients
)

// GameUpdate notifies course watchers that a student finished a game
type GameUpdate struct {
	CourseID      string `json:"course_id"`
	Username      string `json:"username"`
	Word          string `json:"word"`
	Success       bool   `json:"success"`
	WrongAttempts int    `json:"wrong_attempts"`
}

// RegisterClient adds a WebSocket client to a specific course feed
func RegisterClient(courseID string, conn *websocket.Conn) {
	mutex.Lock()
	if courseClients[courseID] == nil {
		courseClients[courseID] = make(map[*websocket.Conn]bool)
	}
	courseClients[courseID][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific course feed
func UnregisterClient(courseID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := courseClients[courseID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(courseClients, courseID)
		}
	}
	mutex.Unlock()
}

// BroadcastGameUpdate sends an update to all clients watching the course
func BroadcastGameUpdate(update GameUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := courseClients[update.CourseID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					logrus.WithError(err).Warn("WebSocket write error")
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
