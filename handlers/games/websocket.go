package games

import (
	"net/http"

	"hangman/middleware"
	"hangman/realtime"
	"hangman/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CourseWebSocket streams completed-game events of one course to teachers
// of record and admins
func CourseWebSocket(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	courseID := c.Param("courseId")
	if err := services.ValidateCourseAccess(user, courseID); err != nil {
		handleServiceError(c, err, "Failed to open course feed")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("WebSocket upgrade error")
		return
	}

	realtime.RegisterClient(courseID, conn)
	defer func() {
		realtime.UnregisterClient(courseID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
