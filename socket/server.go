package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"

	"scorearena_server/log"
	"scorearena_server/models"
)

// NewSocketServer initializes the Socket.IO server and wires the channel
// membership events. Viewers join the per-match room for one match's full
// event feed, or the scoreboard room for the summarized feed across all
// live matches.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Debug("Socket connected", zap.String("socketId", c.ID()))
		return nil
	})

	server.OnEvent("/", "join-match", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			log.Warn("Invalid matchId in join-match request", zap.String("socketId", c.ID()))
			return
		}
		c.Join(models.MatchChannel(matchID))
		log.Debug("Socket joined match channel",
			zap.String("socketId", c.ID()),
			zap.String("matchId", matchID),
		)
	})

	server.OnEvent("/", "leave-match", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			return
		}
		c.Leave(models.MatchChannel(matchID))
	})

	server.OnEvent("/", "join-scoreboard", func(c socketio.Conn) {
		c.Join(models.ChannelScoreboard)
		log.Debug("Socket joined scoreboard channel", zap.String("socketId", c.ID()))
	})

	server.OnEvent("/", "leave-scoreboard", func(c socketio.Conn) {
		c.Leave(models.ChannelScoreboard)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Warn("Socket error", zap.Error(err))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Debug("Socket disconnected",
			zap.String("socketId", c.ID()),
			zap.String("reason", reason),
		)
	})

	return server
}
