package main

import (
	"log"
	"net/http"

	"github.com/Zachkp/cloud-portfolio/typewriter"
	"github.com/gin-gonic/gin"
)

// heroStream pushes typewriter frames for the hero title as Server-Sent
// Events. Every connection owns its own Cycler, stopped when the client
// disconnects.
func (s *server) heroStream(c *gin.Context) {
	changed := make(chan struct{}, 1)
	cycler, err := typewriter.New(s.site.Profile.HeroPhrases, s.cfg.HeroTypeInterval, s.cfg.HeroHold,
		typewriter.WithOnChange(func() {
			// Coalesce: the handler always reads the latest frame.
			select {
			case changed <- struct{}{}:
			default:
			}
		}))
	if err != nil {
		log.Printf("Error starting hero typewriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hero animation unavailable"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	cycler.Start()
	defer cycler.Stop()

	ctx := c.Request.Context()
	last := cycler.Frame()
	c.SSEvent("frame", last)
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			frame := cycler.Frame()
			if frame == last {
				continue
			}
			last = frame
			c.SSEvent("frame", frame)
			c.Writer.Flush()
		}
	}
}
