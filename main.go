package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"net/smtp"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Zachkp/cloud-portfolio/config"
	"github.com/Zachkp/cloud-portfolio/content"
	"github.com/Zachkp/cloud-portfolio/typewriter"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

type server struct {
	cfg       config.Config
	site      *content.Site
	analytics *Analytics
	auth      *adminAuth
	sendMail  sendMailFunc
	now       func() time.Time

	bg sync.WaitGroup
}

func newServer(cfg config.Config, site *content.Site, analytics *Analytics) *server {
	return &server{
		cfg:       cfg,
		site:      site,
		analytics: analytics,
		auth:      newAdminAuth(cfg.AdminUsername, cfg.AdminPassword),
		sendMail:  smtp.SendMail,
		now:       time.Now,
	}
}

// background runs fn off the request path; wait blocks until all such work
// has finished.
func (s *server) background(fn func(ctx context.Context)) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		fn(ctx)
	}()
}

func (s *server) wait() { s.bg.Wait() }

func loadTemplates() *template.Template {
	funcs := template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(s.visitorTrackingMiddleware())

	r.GET("/", s.home)
	r.GET("/projects/:slug", s.project)
	r.GET("/hero/stream", s.heroStream)

	// HTMX contact form fragments
	r.GET("/contact-form", s.contactFormFragment)
	r.POST("/contact", s.submitContact)

	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"title": "Page Not Found",
		})
	})
	return r
}

func (s *server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":   s.site.Profile.Name,
		"site":    s.site,
		"profile": s.site.Profile,
	})
}

func (s *server) project(c *gin.Context) {
	slug := c.Param("slug")
	p, err := s.site.FindProject(slug)
	if errors.Is(err, content.ErrProjectNotFound) {
		c.HTML(http.StatusNotFound, "project-not-found.html", gin.H{
			"title": "Project Not Found",
		})
		return
	}

	if c.GetHeader("DNT") != "1" {
		at := s.now()
		s.background(func(ctx context.Context) {
			if err := s.analytics.RecordProjectView(ctx, slug, at); err != nil {
				log.Printf("Error recording project view: %v", err)
			}
		})
	}

	c.HTML(http.StatusOK, "project.html", gin.H{
		"title":   p.Title,
		"project": p,
	})
}

// checkHero rejects hero settings that would fail every stream.
func checkHero(cfg config.Config, site *content.Site) error {
	return typewriter.Validate(site.Profile.HeroPhrases, cfg.HeroTypeInterval, cfg.HeroHold)
}

func main() {
	cfg := config.Load()

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatal("Failed to load content:", err)
	}
	if err := checkHero(cfg, site); err != nil {
		log.Fatal("Invalid hero config:", err)
	}

	analytics, err := OpenAnalytics(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open analytics database:", err)
	}
	defer analytics.Close()

	s := newServer(cfg, site, analytics)

	// Clean up old visitor data for privacy compliance
	s.background(func(ctx context.Context) {
		if _, err := analytics.CleanupOldVisitors(ctx); err != nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
		}
	})

	// Hero streams never finish on their own; end them when shutdown starts.
	streamCtx, stopStreams := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     s.router(),
		BaseContext: func(net.Listener) context.Context { return streamCtx },
	}
	srv.RegisterOnShutdown(stopStreams)

	go func() {
		log.Printf("Listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	s.wait()
}
