package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/Zachkp/cloud-portfolio/config"
	"github.com/gin-gonic/gin"
)

var (
	ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")
	ErrInvalidContact    = errors.New("invalid contact form")
)

// sendMailFunc matches smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

func sendContactEmail(cfg config.SMTP, send sendMailFunc, form contactForm) error {
	if !cfg.Configured() {
		return ErrSMTPNotConfigured
	}
	// Header injection guard
	if strings.ContainsAny(form.Name+form.Email, "\r\n") {
		return fmt.Errorf("header characters in name or email: %w", ErrInvalidContact)
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", form.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Message)

	msg := []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + form.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := send(cfg.Addr(), auth, cfg.User, []string{cfg.To}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (s *server) contactFormFragment(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

func (s *server) submitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": "Please provide your name, a valid email address and a message.",
		})
		return
	}

	if err := sendContactEmail(s.cfg.SMTP, s.sendMail, form); err != nil {
		log.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	log.Printf("Email sent successfully from %s", s.auth.hashIP(c.ClientIP()))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
