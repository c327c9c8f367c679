package services

import (
	"fmt"
	"html"
	"log"
	"time"

	"partner-portal-api/config"
	"partner-portal-api/models"
	"partner-portal-api/utils"
)

// Notify writes an in-app notification for the user and sends a best-effort
// mail copy. Failures are logged and never propagated: notification fan-out
// must not block or roll back the action that triggered it.
func Notify(userID int, title, message, notifType string, relatedType string, relatedID int) {
	n := models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     notifType,
		CreateAt: time.Now(),
	}
	if relatedType != "" {
		n.RelatedType = &relatedType
		n.RelatedID = &relatedID
	}

	if err := config.DB.Create(&n).Error; err != nil {
		log.Printf("Warning: failed to create notification for user %d: %v", userID, err)
		return
	}

	var user models.User
	if err := config.DB.Select("email").Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		log.Printf("Warning: failed to load user %d for notification mail: %v", userID, err)
		return
	}
	if !utils.ValidateEmail(user.Email) {
		log.Printf("Warning: user %d has no valid email, skipping notification mail", userID)
		return
	}

	body := fmt.Sprintf("<p>%s</p>", html.EscapeString(message))
	if err := config.SendMail([]string{user.Email}, title, body); err != nil {
		log.Printf("Warning: failed to send notification mail to user %d: %v", userID, err)
	}
}

// NotifyPartnerUsers fans a notification out to every active user of a partner.
func NotifyPartnerUsers(partnerID int, title, message, notifType string, relatedType string, relatedID int) {
	var users []models.User
	if err := config.DB.Where("partner_id = ? AND delete_at IS NULL", partnerID).Find(&users).Error; err != nil {
		log.Printf("Warning: failed to load users of partner %d: %v", partnerID, err)
		return
	}
	for _, u := range users {
		Notify(u.UserID, title, message, notifType, relatedType, relatedID)
	}
}
