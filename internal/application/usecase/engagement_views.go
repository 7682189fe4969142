package usecase

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// EngagementViews avis de productos (storefront) y bandeja de mensajes y
// notifications del dashboard de boutique.
type EngagementViews struct {
	comments      repository.CommentRepository
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
}

// NewEngagementViews construye las vistas.
func NewEngagementViews(comments repository.CommentRepository, messages repository.MessageRepository, notifications repository.NotificationRepository) *EngagementViews {
	return &EngagementViews{comments: comments, messages: messages, notifications: notifications}
}

// ProductComments avis públicos de un producto.
func (v *EngagementViews) ProductComments(ctx context.Context, sess domain.Session, productID string) ([]entity.Comment, error) {
	return v.comments.ListByProduct(ctx, sess, productID)
}

// AddComment publica un avis.
func (v *EngagementViews) AddComment(ctx context.Context, sess domain.Session, productID, author, content string, rating int) (*entity.Comment, error) {
	return v.comments.Create(ctx, sess, productID, author, content, rating)
}

// Inbox mensajes de contacto de la boutique.
func (v *EngagementViews) Inbox(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.Message, error) {
	return v.messages.ListByBoutique(ctx, sess, boutiqueID)
}

// MarkMessageRead marca un mensaje como leído y devuelve la fila actualizada.
func (v *EngagementViews) MarkMessageRead(ctx context.Context, sess domain.Session, id string) (*entity.Message, error) {
	return v.messages.MarkRead(ctx, sess, id)
}

// DeleteMessage elimina un mensaje.
func (v *EngagementViews) DeleteMessage(ctx context.Context, sess domain.Session, id string) error {
	return v.messages.Delete(ctx, sess, id)
}

// Notifications avisos de la boutique.
func (v *EngagementViews) Notifications(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.Notification, error) {
	return v.notifications.ListByBoutique(ctx, sess, boutiqueID)
}

// MarkNotificationRead marca una notification como leída.
func (v *EngagementViews) MarkNotificationRead(ctx context.Context, sess domain.Session, id string) (*entity.Notification, error) {
	return v.notifications.MarkRead(ctx, sess, id)
}
