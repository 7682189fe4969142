package rest

import (
	"context"
	"net/http"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// CommentRepository implementa repository.CommentRepository.
type CommentRepository struct {
	c *Client
}

// NewCommentRepository construye el repositorio.
func NewCommentRepository(c *Client) *CommentRepository {
	return &CommentRepository{c: c}
}

// ListByProduct devuelve los avis de un producto (página pública).
func (r *CommentRepository) ListByProduct(ctx context.Context, sess domain.Session, productID string) ([]entity.Comment, error) {
	raw, err := r.c.Get(ctx, sess, "/api/produits/"+productID+"/commentaires/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.Comment](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Create publica un avis sobre un producto.
func (r *CommentRepository) Create(ctx context.Context, sess domain.Session, productID, author, content string, rating int) (*entity.Comment, error) {
	payload := map[string]any{
		"auteur":  author,
		"contenu": content,
		"note":    rating,
	}
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPost, "/api/produits/"+productID+"/commentaires/", payload)
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Comment](raw)
}

// MessageRepository implementa repository.MessageRepository.
type MessageRepository struct {
	c *Client
}

// NewMessageRepository construye el repositorio.
func NewMessageRepository(c *Client) *MessageRepository {
	return &MessageRepository{c: c}
}

// ListByBoutique devuelve los mensajes recibidos por la boutique.
func (r *MessageRepository) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.Message, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/messages/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.Message](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// MarkRead marca un mensaje como leído.
func (r *MessageRepository) MarkRead(ctx context.Context, sess domain.Session, id string) (*entity.Message, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPatch, "/api/messages/"+id+"/", map[string]bool{"lu": true})
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Message](raw)
}

// Delete elimina un mensaje.
func (r *MessageRepository) Delete(ctx context.Context, sess domain.Session, id string) error {
	return r.c.Delete(ctx, sess, "/api/messages/"+id+"/")
}

// NotificationRepository implementa repository.NotificationRepository.
type NotificationRepository struct {
	c *Client
}

// NewNotificationRepository construye el repositorio.
func NewNotificationRepository(c *Client) *NotificationRepository {
	return &NotificationRepository{c: c}
}

// ListByBoutique devuelve las notifications de la boutique.
func (r *NotificationRepository) ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.Notification, error) {
	raw, err := r.c.Get(ctx, sess, "/api/boutiques/"+boutiqueID+"/notifications/", nil)
	if err != nil {
		return nil, err
	}
	page, err := DecodeList[entity.Notification](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// MarkRead marca una notification como leída.
func (r *NotificationRepository) MarkRead(ctx context.Context, sess domain.Session, id string) (*entity.Notification, error) {
	raw, err := r.c.SendJSON(ctx, sess, http.MethodPatch, "/api/notifications/"+id+"/", map[string]bool{"lu": true})
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.Notification](raw)
}
