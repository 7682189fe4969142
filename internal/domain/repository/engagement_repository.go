package repository

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
)

// CommentRepository avis publicados en la página de un producto.
type CommentRepository interface {
	ListByProduct(ctx context.Context, sess domain.Session, productID string) ([]entity.Comment, error)
	Create(ctx context.Context, sess domain.Session, productID, author, content string, rating int) (*entity.Comment, error)
}

// MessageRepository mensajes del formulario de contacto de una boutique.
type MessageRepository interface {
	ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.Message, error)
	MarkRead(ctx context.Context, sess domain.Session, id string) (*entity.Message, error)
	Delete(ctx context.Context, sess domain.Session, id string) error
}

// NotificationRepository avisos generados por el backend para una boutique.
type NotificationRepository interface {
	ListByBoutique(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, sess domain.Session, id string) (*entity.Notification, error)
}
