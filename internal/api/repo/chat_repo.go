package repo

import (
	"ustadgee"
	"ustadgee/internal/api/models"

	"gorm.io/gorm"
)

type ChatRepository struct {
	Db *gorm.DB
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{Db: ustadgee.DB}
}

func (slf *ChatRepository) FindByID(id uint) (models.Chat, error) {
	var chat models.Chat
	err := slf.Db.First(&chat, id).Error
	return chat, err
}

// FindByParticipants looks the pair up in both orders.
func (slf *ChatRepository) FindByParticipants(a, b uint) (models.Chat, error) {
	var chat models.Chat
	err := slf.Db.Where("(user1 = ? AND user2 = ?) OR (user1 = ? AND user2 = ?)", a, b, b, a).
		First(&chat).Error
	return chat, err
}

// FindForUser returns the chat list for a user, most recent first,
// excluding chats the user soft-deleted.
func (slf *ChatRepository) FindForUser(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := slf.Db.Where("(user1 = ? OR user2 = ?) AND (deleted_by IS NULL OR deleted_by <> ?)", userID, userID, userID).
		Order("time_stamp DESC").Find(&chats).Error
	return chats, err
}

func (slf *ChatRepository) Create(chat *models.Chat) error {
	return slf.Db.Create(chat).Error
}

func (slf *ChatRepository) UpdateLastMessage(id uint, message, msgType string) error {
	return slf.Db.Model(&models.Chat{}).Where("id = ?", id).Updates(map[string]any{
		"last_msg":   message,
		"type":       msgType,
		"deleted_by": nil,
		"time_stamp": gorm.Expr("NOW()"),
	}).Error
}

func (slf *ChatRepository) MarkDeletedBy(id uint, userID uint) error {
	return slf.Db.Model(&models.Chat{}).Where("id = ?", id).
		Update("deleted_by", userID).Error
}

func (slf *ChatRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Chat{}, id).Error
}
