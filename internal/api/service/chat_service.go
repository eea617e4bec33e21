package service

import (
	"errors"
	"ustadgee"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrChatNotFound = errors.New("chat not found or you are not a participant")

// ChatService owns the durable side of chat: the per-pair conversation
// list and last-message bookkeeping. Live relay of individual messages
// happens over the WebSocket router; this path is the source of truth.
type ChatService struct {
	chatRepo *repo.ChatRepository
	userRepo *repo.UserRepository
	logger   zerolog.Logger
}

func NewChatService() *ChatService {
	return &ChatService{
		chatRepo: repo.NewChatRepository(),
		userRepo: repo.NewUserRepository(),
		logger:   ustadgee.Logger,
	}
}

func (slf *ChatService) GetChatList(userID uint) ([]response.ChatResponseDTO, error) {
	chats, err := slf.chatRepo.FindForUser(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error fetching chat list")
		return nil, err
	}
	if len(chats) == 0 {
		return []response.ChatResponseDTO{}, nil
	}

	otherIDs := make([]uint, 0, len(chats))
	for _, chat := range chats {
		if chat.User1 == userID {
			otherIDs = append(otherIDs, chat.User2)
		} else {
			otherIDs = append(otherIDs, chat.User1)
		}
	}
	others, err := slf.userRepo.FindByIDs(otherIDs)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error fetching chat counterparts")
		return nil, err
	}
	byID := make(map[uint]models.User, len(others))
	for _, user := range others {
		byID[user.ID] = user
	}

	result := make([]response.ChatResponseDTO, 0, len(chats))
	for _, chat := range chats {
		otherID := chat.User1
		if chat.User1 == userID {
			otherID = chat.User2
		}
		dto := response.ChatResponseDTO{
			ID:        chat.ID,
			LastMsg:   chat.LastMsg,
			Type:      chat.Type,
			TimeStamp: chat.TimeStamp,
		}
		if other, ok := byID[otherID]; ok {
			dto.OtherUser = &response.ChatUserDTO{
				ID:           other.ID,
				FullName:     other.FullName,
				PhoneNumber:  other.PhoneNumber,
				ProfileImage: other.ProfileImage,
			}
		}
		result = append(result, dto)
	}
	return result, nil
}

// StartChat creates the conversation row for a pair, or refreshes the
// existing one (also clearing a previous soft delete).
func (slf *ChatService) StartChat(userID, recipientID uint, message string) (uint, error) {
	existing, err := slf.chatRepo.FindByParticipants(userID, recipientID)
	if err == nil {
		if err = slf.chatRepo.UpdateLastMessage(existing.ID, message, "text"); err != nil {
			slf.logger.Error().Err(err).Uint("chatId", existing.ID).Msg("Error updating chat")
			return 0, err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		slf.logger.Error().Err(err).Msg("Error looking up chat")
		return 0, err
	}

	chat := models.Chat{
		User1:   userID,
		User2:   recipientID,
		LastMsg: message,
		Type:    "text",
	}
	if err = slf.chatRepo.Create(&chat); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating chat")
		return 0, err
	}
	return chat.ID, nil
}

func (slf *ChatService) UpdateChatMessage(chatID, userID uint, message, msgType string) error {
	chat, err := slf.chatRepo.FindByID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChatNotFound
		}
		return err
	}
	if !chat.HasParticipant(userID) {
		return ErrChatNotFound
	}
	if msgType == "" {
		msgType = "text"
	}
	return slf.chatRepo.UpdateLastMessage(chatID, message, msgType)
}

// DeleteChat soft-deletes for the first participant to leave; when the
// second one deletes too, the row is removed for good.
func (slf *ChatService) DeleteChat(chatID, userID uint) error {
	chat, err := slf.chatRepo.FindByID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChatNotFound
		}
		return err
	}
	if !chat.HasParticipant(userID) {
		return ErrChatNotFound
	}

	if chat.DeletedBy == nil {
		return slf.chatRepo.MarkDeletedBy(chatID, userID)
	}
	return slf.chatRepo.Delete(chatID)
}
