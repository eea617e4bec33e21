package mapper

import (
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/models"
)

type UserMapper struct{}

func (UserMapper) EntityToUserResponse(user models.User) response.UserResponseDTO {
	return response.UserResponseDTO{
		ID:                     user.ID,
		PhoneNumber:            user.PhoneNumber,
		FullName:               user.FullName,
		ProfileImage:           user.ProfileImage,
		UserTypeID:             user.UserTypeID,
		ReferralCode:           user.ReferralCode,
		Latitude:               user.Latitude,
		Longitude:              user.Longitude,
		NotificationPermission: user.NotificationPermission,
	}
}
