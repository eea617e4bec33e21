package response

type UserResponseDTO struct {
	ID                     uint   `json:"id"`
	PhoneNumber            string `json:"phoneNumber"`
	FullName               string `json:"fullName"`
	ProfileImage           string `json:"profileImage"`
	UserTypeID             int    `json:"userTypeId"`
	ReferralCode           string `json:"referralCode,omitempty"`
	Latitude               string `json:"latitude"`
	Longitude              string `json:"longitude"`
	NotificationPermission string `json:"notificationPermission"`
}

type AuthResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}
