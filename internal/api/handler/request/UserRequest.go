package request

type RegisterDTO struct {
	PhoneNumber            string `json:"phoneNumber" validate:"required,min=7,max=20"`
	FullName               string `json:"fullName" validate:"required"`
	Password               string `json:"password" validate:"required,min=6"`
	UserTypeID             int    `json:"userTypeId" validate:"required,min=1,max=3"`
	ReferralCode           string `json:"referralCode"`
	ProfileImage           string `json:"profileImage"`
	NotificationPermission string `json:"notificationPermission"`
	DeviceToken            string `json:"deviceToken"`
	Latitude               string `json:"latitude"`
	Longitude              string `json:"longitude"`
	CnicNum                string `json:"cnicNum"`
}

type LoginDTO struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type CheckUserExistsDTO struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type UpdateNotificationPermissionDTO struct {
	Status string `json:"status" validate:"required,oneof=granted denied default"`
}
