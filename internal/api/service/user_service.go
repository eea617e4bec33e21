package service

import (
	"crypto/rand"
	"errors"
	"math/big"
	"ustadgee"
	"ustadgee/internal/api/handler/mapper"
	"ustadgee/internal/api/handler/request"
	"ustadgee/internal/api/handler/response"
	"ustadgee/internal/api/models"
	"ustadgee/internal/api/repo"
	"ustadgee/pkg"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo   *repo.UserRepository
	config     ustadgee.AppConfig
	logger     zerolog.Logger
	userMapper mapper.UserMapper
}

func NewUserService() *UserService {
	return &UserService{
		userRepo: repo.NewUserRepository(),
		config:   ustadgee.GetConfig(),
		logger:   ustadgee.Logger,
	}
}

func (slf *UserService) Register(registerDTO request.RegisterDTO) (*response.AuthResponseDTO, error) {
	exists, err := slf.userRepo.ExistsByPhoneNumber(registerDTO.PhoneNumber)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error checking if user exists")
		return nil, err
	}
	if exists {
		return nil, errors.New("user with this phone number already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerDTO.Password), bcrypt.DefaultCost)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	// Resolve the referrer before creating the account; a bad code is
	// simply ignored.
	var referredBy *uint
	if registerDTO.ReferralCode != "" {
		referrer, err := slf.userRepo.FindByReferralCode(registerDTO.ReferralCode)
		if err == nil {
			referredBy = &referrer.ID
		}
	}

	user := models.User{
		PhoneNumber:            registerDTO.PhoneNumber,
		FullName:               registerDTO.FullName,
		Password:               string(hashedPassword),
		UserTypeID:             registerDTO.UserTypeID,
		ProfileImage:           registerDTO.ProfileImage,
		ReferredBy:             referredBy,
		NotificationPermission: registerDTO.NotificationPermission,
		DeviceToken:            registerDTO.DeviceToken,
		Latitude:               registerDTO.Latitude,
		Longitude:              registerDTO.Longitude,
		CnicNum:                registerDTO.CnicNum,
		Active:                 1,
	}
	if user.ProfileImage == "" {
		user.ProfileImage = "default.png"
	}
	if user.NotificationPermission == "" {
		user.NotificationPermission = "default"
	}
	if user.IsServiceProvider() {
		user.ReferralCode = generateReferralCode(8)
	}

	if err = slf.userRepo.Create(&user); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	token, err := pkg.GenerateToken(user.ID, user.PhoneNumber, user.UserTypeID, slf.config.JWTConfig.Secret, slf.config.JWTConfig.ExpirationDays)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating token")
		return nil, err
	}

	user.Token = token
	if err = slf.userRepo.Update(&user); err != nil {
		slf.logger.Error().Err(err).Msg("Error storing user token")
		return nil, err
	}

	slf.logger.Info().Uint("userId", user.ID).Msg("User registered successfully")
	return &response.AuthResponseDTO{
		Token: token,
		User:  slf.userMapper.EntityToUserResponse(user),
	}, nil
}

func (slf *UserService) Login(loginDTO request.LoginDTO) (*response.AuthResponseDTO, error) {
	user, err := slf.userRepo.FindByPhoneNumber(loginDTO.PhoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid phone number or password")
		}
		slf.logger.Error().Err(err).Msg("Error finding user by phone number")
		return nil, err
	}

	if user.Active != 1 {
		return nil, errors.New("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginDTO.Password)); err != nil {
		return nil, errors.New("invalid phone number or password")
	}

	token, err := pkg.GenerateToken(user.ID, user.PhoneNumber, user.UserTypeID, slf.config.JWTConfig.Secret, slf.config.JWTConfig.ExpirationDays)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating token")
		return nil, err
	}

	user.Token = token
	if err = slf.userRepo.Update(&user); err != nil {
		slf.logger.Error().Err(err).Msg("Error storing user token")
		return nil, err
	}

	slf.logger.Info().Uint("userId", user.ID).Msg("User logged in successfully")
	return &response.AuthResponseDTO{
		Token: token,
		User:  slf.userMapper.EntityToUserResponse(user),
	}, nil
}

// SetNotificationPermission is the HTTP fallback for clients without an
// open WebSocket; the live path goes through the frame router.
func (slf *UserService) SetNotificationPermission(userID uint, status string) error {
	return slf.userRepo.SetNotificationPermission(userID, status)
}

func (slf *UserService) CheckUserExists(phoneNumber string) (bool, error) {
	return slf.userRepo.ExistsByPhoneNumber(phoneNumber)
}

func (slf *UserService) GetByID(id uint) (response.UserResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.UserResponseDTO{}, errors.New("user not found")
		}
		slf.logger.Error().Err(err).Uint("userId", id).Msg("Error finding user by ID")
		return response.UserResponseDTO{}, err
	}

	return slf.userMapper.EntityToUserResponse(user), nil
}

const referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateReferralCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralAlphabet))))
		if err != nil {
			panic(err)
		}
		code[i] = referralAlphabet[n.Int64()]
	}
	return string(code)
}
