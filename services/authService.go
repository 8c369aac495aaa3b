package services

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tablerunner-api/models"
	"tablerunner-api/utils"
)

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrPendingApproval   = errors.New("Your account is awaiting admin approval")
	ErrRejected          = errors.New("Your registration was rejected. Contact the administrator")
	ErrEmailTaken        = errors.New("An account with this email already exists")
)

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Role    string      `json:"role"`
	User    models.User `json:"user"`
}

type RegisterInput struct {
	Email           string
	Password        string
	FullName        string
	ContactNo       string
	HotelName       string
	HotelLocation   string
	ProfilePhotoURL string
}

type AuthService interface {
	Login(email, password string) (*AuthResponse, error)
	Register(input RegisterInput) (*models.User, error)
}

type authService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) AuthService {
	return &authService{db: db}
}

func (s *authService) Login(email, password string) (*AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}

	if user.Role == "owner" {
		switch user.ApprovalStatus {
		case "pending":
			return nil, ErrPendingApproval
		case "rejected":
			return nil, ErrRejected
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.New("Failed to generate token")
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		Role:    user.Role,
		User:    user,
	}, nil
}

func (s *authService) Register(input RegisterInput) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("Failed to hash password")
	}

	user := models.User{
		Email:          input.Email,
		Password:       string(hash),
		Role:           "owner",
		FullName:       utils.PtrString(input.FullName),
		ContactNo:      utils.PtrString(input.ContactNo),
		HotelName:      utils.PtrString(input.HotelName),
		HotelLocation:  utils.PtrString(input.HotelLocation),
		ApprovalStatus: "pending",
	}
	if input.ProfilePhotoURL != "" {
		user.ProfilePhotoURL = utils.PtrString(input.ProfilePhotoURL)
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	// best-effort admin alert, never blocks registration
	if adminPhone := os.Getenv("ADMIN_ALERT_PHONE"); adminPhone != "" {
		go func(u models.User) {
			msg := utils.FormatRegistrationMessage(u.Email, utils.GetStringValue(u.HotelName), utils.GetStringValue(u.HotelLocation))
			if err := utils.SendWhatsAppNotification(adminPhone, msg); err != nil {
				log.Printf("registration alert failed: %v", err)
			}
		}(user)
	}

	return &user, nil
}
