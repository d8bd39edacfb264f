package services

import (
	"context"
	"errors"
	"strings"

	"autobazaar/dto"
	apperrors "autobazaar/errors"
	"autobazaar/models"
	"autobazaar/repositories"
	"autobazaar/services/logger"
	"autobazaar/validator"
)

var errUserNotFound = apperrors.NotFound(apperrors.ErrCodeUserNotFound, "User not found")

// storageError: mọi lỗi đọc/ghi database đều trả về BadRequest
func storageError(message string, err error) error {
	return apperrors.BadRequest(apperrors.ErrCodeDBError, message, err)
}

type UserService struct {
	users   repositories.UserRepository
	hasher  PasswordHasher
	tokens  TokenIssuer
	google  GoogleVerifier
	revoker TokenRevoker
	logger  logger.Logger
}

type UserServiceOptions struct {
	Users   repositories.UserRepository
	Hasher  PasswordHasher
	Tokens  TokenIssuer
	Google  GoogleVerifier
	Revoker TokenRevoker
	Logger  logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &UserService{
		users:   opts.Users,
		hasher:  opts.Hasher,
		tokens:  opts.Tokens,
		google:  opts.Google,
		revoker: opts.Revoker,
		logger:  opts.Logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register tạo user mới và trả về profile token.
// Với isFromGoogle, mật khẩu được bỏ qua nhưng ID token phải hợp lệ và khớp email.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	email := normalizeEmail(req.Email)
	user := &models.User{
		Name:  req.Name,
		Email: email,
		Role:  models.RoleUser,
	}

	if req.IsFromGoogle {
		identity, err := s.verifyGoogle(ctx, req.TokenID)
		if err != nil {
			return "", err
		}
		if normalizeEmail(identity.Email) != email {
			return "", apperrors.Unauthorized(apperrors.ErrCodeGoogleToken, "Google account does not match email", nil)
		}
	} else {
		if req.Password == nil || *req.Password == "" {
			return "", apperrors.BadRequest(apperrors.ErrCodeRequiredField, "Password is required", nil)
		}
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return "", apperrors.Internal("Failed to hash password", err)
		}
		user.Password = &hashed
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", apperrors.Conflict(apperrors.ErrCodeUserExists, "Email already registered", nil)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", storageError("Failed to check email", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return "", apperrors.Conflict(apperrors.ErrCodeUserExists, "Email already registered", err)
		}
		return "", storageError("Failed to create user", err)
	}

	s.logger.Info("user %d registered (google=%t)", user.ID, req.IsFromGoogle)
	return s.GetProfile(user)
}

// Login trả về ok=false khi email không tồn tại hoặc sai mật khẩu
func (s *UserService) Login(ctx context.Context, email, password string) (string, bool, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repositories.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageError("Failed to load user", err)
	}

	if user.Password == nil || !s.hasher.Compare(*user.Password, password) {
		return "", false, nil
	}
	return s.issueForLogin(user)
}

// LoginWithGoogle đăng nhập bằng ID token Google đã xác minh, không kiểm tra mật khẩu
func (s *UserService) LoginWithGoogle(ctx context.Context, idToken string) (string, bool, error) {
	identity, err := s.verifyGoogle(ctx, idToken)
	if err != nil {
		return "", false, err
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(identity.Email))
	if errors.Is(err, repositories.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageError("Failed to load user", err)
	}
	return s.issueForLogin(user)
}

func (s *UserService) issueForLogin(user *models.User) (string, bool, error) {
	if user.IsBanned {
		return "", false, apperrors.Forbidden(apperrors.ErrCodeUserBanned, "User is banned")
	}
	token, err := s.GetProfile(user)
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *UserService) verifyGoogle(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if idToken == "" {
		return nil, apperrors.BadRequest(apperrors.ErrCodeRequiredField, "tokenId is required", nil)
	}
	if s.google == nil {
		return nil, apperrors.Unauthorized(apperrors.ErrCodeGoogleToken, "Google login is not configured", nil)
	}
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, apperrors.Unauthorized(apperrors.ErrCodeGoogleToken, "Invalid Google token", err)
	}
	if !identity.EmailVerified {
		return nil, apperrors.BadRequest(apperrors.ErrCodeGoogleToken, "Email has not been verified", nil)
	}
	return identity, nil
}

// GetProfile ký hồ sơ user (không có mật khẩu) thành token
func (s *UserService) GetProfile(user *models.User) (string, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", apperrors.Internal("Failed to issue token", err)
	}
	return token, nil
}

func (s *UserService) FindOne(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, errUserNotFound
	}
	if err != nil {
		return nil, storageError("Failed to load user", err)
	}
	return user, nil
}

func (s *UserService) GetUserInfo(ctx context.Context, id uint) (*dto.UserInfoResponse, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UserInfoResponse{
		Name:    user.Name,
		Address: user.Address,
		Phone:   user.Phone,
	}, nil
}

func (s *UserService) IsRegisteredByGoogle(ctx context.Context, id uint) (bool, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return false, err
	}
	return user.RegisteredByGoogle(), nil
}

// Update áp dụng các trường được gửi lên và trả về token mới.
// Đổi mật khẩu trên tài khoản có mật khẩu bắt buộc oldPassword đúng.
func (s *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (string, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return "", err
	}

	if req.OldPassword != nil {
		if user.Password == nil || !s.hasher.Compare(*user.Password, *req.OldPassword) {
			return "", apperrors.BadRequest(apperrors.ErrCodeInvalidPassword, "Old password is incorrect", nil)
		}
	}

	if req.Password != nil {
		if *req.Password == "" {
			return "", apperrors.BadRequest(apperrors.ErrCodeValidation, "Password must not be empty", nil)
		}
		if user.Password != nil && req.OldPassword == nil {
			return "", apperrors.BadRequest(apperrors.ErrCodeRequiredField, "oldPassword is required to change password", nil)
		}
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return "", apperrors.Internal("Failed to hash password", err)
		}
		user.Password = &hashed
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}

	if err := s.users.Save(ctx, user); err != nil {
		return "", storageError("Failed to update user", err)
	}
	return s.GetProfile(user)
}

func (s *UserService) UpdateBannedStatus(ctx context.Context, id uint, isBanned *bool) (*models.User, error) {
	if isBanned == nil {
		return nil, apperrors.BadRequest(apperrors.ErrCodeInvalidBanStatus, "isBanned must be a boolean", nil)
	}
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsBanned = *isBanned
	if err := s.users.Save(ctx, user); err != nil {
		return nil, storageError("Failed to update user", err)
	}
	s.logger.Info("user %d banned status set to %t", id, *isBanned)
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, role string) (*models.User, error) {
	if err := validator.ValidateRole(role); err != nil {
		return nil, err
	}
	parsed := models.Role(role)
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = parsed
	if err := s.users.Save(ctx, user); err != nil {
		return nil, storageError("Failed to update user", err)
	}
	s.logger.Info("user %d role set to %s", id, parsed)
	return user, nil
}

// Remove xóa user theo id, không kiểm tra tồn tại và không xóa dữ liệu liên quan
func (s *UserService) Remove(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return storageError("Failed to delete user", err)
	}
	return nil
}

// Logout thu hồi token đang dùng cho tới khi hết hạn
func (s *UserService) Logout(ctx context.Context, claims *Claims) error {
	if s.revoker == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims); err != nil {
		return apperrors.Internal("Failed to revoke token", err)
	}
	return nil
}
