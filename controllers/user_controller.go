package controllers

import (
	"autobazaar/dto"
	"autobazaar/response"
	"autobazaar/services"

	"github.com/gin-gonic/gin"
)

const loginFailedMessage = "user not found!"

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) UserController {
	return UserController{Users: users}
}

// Login godoc
// @Summary      Đăng nhập bằng email và mật khẩu
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "credentials"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/login [post]
func (u UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, loginFailedMessage)
		return
	}

	token, ok, err := u.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		response.BadRequest(c, loginFailedMessage)
		return
	}
	response.Success(c, dto.TokenResponse{Token: token})
}

// LoginGoogle godoc
// @Summary      Đăng nhập bằng Google ID token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GoogleLoginRequest  true  "google token"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /users/login-google [post]
func (u UserController) LoginGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "tokenId is required")
		return
	}

	token, ok, err := u.Users.LoginWithGoogle(c.Request.Context(), req.TokenID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		response.BadRequest(c, loginFailedMessage)
		return
	}
	response.Success(c, dto.TokenResponse{Token: token})
}

// SignUp godoc
// @Summary      Đăng ký tài khoản
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "new user"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/sign-up [post]
func (u UserController) SignUp(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid sign-up data")
		return
	}

	token, err := u.Users.Register(c.Request.Context(), req)
	if err != nil {
		// mọi lỗi đăng ký (kể cả email trùng) đều trả 400
		if msg := messageOf(err); msg != "" {
			response.BadRequest(c, msg)
			return
		}
		response.BadRequest(c, "Failed to sign up")
		return
	}
	response.Created(c, "Success", dto.TokenResponse{Token: token})
}

func (u UserController) Logout(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := u.Users.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

func (u UserController) GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := u.Users.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(*user))
}

func (u UserController) GetUserInfo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	info, err := u.Users.GetUserInfo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, info)
}

func (u UserController) IsRegisteredByGoogle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	google, err := u.Users.IsRegisteredByGoogle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.GoogleFlagResponse{Google: google})
}

// UpdateUser cập nhật một phần profile và trả về token mới
func (u UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid user data")
		return
	}

	token, err := u.Users.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.TokenResponse{Token: token})
}

func (u UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := u.Users.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
