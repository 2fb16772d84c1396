package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/config"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/pkg/response"
	"github.com/cortylix/site-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// bindingErrorMessage turns validator failures into the field-scoped
// messages the frontend shows inline under each input.
func bindingErrorMessage(err error, labels map[string]string) (string, bool) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "", false
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := labels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "url":
			msg = fmt.Sprintf("%s must be a valid URL", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; "), true
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)
}

// SignUp godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignUpInput true "Sign-up info"
// @Success 201 {object} response.TokenResponse "Session token and profile"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to create account"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input user.SignUpInput

	if err := c.ShouldBind(&input); err != nil {
		labels := map[string]string{
			"FullName": "full name",
			"Email":    "email",
			"Password": "password",
		}
		if msg, ok := bindingErrorMessage(err, labels); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	usr, token, err := h.svc.RegisterUser(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create account"})
		}
		return
	}

	setSessionCookie(c, token, int(application.SessionDuration.Seconds()))
	c.JSON(http.StatusCreated, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Email:    usr.Email,
		FullName: usr.FullName,
		IsAdmin:  usr.IsAdmin(),
	})
}

// SignIn godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignInInput true "Credentials"
// @Success 200 {object} response.TokenResponse "Session token and profile"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input user.SignInInput

	if err := c.ShouldBind(&input); err != nil {
		labels := map[string]string{
			"Email":    "email",
			"Password": "password",
		}
		if msg, ok := bindingErrorMessage(err, labels); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	usr, token, isAdmin, err := h.svc.LoginUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	setSessionCookie(c, token, int(application.SessionDuration.Seconds()))
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Email:    usr.Email,
		FullName: usr.FullName,
		IsAdmin:  isAdmin,
	})
}

// SignOut godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Signed out"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Signed out"})
}

// Status godoc
// @Summary Current session profile
// @Tags auth
// @Produce json
// @Success 200 {object} user.ProfileDTO
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	usr, err := h.svc.CurrentUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user.ToProfileDTO(usr))
}
