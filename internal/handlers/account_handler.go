package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-accounts/internal/avatar"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/dto"
	"github.com/BruksfildServices01/barber-accounts/internal/httperr"
	"github.com/BruksfildServices01/barber-accounts/internal/httpresp"
	"github.com/BruksfildServices01/barber-accounts/internal/middleware"
	ucAccount "github.com/BruksfildServices01/barber-accounts/internal/usecase/account"
	"github.com/BruksfildServices01/barber-accounts/internal/validation"
)

// ======================================================
// HANDLER
// ======================================================

type AccountHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	confirm  *ucAccount.ConfirmAccount
	getSelf  *ucAccount.GetSelf
	list     *ucAccount.ListAccounts
	update   *ucAccount.UpdateAccount
	remove   *ucAccount.DeleteAccount
	avatar   *ucAccount.UploadAvatar
}

func NewAccountHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	confirm *ucAccount.ConfirmAccount,
	getSelf *ucAccount.GetSelf,
	list *ucAccount.ListAccounts,
	update *ucAccount.UpdateAccount,
	remove *ucAccount.DeleteAccount,
) *AccountHandler {
	return &AccountHandler{
		register: register,
		login:    login,
		confirm:  confirm,
		getSelf:  getSelf,
		list:     list,
		update:   update,
		remove:   remove,
	}
}

// WithAvatarUpload enables UploadAvatar.
func (h *AccountHandler) WithAvatarUpload(uc *ucAccount.UploadAvatar) *AccountHandler {
	h.avatar = uc
	return h
}

func (h *AccountHandler) AvatarEnabled() bool {
	return h.avatar != nil
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"max=100"`
	Phone    string `json:"phone" binding:"max=20"`
	Type     string `json:"type" binding:"omitempty,accounttype"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ConfirmRequest struct {
	ConfirmationCode string `json:"confirmationCode" binding:"required"`
}

type UpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Password *string `json:"password" binding:"omitempty,pwd"`
}

type updateResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, validation.ToDetails(err))
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Type:     req.Type,
	})
	if err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	httpresp.Created(c, user)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, validation.ToDetails(err))
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// AUTHENTICATED
// ======================================================

func (h *AccountHandler) Confirm(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, validation.ToDetails(err))
		return
	}

	if err := h.confirm.Execute(c.Request.Context(), claims.ID, req.ConfirmationCode); err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	httpresp.Message(c, http.StatusOK, "Account verified")
}

func (h *AccountHandler) Profile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}

	httpresp.OK(c, h.getSelf.Execute(claims))
}

func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	if len(users) == 0 {
		httpresp.Message(c, http.StatusOK, "No users found")
		return
	}

	httpresp.OK(c, gin.H{"users": dto.NewAccountList(users)})
}

func (h *AccountHandler) Update(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, validation.ToDetails(err))
		return
	}

	user, err := h.update.Execute(c.Request.Context(), ucAccount.UpdateInput{
		AccountID: claims.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	httpresp.Created(c, updateResponse{Message: "User updated successfully", User: user})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), claims.ID); err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	httpresp.Message(c, http.StatusOK, "Your account has been deleted")
}

func (h *AccountHandler) UploadAvatar(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}

	// room for the multipart envelope around the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, avatar.MaxUploadBytes+64<<10)

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.Invalid(c, map[string]string{"avatar": "is required"})
		return
	}
	if fh.Size > avatar.MaxUploadBytes {
		httperr.Invalid(c, map[string]string{"avatar": "must be at most 5 MiB"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}
	defer f.Close()

	url, err := h.avatar.Execute(c.Request.Context(), claims.ID, f)
	if err != nil {
		httperr.Respond(c, err, domain.Errors)
		return
	}

	httpresp.OK(c, gin.H{"avatarUrl": url})
}
