package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accountsvc/user-service/internal/api/metrics"
	"github.com/accountsvc/user-service/internal/core/ports"
)

// AuthHandler exposes login and the password-reset flow.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges form credentials for a bearer access token.
//
// @Summary      Obtain an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Login email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  accessTokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /login/access-token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	token, _, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()

	return c.JSON(http.StatusOK, accessTokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// RecoverPassword issues a password-reset token for the given email and
// queues the notification. The response never reveals whether the email
// exists; failures surface the same generic 401 as a bad login.
//
// @Summary      Request a password reset
// @Tags         auth
// @Produce      json
// @Param        email  path  string  true  "Account email"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /password-recovery/{email} [post]
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	email := c.Param("email")

	if _, err := h.authService.RequestPasswordReset(c.Request().Context(), email); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("password_reset").Inc()

	return c.JSON(http.StatusOK, messageResponse{Msg: "password recovery email sent"})
}

// ResetPassword consumes a reset token and stores the new password.
//
// @Summary      Reset a password with a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  resetPasswordRequest  true  "Reset token and new password"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /reset-password/ [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("completed").Inc()
	return c.JSON(http.StatusOK, messageResponse{Msg: "password updated successfully"})
}
