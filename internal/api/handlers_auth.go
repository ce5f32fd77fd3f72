package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/arodena/focusfeed/internal/cache"
	"github.com/arodena/focusfeed/internal/models"
	"github.com/arodena/focusfeed/internal/services"
)

const passwordResetTokenTTL = 30 * time.Minute

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email or password")
	}
	displayName, err := services.ValidateDisplayName(input.DisplayName)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid display name")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}

	emailTaken, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if emailTaken {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}
	nameTaken, err := handler.authService.DisplayNameExists(displayName)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if nameTaken {
		return apiError(c, fiber.StatusConflict, "display name already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Email:            email,
		DisplayName:      displayName,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: recoveryHash,
		Role:             models.RoleUser,
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "account already exists")
	}
	handler.invalidateFor(cache.MutationUserWrite, user.ID)

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":          presentUser(&user),
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, handler.now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, handler.now())
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		handler.loginLimiter.recordFailure(limiterKey, handler.now())
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if user.MustChangePassword {
		token, err := handler.buildPasswordResetToken(user.ID, user.PasswordHash, passwordResetTokenTTL)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":       "password change required",
			"reset_token": token,
		})
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"user": presentUser(&user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return apiOK(c)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": presentUser(user)})
}

// ForgotPassword trades a valid recovery code for a short-lived reset
// token. The response never reveals whether any account matched beyond
// the generic error, and failed attempts are rate limited.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, handler.now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := normalizeRecoveryCode(input.RecoveryCode)
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		handler.loginLimiter.recordFailure(limiterKey, handler.now())
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	user, err := handler.authService.FindUserByRecoveryCode(code)
	if err != nil {
		handler.loginLimiter.recordFailure(limiterKey, handler.now())
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}
	handler.loginLimiter.reset(limiterKey)

	token, err := handler.buildPasswordResetToken(user.ID, user.PasswordHash, passwordResetTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
	}
	return c.JSON(fiber.Map{"reset_token": token})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	password := strings.TrimSpace(input.Password)
	if password == "" || password != strings.TrimSpace(input.ConfirmPassword) {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}

	user, err := handler.resolveUserByResetToken(strings.TrimSpace(input.Token))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid reset token")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	if err := handler.authService.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	if err := handler.setAuthCookie(c, user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return apiOK(c)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}

	newPassword := strings.TrimSpace(input.NewPassword)
	if newPassword == "" || newPassword != strings.TrimSpace(input.ConfirmPassword) {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(newPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	if err := handler.authService.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
	return apiOK(c)
}

func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}
	user.RecoveryCodeHash = recoveryHash
	if err := handler.authService.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save recovery code")
	}
	return c.JSON(fiber.Map{"recovery_code": recoveryCode})
}
