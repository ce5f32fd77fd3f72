package api

type registerInput struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type forgotPasswordInput struct {
	RecoveryCode string `json:"recovery_code"`
}

type resetPasswordInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type sessionLogInput struct {
	StartedAt       string `json:"started_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Task            string `json:"task"`
	Notes           string `json:"notes"`
}

type commentInput struct {
	Body string `json:"body"`
}

type profileSettingsInput struct {
	DisplayName           *string `json:"display_name"`
	RequireFollowApproval *bool   `json:"require_follow_approval"`
}
