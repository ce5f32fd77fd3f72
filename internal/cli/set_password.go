package cli

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/arodena/focusfeed/internal/services"
)

// RunSetPasswordCommand prompts for a new password on the terminal
// (echo disabled) and sets it on the account immediately, without a
// forced change on next login.
func RunSetPasswordCommand(dbPath string, email string) error {
	database, user, err := loadUserByEmail(dbPath, email)
	if err != nil {
		return err
	}

	fmt.Printf("New password for %s: ", user.Email)
	password, err := readPasswordNoEcho(os.Stdin)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	fmt.Println()

	fmt.Print("Repeat password: ")
	confirmation, err := readPasswordNoEcho(os.Stdin)
	if err != nil {
		return fmt.Errorf("read password confirmation: %w", err)
	}
	fmt.Println()

	if string(password) != string(confirmation) {
		return errors.New("passwords do not match")
	}
	if err := services.ValidatePasswordStrength(string(password)); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	if err := database.Save(user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Printf("Password updated for %s\n", user.Email)
	return nil
}
