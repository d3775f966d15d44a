package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/app/usecase"
	"github.com/fardannozami/oceanguard/internal/domain"
)

func (a *App) showSplash() {
	a.screen = screenSplash
}

func (a *App) updateSplash(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", " ":
		return a.showLogin()
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (a *App) viewSplash() string {
	var sb strings.Builder
	sb.WriteString(a.styles.Title.Render("~ OCEANGUARD ~"))
	sb.WriteString("\n\n")
	sb.WriteString(a.styles.Subtitle.Render("Welcome to Oceanguard"))
	sb.WriteString("\n")
	sb.WriteString(a.styles.Tagline.Render("Marine Waste Reporting System"))
	sb.WriteString("\n")
	sb.WriteString(a.help("enter: start", "q: quit"))
	return sb.String()
}

func (a *App) showLogin() tea.Cmd {
	a.screen = screenLogin
	a.loginForm = newForm(
		field{label: "Username:", placeholder: "username", limit: 64},
		field{label: "Password:", placeholder: "password", password: true, limit: 128},
	)
	return a.loginForm.setFocus(0)
}

func (a *App) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.submitLogin()
		return nil
	case "ctrl+n":
		return a.showSignup()
	case "esc":
		a.showSplash()
		return nil
	}
	return a.loginForm.update(msg)
}

func (a *App) submitLogin() {
	username := strings.TrimSpace(a.loginForm.value(0))
	user, err := a.svc.Login.Execute(a.ctx, username, a.loginForm.value(1))
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		a.warn("Validation", "Please fill in all fields.")
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.log.Info("login failed", zap.String("username", username))
		a.fail("Login Failed", "Invalid username or password.")
	case err != nil:
		a.log.Error("login", zap.Error(err))
		a.fail("Database Error", err.Error())
	default:
		a.session = user
		a.log.Info("login", zap.Int64("user_id", user.ID))
		a.showHome()
		a.info("Success", "Welcome, "+user.Username+"!")
	}
}

func (a *App) viewLogin() string {
	return a.header("LOGIN") +
		a.loginForm.view(a.styles) +
		"Don't have an account? Press ctrl+n to sign up.\n" +
		a.help("tab: next field", "enter: login", "ctrl+n: sign up", "esc: back")
}

func (a *App) showSignup() tea.Cmd {
	a.screen = screenSignup
	a.signupForm = newForm(
		field{label: "Username:", placeholder: "username", limit: 64},
		field{label: "Password:", placeholder: "at least 6 characters", password: true, limit: 128},
		field{label: "Confirm Password:", placeholder: "repeat password", password: true, limit: 128},
	)
	return a.signupForm.setFocus(0)
}

func (a *App) updateSignup(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return a.submitSignup()
	case "esc":
		return a.showLogin()
	}
	return a.signupForm.update(msg)
}

func (a *App) submitSignup() tea.Cmd {
	id, err := a.svc.Register.Execute(a.ctx, a.signupForm.value(0), a.signupForm.value(1), a.signupForm.value(2))
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		a.warn("Validation", "Please fill in all fields.")
	case errors.Is(err, usecase.ErrPasswordTooShort):
		a.warn("Validation", "Password must be at least 6 characters long.")
	case errors.Is(err, usecase.ErrPasswordMismatch):
		a.fail("Error", "Passwords do not match.")
	case errors.Is(err, domain.ErrUsernameTaken):
		a.fail("Error", "Username already exists.")
	case err != nil:
		a.log.Error("register", zap.Error(err))
		a.fail("Error", err.Error())
	default:
		a.log.Info("user registered", zap.Int64("user_id", id))
		cmd := a.showLogin()
		a.info("Success", "Account created! You can now login.")
		return cmd
	}
	return nil
}

func (a *App) viewSignup() string {
	return a.header("SIGN UP") +
		a.signupForm.view(a.styles) +
		a.help("tab: next field", "enter: sign up", "esc: back")
}
