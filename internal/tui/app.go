package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/fardannozami/oceanguard/internal/app/usecase"
	"github.com/fardannozami/oceanguard/internal/domain"
)

// Services bundles the use cases the screens call into.
type Services struct {
	Register *usecase.RegisterUserUsecase
	Login    *usecase.LoginUsecase
	Submit   *usecase.SubmitReportUsecase
	List     *usecase.ListReportsUsecase
	Get      *usecase.GetReportUsecase
	Update   *usecase.UpdateReportUsecase
	Delete   *usecase.DeleteReportUsecase
}

func NewServices(users domain.UserRepository, reports domain.ReportRepository) Services {
	return Services{
		Register: usecase.NewRegisterUserUsecase(users),
		Login:    usecase.NewLoginUsecase(users),
		Submit:   usecase.NewSubmitReportUsecase(reports),
		List:     usecase.NewListReportsUsecase(reports),
		Get:      usecase.NewGetReportUsecase(reports),
		Update:   usecase.NewUpdateReportUsecase(reports),
		Delete:   usecase.NewDeleteReportUsecase(reports),
	}
}

type screen int

const (
	screenSplash screen = iota
	screenLogin
	screenSignup
	screenHome
	screenReportForm
	screenRecords
	screenView
	screenEdit
	screenAbout
)

// App is the root Bubble Tea model. Each screen fully replaces the previous
// one; the only state that outlives a screen is the logged-in user.
type App struct {
	ctx    context.Context
	svc    Services
	log    *zap.Logger
	styles Styles

	screen  screen
	session *domain.User
	dialog  *dialog
	width   int
	height  int

	loginForm  form
	signupForm form
	reportForm form
	editForm   form
	editID     int64

	homeCursor int
	records    table.Model
	reports    []*domain.Report
	viewing    *domain.Report
}

func NewApp(ctx context.Context, svc Services, logger *zap.Logger) *App {
	styles := DefaultStyles()
	return &App{
		ctx:     ctx,
		svc:     svc,
		log:     logger,
		styles:  styles,
		screen:  screenSplash,
		records: newRecordsTable(styles),
	}
}

// Warn opens a warning dialog on top of whatever screen is showing. Used at
// startup to surface a failed storage migration.
func (a *App) Warn(title, message string) {
	a.warn(title, message)
}

// Session returns the logged-in user, or nil.
func (a *App) Session() *domain.User {
	return a.session
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if h := msg.Height - 10; h > 3 {
			a.records.SetHeight(h)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.dialog != nil {
			return a, a.updateDialog(msg)
		}

		switch a.screen {
		case screenSplash:
			return a, a.updateSplash(msg)
		case screenLogin:
			return a, a.updateLogin(msg)
		case screenSignup:
			return a, a.updateSignup(msg)
		case screenHome:
			return a, a.updateHome(msg)
		case screenReportForm:
			return a, a.updateReportForm(msg)
		case screenRecords:
			return a, a.updateRecords(msg)
		case screenView:
			return a, a.updateView(msg)
		case screenEdit:
			return a, a.updateEdit(msg)
		case screenAbout:
			return a, a.updateAbout(msg)
		}
	}

	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenSplash:
		body = a.viewSplash()
	case screenLogin:
		body = a.viewLogin()
	case screenSignup:
		body = a.viewSignup()
	case screenHome:
		body = a.viewHome()
	case screenReportForm:
		body = a.viewReportForm()
	case screenRecords:
		body = a.viewRecords()
	case screenView:
		body = a.viewRecord()
	case screenEdit:
		body = a.viewEdit()
	case screenAbout:
		body = a.viewAbout()
	}

	if a.dialog != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, a.viewDialog())
	}
	return a.styles.Content.Render(body)
}

func (a *App) header(title string) string {
	return a.styles.Title.Render(title) + "\n\n"
}

func (a *App) help(keys ...string) string {
	return a.styles.Help.Render(strings.Join(keys, " • "))
}
