package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/components"
	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/views"
	"github.com/mcallisters/AI-powered-travel-planner/internal/wizard"
)

// App is the main TUI application model. It renders one wizard step at a
// time, drives the wizard controller on step transitions, and shows the
// generated plan when the pipeline finishes.
type App struct {
	ctx context.Context

	ctrl      *wizard.Controller
	outputDir string

	// Dimensions
	width  int
	height int

	// Views, one per wizard step
	locationView    *views.LocationView
	budgetView      *views.BudgetView
	preferencesView *views.PreferencesView
	resultView      *views.ResultView

	// Components
	header    *components.Header
	stepper   *components.Stepper
	statusBar *components.StatusBar
	spinner   spinner.Model

	// State
	keyMap        KeyMap
	theme         *styles.Theme
	showHelp      bool
	generating    bool
	pendingFields wizard.Fields
}

// AppConfig contains configuration options for creating a new App.
type AppConfig struct {
	Controller *wizard.Controller
	OutputDir  string
}

// NewApp creates a new TUI application with the given context and configuration.
func NewApp(ctx context.Context, config AppConfig) *App {
	theme := styles.DefaultTheme()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	app := &App{
		ctx:             ctx,
		ctrl:            config.Controller,
		outputDir:       config.OutputDir,
		width:           80,
		height:          24,
		keyMap:          DefaultKeyMap(),
		theme:           theme,
		spinner:         sp,
		locationView:    views.NewLocationView(theme),
		budgetView:      views.NewBudgetView(theme),
		preferencesView: views.NewPreferencesView(theme),
		resultView:      views.NewResultView(theme),
	}

	app.header = components.NewHeader("TRAVEL PLANNER")
	app.header.SetSubtitle("AI trip planning wizard")
	app.header.SetWidth(app.width)

	app.stepper = components.NewStepper([]string{"Location", "Budget", "Preferences"})

	app.statusBar = components.NewStatusBar(app.width)
	app.statusBar.SetMode(app.ctrl.State().Step.String())
	app.statusBar.SetMessage("Tell us where you want to go")
	app.statusBar.SetKeyHints("enter next | esc back | f1 help | ctrl+c quit")

	return app
}

// Init focuses the first input of the first step.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.locationView.Focus(), textinput.Blink)
}

// Update handles messages and routes them to the appropriate handler.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if !a.generating {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case PlanReadyMsg:
		a.generating = false
		if err := a.ctrl.Complete(a.pendingFields, msg.Result); err != nil {
			a.statusBar.SetError(err.Error())
			return a, a.preferencesView.Focus()
		}
		a.resultView.SetResult(msg.Result)
		a.statusBar.SetMode("Plan")
		a.statusBar.SetMessage("Plan ready for " + msg.Result.Params.Destination)
		a.statusBar.SetKeyHints("ctrl+s save | ctrl+n new trip | ctrl+c quit")
		return a, nil

	case PlanFailedMsg:
		a.generating = false
		a.statusBar.SetError(msg.Err.Error())
		return a, a.preferencesView.Focus()

	case PlanSavedMsg:
		a.resultView.SetSavedTo(msg.Path)
		a.statusBar.SetMessage("Saved to " + msg.Path)
		return a, nil

	case SaveFailedMsg:
		a.statusBar.SetError(msg.Err.Error())
		return a, nil

	default:
		return a, a.routeToActiveView(msg)
	}
}

// View renders the current state of the application.
func (a *App) View() string {
	headerContent := a.header.Render()
	a.stepper.SetActive(int(a.ctrl.State().Step) - 1)
	stepperContent := a.stepper.Render()

	var viewContent string
	switch {
	case a.showHelp:
		viewContent = a.renderHelp()
	case a.generating:
		viewContent = a.renderGenerating()
	default:
		viewContent = a.activeViewContent()
	}

	body := lipgloss.NewStyle().
		Height(a.bodyHeight()).
		Padding(1, 2).
		Render(viewContent)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerContent,
		stepperContent,
		body,
		a.statusBar.Render(),
	)
}

func (a *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height

	a.header.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)

	bodyHeight := a.bodyHeight()
	a.locationView.SetSize(a.width-4, bodyHeight)
	a.budgetView.SetSize(a.width-4, bodyHeight)
	a.preferencesView.SetSize(a.width-4, bodyHeight)
	a.resultView.SetSize(a.width-4, bodyHeight)

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keyMap.Quit) {
		return a, tea.Quit
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if key.Matches(msg, a.keyMap.Help) {
		a.showHelp = true
		return a, nil
	}

	// While the pipeline runs, only quit is available.
	if a.generating {
		return a, nil
	}

	if a.ctrl.State().Step == wizard.StepSubmitted {
		return a.handleResultKey(msg)
	}

	switch {
	case key.Matches(msg, a.keyMap.Next):
		return a.handleNext()
	case key.Matches(msg, a.keyMap.Back):
		return a.handleBack()
	}

	return a, a.routeToActiveView(msg)
}

// handleNext advances the wizard, or starts generation from the last step.
func (a *App) handleNext() (tea.Model, tea.Cmd) {
	fields := a.collectFields()

	if a.ctrl.State().Step == wizard.StepPreferences {
		params, err := a.ctrl.Prepare(fields)
		if err != nil {
			a.statusBar.SetError(err.Error())
			return a, nil
		}
		a.pendingFields = fields
		a.generating = true
		a.statusBar.SetMessage("Searching and writing your plan...")
		return a, tea.Batch(a.spinner.Tick, a.generateCmd(params))
	}

	if err := a.ctrl.Next(fields); err != nil {
		a.statusBar.SetError(err.Error())
		return a, nil
	}

	a.statusBar.SetMode(a.ctrl.State().Step.String())
	a.statusBar.SetMessage("")
	return a, a.focusActiveView()
}

// handleBack returns to the previous step, keeping the entered values.
func (a *App) handleBack() (tea.Model, tea.Cmd) {
	a.ctrl.Back(a.collectFields())
	a.statusBar.SetMode(a.ctrl.State().Step.String())
	return a, a.focusActiveView()
}

// handleResultKey handles keys on the result screen.
func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keyMap.Save):
		return a, a.saveCmd()

	case key.Matches(msg, a.keyMap.NewPlan):
		a.ctrl.PlanAnother()
		a.statusBar.SetMode(a.ctrl.State().Step.String())
		a.statusBar.SetMessage("Tell us where you want to go")
		a.statusBar.SetKeyHints("enter next | esc back | f1 help | ctrl+c quit")
		a.syncViews()
		return a, a.focusActiveView()
	}

	return a, a.resultView.Update(msg)
}

// generateCmd runs the planning pipeline off the UI goroutine. Only the
// pipeline call leaves the event loop; the wizard transition is committed
// in Update when the result message arrives.
func (a *App) generateCmd(params trip.Parameters) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ctrl.Plan(a.ctx, params)
		if err != nil {
			return PlanFailedMsg{Err: err, Timestamp: time.Now()}
		}
		return PlanReadyMsg{Result: result, Timestamp: time.Now()}
	}
}

// saveCmd writes the rendered itinerary document to the output directory.
func (a *App) saveCmd() tea.Cmd {
	return func() tea.Msg {
		result := a.ctrl.Result()
		if result == nil || result.Document == nil {
			return SaveFailedMsg{Err: os.ErrNotExist, Timestamp: time.Now()}
		}

		if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
			return SaveFailedMsg{Err: err, Timestamp: time.Now()}
		}

		path := filepath.Join(a.outputDir, result.Document.Filename())
		if err := os.WriteFile(path, result.Document.Data, 0o644); err != nil {
			return SaveFailedMsg{Err: err, Timestamp: time.Now()}
		}
		return PlanSavedMsg{Path: path, Timestamp: time.Now()}
	}
}

// collectFields merges the current step's inputs into the wizard fields.
func (a *App) collectFields() wizard.Fields {
	fields := a.ctrl.State().Fields

	switch a.ctrl.State().Step {
	case wizard.StepLocation:
		fields = a.locationView.Fields(fields)
	case wizard.StepBudget:
		fields = a.budgetView.Fields(fields)
	case wizard.StepPreferences:
		fields = a.preferencesView.Fields(fields)
	}
	return fields
}

// syncViews pushes the wizard's retained fields back into the step inputs.
func (a *App) syncViews() {
	fields := a.ctrl.State().Fields
	a.locationView.SetFields(fields)
	a.budgetView.SetFields(fields)
	a.preferencesView.SetFields(fields)
}

// focusActiveView refreshes and focuses the inputs of the active step.
func (a *App) focusActiveView() tea.Cmd {
	a.syncViews()

	switch a.ctrl.State().Step {
	case wizard.StepLocation:
		return a.locationView.Focus()
	case wizard.StepBudget:
		return a.budgetView.Focus()
	case wizard.StepPreferences:
		return a.preferencesView.Focus()
	}
	return nil
}

// routeToActiveView routes a message to the currently active view.
func (a *App) routeToActiveView(msg tea.Msg) tea.Cmd {
	switch a.ctrl.State().Step {
	case wizard.StepLocation:
		return a.locationView.Update(msg)
	case wizard.StepBudget:
		return a.budgetView.Update(msg)
	case wizard.StepPreferences:
		return a.preferencesView.Update(msg)
	case wizard.StepSubmitted:
		return a.resultView.Update(msg)
	}
	return nil
}

func (a *App) activeViewContent() string {
	switch a.ctrl.State().Step {
	case wizard.StepLocation:
		return a.locationView.View()
	case wizard.StepBudget:
		return a.budgetView.View()
	case wizard.StepPreferences:
		return a.preferencesView.View()
	case wizard.StepSubmitted:
		return a.resultView.View()
	}
	return ""
}

func (a *App) renderGenerating() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.theme.TitleStyle.Render("Planning your trip"),
		"",
		a.spinner.View()+" searching flights, hotels, cars and attractions...",
	)
}

// renderHelp renders the key binding reference.
func (a *App) renderHelp() string {
	helpText := a.keyMap.HelpText()

	var b strings.Builder
	for _, section := range []string{"Global", "Wizard", "Result"} {
		b.WriteString(a.theme.TitleStyle.Render(section))
		b.WriteString("\n")
		for _, binding := range helpText[section] {
			help := binding.Help()
			b.WriteString("  ")
			b.WriteString(a.theme.FocusedLabelStyle.Render(help.Key))
			b.WriteString("  ")
			b.WriteString(a.theme.LabelStyle.Render(help.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(a.theme.HintStyle.Render("Press any key to close."))
	return b.String()
}

func (a *App) bodyHeight() int {
	height := a.height - a.header.Height() - 2
	if height < 3 {
		height = 3
	}
	return height
}
