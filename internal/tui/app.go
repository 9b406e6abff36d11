// Package tui provides the terminal user interface for the shopping list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hy4ri/shoplist-tui/internal/config"
	"github.com/hy4ri/shoplist-tui/internal/shopping"
	"github.com/hy4ri/shoplist-tui/internal/tui/logic"
	"github.com/hy4ri/shoplist-tui/internal/tui/state"
	"github.com/hy4ri/shoplist-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	*state.State

	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the application model around store.
func NewApp(store *shopping.Store, cfg *config.Config, logger *zap.Logger) *App {
	s := state.New(store, cfg, logger)
	return &App{
		State:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.Log.Info("starting",
		zap.Stringer("id_policy", a.Store.Policy()),
		zap.Bool("vim_mode", a.Config.UI.VimMode),
	)
	return tea.SetWindowTitle("Shopping List")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// Close detaches the app from its store.
func (a *App) Close() {
	a.State.Close()
}
