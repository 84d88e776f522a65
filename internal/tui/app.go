// Package tui is the terminal front end: a single form for choosing
// character classes, generating a password and copying it.
package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/passforge/passforge-go/internal/preset"
)

const (
	labelComplexity = "Password Complexity"
	labelLength     = "Password Length (4-32)"
	labelLetters    = "Include Letters (A-Z, a-z)"
	labelNumbers    = "Include Numbers (0-9)"
	labelSymbols    = "Include Symbols (!@#$)"
	labelExclude    = "Exclude Characters (e.g. O0l1)"
)

// App is the tview application around a Controller.
type App struct {
	ctrl *Controller

	app     *tview.Application
	form    *tview.Form
	preview *tview.TextView
	status  *tview.TextView
}

func NewApp(ctrl *Controller) *App {
	a := &App{
		ctrl:    ctrl,
		app:     tview.NewApplication(),
		preview: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
		status:  tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
	}
	a.setupForm()
	return a
}

func (a *App) setupForm() {
	st := a.ctrl.State
	levels := preset.All()
	options := make([]string, len(levels))
	initial := 0
	for i, l := range levels {
		options[i] = string(l)
		if l == st.Complexity {
			initial = i
		}
	}

	a.form = tview.NewForm()
	a.form.AddDropDown(labelComplexity, options, initial, func(option string, _ int) {
		a.ctrl.SetComplexity(preset.Complexity(option))
		a.syncCheckboxes()
	})
	a.form.AddInputField(labelLength, strconv.Itoa(st.Length), 6, tview.InputFieldInteger, func(text string) {
		if err := a.ctrl.SetLength(text); err != nil {
			a.showError(err)
			return
		}
		a.status.Clear()
	})
	a.form.AddCheckbox(labelLetters, st.Letters, func(checked bool) { a.ctrl.State.Letters = checked })
	a.form.AddCheckbox(labelNumbers, st.Numbers, func(checked bool) { a.ctrl.State.Numbers = checked })
	a.form.AddCheckbox(labelSymbols, st.Symbols, func(checked bool) { a.ctrl.State.Symbols = checked })
	a.form.AddInputField(labelExclude, st.Exclude, 40, nil, func(text string) { a.ctrl.State.Exclude = text })
	a.form.AddButton("Generate Password", a.generate)
	a.form.AddButton("Copy to Clipboard", a.copy)
	a.form.AddButton("Exit", a.app.Stop)
	a.form.SetBorder(true).SetTitle(" Password Generator ")
}

// syncCheckboxes pushes the controller's class flags back into the widgets.
// The dropdown fires its callback while the form is still being built, so
// missing checkboxes are skipped.
func (a *App) syncCheckboxes() {
	set := func(label string, checked bool) {
		if cb, ok := a.form.GetFormItemByLabel(label).(*tview.Checkbox); ok && cb != nil {
			cb.SetChecked(checked)
		}
	}
	set(labelLetters, a.ctrl.State.Letters)
	set(labelNumbers, a.ctrl.State.Numbers)
	set(labelSymbols, a.ctrl.State.Symbols)
}

func (a *App) generate() {
	password, err := a.ctrl.Generate()
	if err != nil {
		a.showError(err)
		return
	}
	a.preview.SetText("[green]" + tview.Escape(password))
	a.status.Clear()
}

func (a *App) copy() {
	if err := a.ctrl.Copy(); err != nil {
		a.showError(err)
		return
	}
	a.status.SetText("[yellow]Password copied to clipboard![-]")
}

func (a *App) showError(err error) {
	a.status.SetText("[red]" + tview.Escape(Message(err)) + "[-]")
}

// Run blocks until the user exits.
func (a *App) Run() error {
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.form, 0, 1, true).
		AddItem(tview.NewTextView().SetText("Generated:").SetTextColor(tcell.ColorYellow), 1, 0, false).
		AddItem(a.preview, 1, 0, false).
		AddItem(a.status, 1, 0, false)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			a.app.Stop()
			return nil
		case tcell.KeyCtrlG:
			a.generate()
			return nil
		}
		return event
	})

	return a.app.SetRoot(layout, true).EnableMouse(true).Run()
}
