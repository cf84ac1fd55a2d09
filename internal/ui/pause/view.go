package pause

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines pause screen action handlers.
type Callbacks struct {
	OnBack     func()
	OnReset    func()
	OnSettings func()
}

// View shows the pause screen buttons.
type View struct {
	content        fyne.CanvasObject
	backButton     *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
}

// New creates the pause screen.
func New(callbacks Callbacks) *View {
	view := &View{
		backButton:     widget.NewButton("Back", callbacks.OnBack),
		resetButton:    widget.NewButton("Reset", callbacks.OnReset),
		settingsButton: widget.NewButton("Settings", callbacks.OnSettings),
	}
	view.backButton.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle("Paused", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	buttons := container.NewHBox(view.backButton, view.resetButton, view.settingsButton)
	view.content = container.NewCenter(container.NewVBox(title, buttons))
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}
