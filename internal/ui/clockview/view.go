package clockview

import (
	"fmt"
	"image/color"

	"gameclock/internal/core/clock"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	activeColor   = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	idleColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	expiredColor  = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
	activeFill    = color.NRGBA{R: 48, G: 48, B: 48, A: 255}
	idleFill      = color.NRGBA{R: 24, G: 24, B: 24, A: 255}
	timerTextSize = float32(48)
)

// Callbacks defines clock screen action handlers.
type Callbacks struct {
	OnToggle func()
	OnPause  func()
}

// View shows the clock faces and the pause button.
type View struct {
	content     fyne.CanvasObject
	faces       []*face
	tapAreas    []*tapArea
	pauseButton *widget.Button
}

type face struct {
	background *canvas.Rectangle
	timer      *canvas.Text
	name       *canvas.Text
}

// New creates a view with count faces.
func New(count int, callbacks Callbacks) *View {
	view := &View{}
	objects := make([]fyne.CanvasObject, 0, count)
	for index := 0; index < count; index++ {
		clockFace := newFace(index)
		view.faces = append(view.faces, clockFace)
		objects = append(objects, container.NewStack(
			clockFace.background,
			container.NewBorder(container.NewCenter(clockFace.name), nil, nil, nil, container.NewCenter(clockFace.timer)),
			view.addTapArea(callbacks.OnToggle),
		))
	}

	view.pauseButton = widget.NewButton("Pause", func() {
		if callbacks.OnPause != nil {
			callbacks.OnPause()
		}
	})

	faces := container.New(&facesLayout{}, objects...)
	view.content = container.NewBorder(nil, container.NewCenter(view.pauseButton), nil, nil, faces)
	return view
}

func newFace(index int) *face {
	timer := canvas.NewText(FormatRemaining(0), idleColor)
	timer.Alignment = fyne.TextAlignCenter
	timer.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timer.TextSize = timerTextSize

	name := canvas.NewText(fmt.Sprintf("Clock %d", index+1), idleColor)
	name.Alignment = fyne.TextAlignCenter

	return &face{
		background: canvas.NewRectangle(idleFill),
		timer:      timer,
		name:       name,
	}
}

func (view *View) addTapArea(onTap func()) *tapArea {
	area := newTapArea(onTap)
	view.tapAreas = append(view.tapAreas, area)
	return area
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Len returns the number of faces.
func (view *View) Len() int {
	return len(view.faces)
}

// Text returns the timer text of face index.
func (view *View) Text(index int) string {
	return view.faces[index].timer.Text
}

// Update redraws every face from the statuses.
func (view *View) Update(statuses []clock.Status) {
	for _, status := range statuses {
		if status.Index < 0 || status.Index >= len(view.faces) {
			continue
		}
		view.faces[status.Index].update(status)
	}
}

func (face *face) update(status clock.Status) {
	text := FormatRemaining(status.Remaining)
	textColor := color.Color(idleColor)
	fill := color.Color(idleFill)
	switch {
	case status.Expired:
		textColor = expiredColor
	case status.Running:
		textColor = activeColor
		fill = activeFill
	}

	if face.timer.Text != text || face.timer.Color != textColor {
		face.timer.Text = text
		face.timer.Color = textColor
		face.timer.Refresh()
	}
	if face.background.FillColor != fill {
		face.background.FillColor = fill
		face.background.Refresh()
	}
}

// tapArea is a transparent overlay turning taps on a face into toggles.
type tapArea struct {
	widget.BaseWidget
	onTap func()
}

func newTapArea(onTap func()) *tapArea {
	area := &tapArea{onTap: onTap}
	area.ExtendBaseWidget(area)
	return area
}

func (area *tapArea) Tapped(*fyne.PointEvent) {
	if area.onTap != nil {
		area.onTap()
	}
}

func (area *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
