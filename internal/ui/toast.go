package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toast is a non-modal notification shown in the top-right corner of a
// window and hidden automatically
type Toast struct {
	canvas   fyne.Canvas
	autoHide time.Duration

	popup   *widget.PopUp
	title   *widget.Label
	message *widget.Label
	timer   *time.Timer
}

// NewToast creates a toast for the given canvas
func NewToast(c fyne.Canvas) *Toast {
	return &Toast{canvas: c, autoHide: ToastAutoHide}
}

// Show displays title and message, replacing any toast already visible
func (t *Toast) Show(title, message string) {
	if t.popup == nil {
		t.title = widget.NewLabel("")
		t.title.TextStyle = fyne.TextStyle{Bold: true}
		t.message = widget.NewLabel("")
		t.message.Truncation = fyne.TextTruncateEllipsis
		t.popup = widget.NewPopUp(container.NewVBox(t.title, t.message), t.canvas)
	}
	t.title.SetText(title)
	t.message.SetText(message)

	// Position in top-right corner
	canvasSize := t.canvas.Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	x := canvasSize.Width - toastSize.Width - ToastMargin
	if x < 0 {
		x = 0
	}
	t.popup.Resize(toastSize)
	t.popup.Move(fyne.NewPos(x, ToastMargin))
	t.popup.Show()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.autoHide, func() {
		fyne.Do(t.Hide)
	})
}

// Hide removes the toast
func (t *Toast) Hide() {
	if t.popup != nil {
		t.popup.Hide()
	}
}

// Visible reports whether the toast is showing
func (t *Toast) Visible() bool {
	return t.popup != nil && t.popup.Visible()
}

// Message returns the text of the last toast
func (t *Toast) Message() string {
	if t.message == nil {
		return ""
	}
	return t.message.Text
}
