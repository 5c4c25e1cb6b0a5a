// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"fmt"
	"strings"

	"shapeedit/internal/editor"
	"shapeedit/internal/guides"
	"shapeedit/internal/log"
	"shapeedit/internal/render"
	"shapeedit/internal/shape"
	"shapeedit/internal/version"
	"shapeedit/ui/canvas"
	"shapeedit/ui/panels"
	"shapeedit/ui/prefs"

	"cdr.dev/slog"
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Shape Editor"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	ctx    context.Context
	editor *editor.Editor
	prefs  *prefs.Prefs

	canvas    *canvas.EditorCanvas
	sidePanel *panels.ShapesPanel
	statusBar *widget.Label
	tools     map[shape.Kind]*widget.Button
}

// New creates the main window around ed.
func New(ctx context.Context, fyneApp fyne.App, ed *editor.Editor, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		ctx:    log.Named(ctx, "mainwindow"),
		editor: ed,
		prefs:  p,
		tools:  make(map[shape.Kind]*widget.Button),
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePreferences()

	return mw
}

// EditorCanvas returns the drawing surface.
func (mw *MainWindow) EditorCanvas() *canvas.EditorCanvas {
	return mw.canvas
}

// Status returns the status bar text.
func (mw *MainWindow) Status() string {
	return mw.statusBar.Text
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewEditorCanvas(mw.ctx, mw.editor)
	mw.sidePanel = panels.NewShapesPanel(mw.editor)
	mw.statusBar = widget.NewLabel("Ready")

	canvasArea := container.NewBorder(
		mw.createToolbar(), // top
		nil,                // bottom
		nil,                // left
		nil,                // right
		mw.canvas,          // center
	)

	split := container.NewHSplit(canvasArea, mw.sidePanel.Container())
	split.SetOffset(0.8)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)
	mw.SetContent(content)

	mw.Window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.onReset()
		}
	})
	mw.SetCloseIntercept(func() {
		mw.SavePreferences()
		mw.Close()
	})
}

// createToolbar creates one button per shape kind.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	box := container.NewHBox(widget.NewLabel("Draw:"))
	for _, k := range shape.Kinds() {
		name := k.String()
		btn := widget.NewButton(toolLabel(name), func() {
			mw.onArm(name)
		})
		mw.tools[k] = btn
		box.Add(btn)
	}
	return box
}

func toolLabel(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG...", func() { mw.onExport(".png") }),
		fyne.NewMenuItem("Export SVG...", func() { mw.onExport(".svg") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mw.SavePreferences()
			mw.app.Quit()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Cancel Gesture", mw.onReset),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

// setupEventHandlers keeps the toolbar and status bar in step with the editor.
func (mw *MainWindow) setupEventHandlers() {
	mw.editor.On(editor.EventArmed, func(data interface{}) {
		if k, ok := data.(shape.Kind); ok {
			mw.highlightTool(k)
			mw.updateStatus(fmt.Sprintf("Click and drag to draw a %s", k))
		}
	})
	mw.editor.On(editor.EventModeChanged, func(data interface{}) {
		if m, ok := data.(editor.Mode); ok && m == editor.ModeIdle {
			mw.highlightTool(shape.Kind(-1))
		}
	})
	mw.editor.On(editor.EventGuidesChanged, func(data interface{}) {
		if set, ok := data.(guides.Set); ok {
			mw.updateStatus(describeGuides(set, len(mw.editor.Shapes())))
		}
	})
}

// describeGuides summarises the active guides for the status bar.
func describeGuides(set guides.Set, shapes int) string {
	if !set.Any() {
		return fmt.Sprintf("%d shapes", shapes)
	}
	active := set.Active()
	parts := make([]string, 0, len(active))
	for _, l := range active {
		parts = append(parts, fmt.Sprintf("%s at %g", l.ID, l.Position))
	}
	return fmt.Sprintf("%d shapes, aligned: %s", shapes, strings.Join(parts, ", "))
}

func (mw *MainWindow) highlightTool(armed shape.Kind) {
	for k, btn := range mw.tools {
		if k == armed {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onArm(name string) {
	if !mw.canvas.Arm(name) {
		mw.updateStatus(fmt.Sprintf("Unknown shape %q", name))
		return
	}
	mw.prefs.SetString(prefs.KeyLastTool, name)
}

func (mw *MainWindow) onReset() {
	mw.canvas.Reset()
	mw.highlightTool(shape.Kind(-1))
	mw.updateStatus("Ready")
}

func (mw *MainWindow) onExport(ext string) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := mw.export(writer, writer.URI().Extension()); err != nil {
			log.Warn(mw.ctx, "export failed", slog.Error(err))
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported " + writer.URI().Name())
	}, mw.Window)
	fd.SetFileName("drawing" + ext)
	fd.Show()
}

// export writes the current drawing at the canvas size.
func (mw *MainWindow) export(w fyne.URIWriteCloser, ext string) error {
	f, err := render.FormatFor("drawing" + ext)
	if err != nil {
		return err
	}
	size := mw.canvas.Size()
	if size.Width < 1 || size.Height < 1 {
		size = mw.canvas.MinSize()
	}
	return render.Export(w, f, mw.canvas.Shapes(), render.ExportOptions{
		Width:       int(size.Width),
		Height:      int(size.Height),
		StrokeWidth: mw.prefs.Settings().StrokeWidth,
	})
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s\n\n"+
			"Draw rectangles, lines, arrows, ellipses, triangles and stars.\n"+
			"Guides appear when shape edges or centers line up.",
			version.String()),
		mw.Window)
}

// restorePreferences applies stored settings to the window and canvas.
func (mw *MainWindow) restorePreferences() {
	s := mw.prefs.Settings()
	mw.Resize(fyne.NewSize(s.WindowWidth, s.WindowHeight))
	mw.canvas.SetStrokeWidth(s.StrokeWidth)
	if k, ok := shape.ParseKind(s.LastTool); ok {
		mw.updateStatus(fmt.Sprintf("Ready (last tool: %s)", k))
	}
}

// SavePreferences stores the window size and writes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	size := mw.Window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetWindowSize(size.Width, size.Height)
	}
	if err := mw.prefs.Save(); err != nil {
		log.Warn(mw.ctx, "failed to save preferences", slog.F("path", mw.prefs.Path()), slog.Error(err))
	}
}
