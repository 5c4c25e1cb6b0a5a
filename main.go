// Package main provides the entry point for the shape editor.
package main

import (
	"context"

	"shapeedit/internal/app"
	"shapeedit/internal/editor"
	"shapeedit/internal/log"
	"shapeedit/internal/version"
	"shapeedit/ui/mainwindow"
	"shapeedit/ui/prefs"

	"cdr.dev/slog"
	fyneapp "fyne.io/fyne/v2/app"
)

const appID = "io.shapeedit.editor"

func main() {
	ctx := log.Stderr(context.Background())
	log.Info(ctx, "starting", slog.F("version", version.String()))

	appPrefs, err := prefs.Load()
	if err != nil {
		log.Warn(ctx, "using default preferences", slog.F("path", appPrefs.Path()), slog.Error(err))
	}
	settings := appPrefs.Settings()

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.EditorTheme{})

	ed := editor.New(editor.WithTolerance(settings.GuideTolerance))
	log.Debug(ctx, "editor ready",
		slog.F("tolerance", ed.Tolerance()),
		slog.F("prefs", appPrefs.Path()))

	win := mainwindow.New(ctx, fyneApp, ed, appPrefs)
	win.ShowAndRun()
}
