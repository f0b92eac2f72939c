/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/Seednode/impostor/games/impostor"
)

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

// logErrors reports handler write errors until errs is closed.
func logErrors(cfg *Config, errs <-chan error) {
	for err := range errs {
		logf(cfg, "ERROR: %v", err)
	}
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="es"><head>`)
	htmlBody.WriteString(getFavicon())
	htmlBody.WriteString(`<link rel="stylesheet" href="/assets/impostor/app.css">`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", html.EscapeString(title)))
	htmlBody.WriteString(fmt.Sprintf("<body><main class=\"card\"><a href=\"/\">%s</a></main></body></html>", html.EscapeString(body)))

	return htmlBody.String()
}

// errorCode is the machine-readable code sent to clients for a rejected action.
func errorCode(err error) string {
	switch {
	case errors.Is(err, impostor.ErrNoCategories):
		return "no_categories"
	case errors.Is(err, impostor.ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, impostor.ErrUnknownMode):
		return "unknown_mode"
	case errors.Is(err, impostor.ErrNameCount):
		return "name_count"
	case errors.Is(err, impostor.ErrPlayerCount):
		return "player_count"
	case errors.Is(err, impostor.ErrWrongPhase):
		return "wrong_phase"
	default:
		return "bad_request"
	}
}
