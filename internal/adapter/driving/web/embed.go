package web

import "embed"

// StaticFS holds the embedded static assets (base CSS and the motion runner).
//
//go:embed static/*
var StaticFS embed.FS
