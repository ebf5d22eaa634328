package app

import "corkboard/internal/config"

type configReloadedMsg struct {
	settings config.Settings
	err      error
}

type clipboardResultMsg struct {
	method clipboardMethod
	err    error
}
