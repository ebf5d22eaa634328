package app

import (
	"charm.land/bubbles/v2/key"

	"corkboard/internal/config"
)

type keyMap struct {
	Quit key.Binding
	Copy key.Binding
	Help key.Binding
	Blur key.Binding
}

func newKeyMap(settings config.Settings) keyMap {
	quit := settings.QuitKeys()
	copyKeys := settings.CopyKeys()
	help := settings.HelpKeys()
	return keyMap{
		Quit: key.NewBinding(key.WithKeys(quit...), key.WithHelp(quit[0], "quit")),
		Copy: key.NewBinding(key.WithKeys(copyKeys...), key.WithHelp(copyKeys[0], "copy note")),
		Help: key.NewBinding(key.WithKeys(help...), key.WithHelp(help[0], "help")),
		Blur: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "finish editing")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Copy, k.Blur}, {k.Help, k.Quit}}
}
