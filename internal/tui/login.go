package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldLanguage
	fieldInterests
	fieldCount
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

// loginForm collects name, email, reader language and interests. Picked
// interests are kept as labels even when the form's language changes.
type loginForm struct {
	name      textinput.Model
	email     textinput.Model
	language  lang.Language
	selected  []string
	field     formField
	optCursor int
	err       error
}

func newLoginForm(l lang.Language) loginForm {
	name := textinput.New()
	name.Placeholder = "Rahul Ahmed"
	name.Prompt = "> "
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "rahul@example.com"
	email.Prompt = "> "
	email.CharLimit = 120

	f := loginForm{name: name, email: email, language: l.Or(lang.Default), selected: []string{}}
	f.name.Focus()
	return f
}

func (f *loginForm) options() []string {
	return lang.PreferenceOptions(f.language)
}

func (f *loginForm) isSelected(label string) bool {
	for _, s := range f.selected {
		if s == label {
			return true
		}
	}
	return false
}

func (f *loginForm) toggle(label string) {
	for i, s := range f.selected {
		if s == label {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return
		}
	}
	f.selected = append(f.selected, label)
}

func (f *loginForm) preferences() []string {
	out := make([]string, len(f.selected))
	copy(out, f.selected)
	return out
}

func (f *loginForm) focus(field formField) tea.Cmd {
	f.field = (field + fieldCount) % fieldCount
	f.name.Blur()
	f.email.Blur()
	switch f.field {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	}
	return nil
}

func (f *loginForm) update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancel, nil
	case "enter":
		return formSubmit, nil
	case "tab", "down":
		return formNone, f.focus(f.field + 1)
	case "shift+tab", "up":
		return formNone, f.focus(f.field - 1)
	}

	switch f.field {
	case fieldLanguage:
		switch msg.String() {
		case "left", "h":
			f.language = prevLanguage(f.language)
			f.optCursor = 0
		case "right", "l", " ":
			f.language = f.language.Next()
			f.optCursor = 0
		}
		return formNone, nil
	case fieldInterests:
		opts := f.options()
		switch msg.String() {
		case "left", "h":
			if f.optCursor > 0 {
				f.optCursor--
			}
		case "right", "l":
			if f.optCursor < len(opts)-1 {
				f.optCursor++
			}
		case " ", "x":
			if f.optCursor < len(opts) {
				f.toggle(opts[f.optCursor])
			}
		}
		return formNone, nil
	}

	var cmd tea.Cmd
	if f.field == fieldName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.email, cmd = f.email.Update(msg)
	}
	f.err = nil
	return formNone, cmd
}

// updateInputs forwards non-key messages such as cursor blinks.
func (f *loginForm) updateInputs(msg tea.Msg) tea.Cmd {
	var c1, c2 tea.Cmd
	f.name, c1 = f.name.Update(msg)
	f.email, c2 = f.email.Update(msg)
	return tea.Batch(c1, c2)
}

func prevLanguage(l lang.Language) lang.Language {
	for i, c := range lang.All {
		if c == l {
			return lang.All[(i+len(lang.All)-1)%len(lang.All)]
		}
	}
	return lang.Default
}

func (f *loginForm) label(field formField, text string) string {
	if f.field == field {
		return formActiveLabelStyle.Render(strings.ToUpper(text))
	}
	return formLabelStyle.Render(strings.ToUpper(text))
}

func (f *loginForm) view(width, height int) string {
	title := brandHuntStyle.UnsetPaddingLeft().Render("hunt") + brandTechStyle.Render("tech")

	langs := make([]string, 0, len(lang.All))
	for _, l := range lang.All {
		if l == f.language {
			langs = append(langs, chipSelectedStyle.Render(l.Label()))
		} else {
			langs = append(langs, chipStyle.Render(l.Label()))
		}
	}

	opts := f.options()
	chips := make([]string, 0, len(opts))
	for i, o := range opts {
		text := o
		if f.field == fieldInterests && i == f.optCursor {
			text = "[" + o + "]"
		}
		if f.isSelected(o) {
			chips = append(chips, chipSelectedStyle.Render(text))
		} else {
			chips = append(chips, chipStyle.Render(text))
		}
	}

	lines := []string{
		title, "",
		f.label(fieldName, "Full Name"), f.name.View(), "",
		f.label(fieldEmail, "Email Address"), f.email.View(), "",
		f.label(fieldLanguage, "Reader Language"), strings.Join(langs, " "), "",
		f.label(fieldInterests, "My Tech Interests"), strings.Join(chips, " "), "",
		buttonStyle.Render("START MY FEED"),
	}
	if f.err != nil {
		lines = append(lines, "", errorStyle.Render(f.err.Error()))
	}
	lines = append(lines, "", helpDimStyle.Render("tab next field · ←/→ choose · space toggle · enter submit · esc cancel"))

	card := helpCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
