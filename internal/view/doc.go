// Package view renders the two screens of the tool: the home list of
// templates and the parameter form of a single template. Each screen has a
// terminal rendering (lipgloss) and an HTML rendering for browsers and
// editor webviews.
package view
