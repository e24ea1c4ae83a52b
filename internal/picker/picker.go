package picker

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/genry-dev/genry/internal/output"
	"github.com/genry-dev/genry/internal/template"
)

// selectHeight caps the visible option rows.
const selectHeight = 10

// Pick presents templates in a filterable interactive list and returns the
// user's choice. Returns (nil, nil) when the user aborts — cancellation is a
// normal outcome, not an error. Callers must not pass an empty slice.
//
// A query input drives the option list: typing narrows the candidates by
// case-insensitive substring over name and description (see Filter).
func Pick(templates []template.Template) (*template.Template, error) {
	if !output.IsTTY() {
		output.Warn("no interactive terminal, cannot pick a template")
		return nil, nil
	}

	var (
		query    string
		selected template.Template
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Generate").
				Placeholder("type to filter templates").
				Value(&query),
			huh.NewSelect[template.Template]().
				Height(selectHeight).
				OptionsFunc(func() []huh.Option[template.Template] {
					return options(Filter(query, templates))
				}, &query).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, fmt.Errorf("template selection: %w", err)
	}

	if selected.Name == "" && selected.Source == "" {
		// Filter narrowed to nothing and the form completed anyway.
		return nil, nil
	}
	return &selected, nil
}

// options renders templates as select options, descriptions dimmed.
func options(templates []template.Template) []huh.Option[template.Template] {
	opts := make([]huh.Option[template.Template], len(templates))
	for i, tpl := range templates {
		label := tpl.Name
		if tpl.Description != "" {
			label = fmt.Sprintf("%s  %s", tpl.Name, output.Dim(tpl.Description))
		}
		opts[i] = huh.NewOption(label, tpl)
	}
	return opts
}
