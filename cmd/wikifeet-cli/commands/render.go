package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"wikifeet-go/internal/scrapers/wikifeet"
	"wikifeet-go/pkg/htmlutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

const absentCell = "-"

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// textCell renders a captured value as plain text, empty values render as absent.
func textCell(value string) string {
	text := htmlutil.PlainText(value)
	if text == "" {
		return absentCell
	}
	return text
}

// resultCell renders the outcome of a single accessor.
func resultCell(value string, err error) string {
	switch {
	case err == nil:
		return textCell(value)
	case wikifeet.IsAdultContent(err):
		return "adult content"
	case errors.Is(err, wikifeet.ErrAbsent):
		return absentCell
	}
	return fmt.Sprintf("error: %v", err)
}

func profileRows(p wikifeet.Profile) []table.Row {
	rank := absentCell
	if p.Record.ID != nil {
		rank = strconv.Itoa(*p.Record.ID)
	}

	rows := []table.Row{
		{"Name", textCell(p.Record.Name)},
		{"Username", p.Record.Username},
		{"Rank", rank},
		{"Resolved by", p.Origin.String()},
		{"Page", p.Record.PageURL},
		{"Shoe size", textCell(p.ShoeSize)},
		{"Birthplace", textCell(p.BirthPlace)},
		{"Birth date", textCell(p.BirthDate)},
		{"Rating", textCell(p.Rating)},
		{"Rating votes", textCell(p.RatingStats)},
	}
	for _, category := range wikifeet.RatingCategories() {
		rows = append(rows, table.Row{
			fmt.Sprintf("Rated %s", category),
			textCell(p.RatingBreakdown[category]),
		})
	}
	rows = append(rows,
		table.Row{"IMDb", textCell(p.ImdbPage)},
		table.Row{"Photos", strconv.Itoa(len(p.Media))},
	)
	return rows
}

func renderProfile(out io.Writer, p wikifeet.Profile) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Field", "Value"})
	for _, row := range profileRows(p) {
		t.AppendRow(row)
	}
	t.Render()
}
