package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/verte-zerg/passgen/internal/model"
)

// WriteMarkdown writes history as a Markdown document.
func WriteMarkdown(w io.Writer, entries []model.HistoryEntry) error {
	md := markdown.NewMarkdown(w)
	md.H1("Recent secrets")
	md.PlainText("")
	if len(entries) == 0 {
		md.PlainText("No secrets generated recently.")
		return md.Build()
	}
	rows := historyRows(entries)
	for _, row := range rows {
		row[1] = "`" + row[1] + "`"
	}
	md.Table(markdown.TableSet{
		Header: historyHeaders,
		Rows:   rows,
	})
	md.PlainText("")
	md.Note("Secrets are masked; only summaries are kept.")
	return md.Build()
}
