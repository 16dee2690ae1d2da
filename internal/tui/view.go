package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model. The screen is the header, one page of entries
// padded with blank rows, and the position footer.
func (m *Model) View() string {
	if m.quitting || len(m.stack) == 0 {
		return ""
	}

	frame := m.top()
	size := m.pageSize()
	cols := m.width - 1

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(FitWidth(frame.Header(), cols)))
	b.WriteByte('\n')

	pager := m.pager
	pager.PerPage = size
	pager.SetTotalPages(frame.Len())
	pager.Page = frame.Page(size)
	start, end := pager.GetSliceBounds(frame.Len())

	rows := 0
	for i := start; i < end; i++ {
		e := frame.Entries[i]
		style := entryStyle(e.IsDir, i == frame.Cursor)
		b.WriteString(style.Render(FitWidth(e.Name, cols)))
		b.WriteByte('\n')
		rows++
	}
	for ; rows < size; rows++ {
		b.WriteByte('\n')
	}

	footer := fmt.Sprintf("%d/%d", frame.Position(), frame.Len())
	b.WriteString(FooterStyle.Render(FitWidth(footer, cols)))
	return b.String()
}
