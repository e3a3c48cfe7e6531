package ui

import (
	"fmt"
	"time"

	"github.com/metent/grus-gui-lib/engine/colors"
)

// DatePicker is the heaviest built-in grid user: a button showing the
// selected date which unfolds into a month view. The month view is two
// grids, a 3 column header (previous month, title, next month) and a
// 7 column calendar. Which month is shown and whether the picker is
// unfolded live in the store under IDs derived from source.
//
// Returns true on the frame *date changes.
func DatePicker(u *UI, source string, date *time.Time) bool {
	ctx := u.ctx
	id := NewID(source)
	openID := id.With("open")
	monthID := id.With("month")

	open, _ := ctx.store.Load(openID)
	isOpen, _ := open.(bool)

	if Button(u, source+"/toggle", date.Format("2006-01-02")) {
		isOpen = !isOpen
		ctx.store.Insert(openID, isOpen)
		if isOpen {
			ctx.store.Insert(monthID, monthOf(*date))
		}
	}
	if !isOpen {
		return false
	}

	month := monthOf(*date)
	if v, ok := ctx.store.Load(monthID); ok {
		if m, ok := v.(time.Time); ok {
			month = m
		}
	}

	NewGrid(source+"/header").NumColumns(3).Show(u, func(u *UI) {
		if Button(u, source+"/prev", "<") {
			month = month.AddDate(0, -1, 0)
			ctx.store.Insert(monthID, month)
		}
		Label(u, month.Format("January 2006"))
		if Button(u, source+"/next", ">") {
			month = month.AddDate(0, 1, 0)
			ctx.store.Insert(monthID, month)
		}
		u.EndRow()
	})

	changed := false
	NewGrid(source+"/days").NumColumns(7).Striped(true).Show(u, func(u *UI) {
		for _, wd := range [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
			WeakLabel(u, wd)
		}
		u.EndRow()

		// Monday-first calendar; leading cells of the first week are
		// blanks so day 1 lands under its weekday.
		lead := (int(month.Weekday()) + 6) % 7
		days := month.AddDate(0, 1, -1).Day()
		col := 0
		for i := 0; i < lead; i++ {
			Label(u, "")
			col++
		}
		for day := 1; day <= days; day++ {
			cell := month.AddDate(0, 0, day-1)
			if dayCell(u, fmt.Sprintf("%s/d%d", source, day), day, sameDay(cell, *date)) {
				*date = cell
				changed = true
				ctx.store.Insert(openID, false)
			}
			col++
			if col == 7 {
				u.EndRow()
				col = 0
			}
		}
		if col != 0 {
			u.EndRow()
		}
	})
	return changed
}

// dayCell is a minimal button variant: no fill unless selected or
// hovered, so the stripe background shows through.
func dayCell(u *UI, source string, day int, selected bool) bool {
	ctx := u.ctx
	st := u.Style()
	label := fmt.Sprintf("%d", day)
	tw, th := ctx.R.Measure(label, st.FontSize)
	rect := u.AllocateSpace(V2(maxf(tw, st.Spacing.IconWidth), th).Max(st.Spacing.InteractSize))

	id := NewID(source)
	hovered, clicked := ctx.interact(id, rect)
	switch {
	case selected:
		ctx.fillRect(rect, st.Visuals.Selection)
	case hovered:
		ctx.fillRect(rect, st.Visuals.HoverFill)
	}
	color := st.Visuals.Text
	if selected {
		color = colors.Black
	}
	ctx.R.DrawText(rect.CenterX()-tw*0.5, rect.CenterY()-th*0.5, label, st.FontSize, color)
	return clicked
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
