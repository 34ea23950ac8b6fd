package tui

import (
	"strings"
)

func (m mainLoopModel) View() string {
	if m.adding {
		return appStyle.Render(m.viewAddForm())
	}
	if m.confirming {
		return appStyle.Render(m.viewConfirm())
	}
	return appStyle.Render(m.viewList())
}

func (m mainLoopModel) viewList() string {
	header := titleStyle.Render("GoNoteSync")
	if m.status.Offline {
		header += "  " + offlineStyle.Render(" ОФФЛАЙН ")
	}
	if m.status.Syncing {
		header += "  " + m.spinner.View() + " синхронизация"
	}
	out := header + "\n\n"

	if len(m.notes) == 0 {
		out += "Нет записей\n"
	} else {
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := cursor + note.Title
			if note.Provisional() {
				line += " " + provisionalTag.Render("(не отправлено)")
			}
			out += line + "\n"
		}
	}

	if m.statusLine != "" {
		out += "\n" + m.statusLine + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("n новая  d удалить  c копировать  s синхр.  q выход")
	return out
}

func (m mainLoopModel) viewAddForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Новая заметка") + "\n\n")
	for _, input := range m.addInputs {
		b.WriteString(input.View() + "\n")
	}
	if m.addSaving {
		b.WriteString("\nСохранение...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter сохранить  tab далее  esc отмена"))
	return b.String()
}

func (m mainLoopModel) viewConfirm() string {
	content := "Удалить \"" + m.confirmTarget.Title + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
