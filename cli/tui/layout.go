package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"docchat/cli/tui/styles"
)

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	content := m.textarea.Value()
	lineCount := strings.Count(content, "\n") + 1

	newHeight := lineCount
	if newHeight < styles.MinTextareaHeight {
		newHeight = styles.MinTextareaHeight
	}
	if newHeight > styles.MaxTextareaHeight {
		newHeight = styles.MaxTextareaHeight
	}

	oldHeight := m.textarea.Height()
	if oldHeight != newHeight {
		m.textarea.SetHeight(newHeight)

		heightDiff := newHeight - oldHeight

		m.recalculateLayout()

		if heightDiff != 0 && m.ready {
			m.viewport.LineDown(heightDiff)
		}
	}
}

// recalculateLayout sizes the sidebar, viewport and inputs from the current
// window dimensions.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentWidth := m.width - styles.SidebarWidth - styles.SidebarStyle.GetHorizontalBorderSize()
	if contentWidth < 20 {
		contentWidth = 20
	}

	viewportHeight := m.height - styles.HeaderHeight - styles.DocumentBarHeight
	viewportHeight -= m.textarea.Height() + styles.InputBorderHeight
	if m.err != nil {
		viewportHeight -= 1
	}
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	m.sessionList.SetSize(styles.SidebarWidth, m.height-styles.HeaderHeight)
	m.titleInput.Width = styles.SidebarWidth - 4
	m.uploadInput.Width = contentWidth - 4
	m.renderer.SetWidth(contentWidth - styles.BotMessageStyle.GetHorizontalFrameSize())

	if !m.ready {
		m.viewport = viewport.New(contentWidth, viewportHeight)
		m.ready = true
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom() // Only on initial render
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = viewportHeight
		m.viewport.SetContent(m.renderMessages())
	}

	m.textarea.SetWidth(contentWidth - styles.TextAreaStyle.GetHorizontalPadding() - styles.TextAreaStyle.GetHorizontalBorderSize())
}
