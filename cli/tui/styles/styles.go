package styles

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	MinTextareaHeight = 3
	MaxTextareaHeight = 8
	MinViewportHeight = 1
	SidebarWidth      = 32
	HeaderHeight      = 2
	DocumentBarHeight = 2
	InputBorderHeight = 2
	PreviewLength     = 26
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#06B6D4") // Cyan
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	successColor   = lipgloss.Color("#10B981") // Green
	errorColor     = lipgloss.Color("#EF4444") // Red
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	dimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	messageColor   = lipgloss.Color("#E5E7EB")
	borderColor    = lipgloss.Color("#4B5563")

	// Title bar style
	TitleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(textColor).
			Bold(true)

	// Document bar
	DocumentStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	DocumentOffStyle = lipgloss.NewStyle().
				Foreground(dimTextColor)

	// Sidebar
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(borderColor)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(messageColor).
				PaddingLeft(1)

	SidebarCurrentStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	SidebarCursorStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	SidebarPreviewStyle = lipgloss.NewStyle().
				Foreground(dimTextColor).
				PaddingLeft(3)

	// Transcript
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1).
				MarginLeft(10)

	BotMessageStyle = lipgloss.NewStyle().
			Foreground(messageColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1).
			MarginRight(10)

	SourceStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true).
			PaddingLeft(2)

	SourceLabelStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Italic(true)

	// Input area
	TextAreaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			PaddingLeft(1)

	ViewportStyle = lipgloss.NewStyle()

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// Delete confirmation
	ConfirmTitleStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	ConfirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 2).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)
)
