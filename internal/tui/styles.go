package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors follow theme.Apply
	colorBrand     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	colorText      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F1F5F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#94A3B8"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#64748B"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1E293B"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	colorSurface   = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#0F172A"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1E293B"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#0B1120"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#94A3B8"}
	colorCategory  = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FCA5A5"}
	colorError     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}

	brandHuntStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			PaddingLeft(1)

	brandTechStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand)

	headerDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	listPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	articlePaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	articlePaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			PaddingLeft(1)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorBrand).
				Bold(true)

	itemCategoryStyle = lipgloss.NewStyle().
				Foreground(colorCategory)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	articleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				MarginBottom(1)

	articleMetaStyle = lipgloss.NewStyle().
				Foreground(colorCategory)

	articleBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	articleLinkStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorBrand).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorSurface)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorBrand)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrand).
			Padding(1, 3)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	formActiveLabelStyle = lipgloss.NewStyle().
				Foreground(colorBrand).
				Bold(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Background(colorTabBg).
			Padding(0, 1)

	chipSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorBrand).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorBrand).
			Bold(true).
			Padding(0, 2)
)
