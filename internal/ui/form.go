package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytraddan/storefront/internal/fakestore"
)

// Form field order.
const (
	fieldTitle = iota
	fieldPrice
	fieldDescription
	fieldCategory
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Price", "Description", "Category", "Image URL"}

// formState holds the create/edit form. editingID is zero for a create.
type formState struct {
	editingID int
	inputs    [fieldCount]textinput.Model
	focus     int
	errMsg    string
}

func newFormInputs() [fieldCount]textinput.Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Product title"
	inputs[fieldPrice].Placeholder = "0.00"
	inputs[fieldPrice].CharLimit = 12
	inputs[fieldDescription].Placeholder = "Description"
	inputs[fieldCategory].Placeholder = "Category"
	inputs[fieldImage].Placeholder = "https://..."
	return inputs
}

// openCreateForm switches to an empty form.
func (m *Model) openCreateForm() {
	m.form = formState{inputs: newFormInputs()}
	m.form.inputs[fieldTitle].Focus()
	m.currentView = ViewForm
}

// openEditForm switches to a form seeded with the product's attributes.
func (m *Model) openEditForm(p fakestore.Product) {
	m.form = formState{editingID: p.ID, inputs: newFormInputs()}
	draft := fakestore.DraftOf(p)
	m.form.inputs[fieldTitle].SetValue(draft.Title)
	m.form.inputs[fieldPrice].SetValue(strconv.FormatFloat(draft.Price, 'f', -1, 64))
	m.form.inputs[fieldDescription].SetValue(draft.Description)
	m.form.inputs[fieldCategory].SetValue(draft.Category)
	m.form.inputs[fieldImage].SetValue(draft.Image)
	m.form.inputs[fieldTitle].Focus()
	m.currentView = ViewForm
}

// handleFormKey processes keyboard input while the form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentView = ViewCatalog
		return m, nil

	case "tab", "down":
		m.moveFormFocus(1)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.moveFormFocus(-1)
		return m, textinput.Blink

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFormFocus(delta int) {
	m.form.inputs[m.form.focus].Blur()
	m.form.focus = (m.form.focus + delta + fieldCount) % fieldCount
	m.form.inputs[m.form.focus].Focus()
}

// submitForm validates the inputs and hands the draft to the coordinator.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	priceText := strings.TrimSpace(m.form.inputs[fieldPrice].Value())
	price := 0.0
	if priceText != "" {
		parsed, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			m.form.errMsg = fmt.Sprintf("price %q is not a number", priceText)
			return m, nil
		}
		price = parsed
	}

	draft := fakestore.Draft{
		Title:       strings.TrimSpace(m.form.inputs[fieldTitle].Value()),
		Price:       price,
		Description: strings.TrimSpace(m.form.inputs[fieldDescription].Value()),
		Category:    strings.TrimSpace(m.form.inputs[fieldCategory].Value()),
		Image:       strings.TrimSpace(m.form.inputs[fieldImage].Value()),
	}
	if err := draft.Validate(); err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	if m.form.editingID == 0 {
		cmd, err := m.coord.Create(m.ctx, draft)
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		// Clear filters so the new product is visible on page one.
		m.filters = m.filters.Clear()
		m.search.SetValue("")
		m.notice = undoNotice(cmd)
	} else {
		cmd, err := m.coord.Update(m.ctx, m.form.editingID, draft)
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.notice = undoNotice(cmd)
	}

	m.currentView = ViewCatalog
	m.recompute()
	return m, nil
}

// renderForm renders the create/edit form.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := "Create New Product"
	if m.form.editingID != 0 {
		title = "Edit Product"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		label := fieldLabels[i]
		labelStyle := styles.MutedText
		if i == m.form.focus {
			labelStyle = styles.AccentText
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.form.errMsg))
	}

	b.WriteString("\n\n")
	hints := []string{"tab next field", "enter save", "esc cancel"}
	b.WriteString(styles.Footer.Width(m.width).Render(strings.Join(hints, "  ")))
	return b.String()
}
