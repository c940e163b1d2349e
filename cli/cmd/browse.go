package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/vinv/inventory"
	"github.com/ardnew/vinv/log"
	"github.com/ardnew/vinv/sshcfg"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// Browse opens an interactive host picker and prints the variables of the
// selected host.
type Browse struct {
	Pretty bool `default:"true" help:"Pretty-print output JSON." negatable:""`
}

// hostItem is one selectable host in the browser list.
type hostItem struct {
	host string
	addr string
	port int
	role string
}

func (i hostItem) Title() string { return i.host }

func (i hostItem) Description() string {
	desc := fmt.Sprintf("%s:%d", i.addr, i.port)
	if i.role != "" {
		desc += "  role=" + i.role
	}

	return desc
}

func (i hostItem) FilterValue() string { return i.host }

// browseModel drives the host picker: a filterable list that quits on enter
// (recording the selection) or on q/ctrl+c (recording nothing).
type browseModel struct {
	list     list.Model
	selected string
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Ignore keys while the filter input is focused so typing works.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(hostItem); ok {
				m.selected = item.host
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m browseModel) View() string {
	return docStyle.Render(m.list.View())
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	doc, err := document(ctx)
	if err != nil {
		return err
	}

	inv, err := inventory.Build(ctx, doc,
		inventory.WithMantl(true),
		inventory.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	items := make([]list.Item, 0, len(doc))

	for _, rec := range doc {
		item := hostItem{
			host: rec.Host(),
			role: inventory.Role(rec.Host()),
		}

		if addr, ok := rec.Get(sshcfg.FieldHostName); ok {
			item.addr = addr.Text()
		}

		if port, ok := rec.Get(sshcfg.FieldPort); ok {
			item.port = port.Number()
		}

		items = append(items, item)
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "vagrant hosts"

	p := tea.NewProgram(
		browseModel{list: l},
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return ErrBrowse.Wrap(err)
	}

	m, ok := final.(browseModel)
	if !ok || m.selected == "" {
		return nil
	}

	vars, _ := inv.HostVars(m.selected)

	var out []byte

	if b.Pretty {
		out, err = json.MarshalIndent(vars, "", "    ")
	} else {
		out, err = json.Marshal(vars)
	}

	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	fmt.Println(string(out))

	return nil
}
