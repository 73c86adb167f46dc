package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand runs the ov pager over a block of text. It satisfies
// tea.ExecCommand so bubbletea releases the terminal while it runs.
type pagerCommand struct {
	content string
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

// Run shows the content until the user quits the pager
func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the tty itself
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showInPager returns a command that opens the pager and reports when it closes
func showInPager(content string) tea.Cmd {
	return tea.Exec(newPagerCommand(content), func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
