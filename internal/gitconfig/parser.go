package gitconfig

import (
	"regexp"
	"strings"
)

var (
	remoteHeader  = regexp.MustCompile(`^\[remote\s+"([^"]*)"\]$`)
	branchHeader  = regexp.MustCompile(`^\[branch\s+"([^"]*)"\]$`)
	otherHeader   = regexp.MustCompile(`^\[[^\]]*\]$`)
	keyValueEntry = regexp.MustCompile(`^([^=\s]+)\s*=\s*(.*)$`)
)

// state is the section the scanner is currently inside
type state int

const (
	stateOutside state = iota
	stateInRemote
	stateInBranch
)

func (s state) String() string {
	switch s {
	case stateInRemote:
		return "remote"
	case stateInBranch:
		return "branch"
	default:
		return "outside"
	}
}

// parser is a single forward scan. Only one section is open at a time:
// opening any header flushes whatever was open before.
type parser struct {
	state  state
	remote Remote
	branch Branch
	config *Configuration

	currentBranch CurrentBranchFunc
	current       string
	resolved      bool
}

func parse(text string, currentBranch CurrentBranchFunc) *Configuration {
	p := &parser{
		config:        &Configuration{Remotes: []Remote{}, Branches: []Branch{}},
		currentBranch: currentBranch,
	}
	for _, line := range strings.Split(text, "\n") {
		p.line(strings.TrimSpace(line))
	}
	p.flush()
	return p.config
}

func (p *parser) line(line string) {
	if line == "" {
		return
	}

	if m := remoteHeader.FindStringSubmatch(line); m != nil {
		p.openRemote(m[1])
		return
	}
	if m := branchHeader.FindStringSubmatch(line); m != nil {
		p.openBranch(m[1])
		return
	}
	if otherHeader.MatchString(line) {
		p.flush()
		return
	}
	if m := keyValueEntry.FindStringSubmatch(line); m != nil {
		p.set(m[1], strings.TrimSpace(m[2]))
	}
}

func (p *parser) openRemote(name string) {
	p.flush()
	p.state = stateInRemote
	p.remote = Remote{Name: name}
}

func (p *parser) openBranch(name string) {
	p.flush()
	p.state = stateInBranch
	p.branch = Branch{Name: name, Current: name != "" && name == p.resolveCurrent()}
}

// set assigns a key of the open section; with no section open it is a no-op
func (p *parser) set(key, value string) {
	switch p.state {
	case stateInRemote:
		if key == "url" {
			p.remote.URL = value
		}
	case stateInBranch:
		if key == "remote" {
			p.branch.Remote = value
		}
	}
}

// flush appends the open section to its list and returns to stateOutside
func (p *parser) flush() {
	switch p.state {
	case stateInRemote:
		p.config.Remotes = append(p.config.Remotes, p.remote)
	case stateInBranch:
		p.config.Branches = append(p.config.Branches, p.branch)
	}
	p.state = stateOutside
	p.remote = Remote{}
	p.branch = Branch{}
}

func (p *parser) resolveCurrent() string {
	if !p.resolved {
		p.resolved = true
		if p.currentBranch != nil {
			if name, err := p.currentBranch(); err == nil {
				p.current = name
			}
		}
	}
	return p.current
}
