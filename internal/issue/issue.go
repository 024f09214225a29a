// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SearchDirUnusableId Id = iota + 1
	ConfigLoadFailedId
	ModuleNotFoundId
	ContextDestroyedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	searchDirUnusableIssue = &Issue{
		id: SearchDirUnusableId,
		mdMsg: `
# Unusable search directory!

A configured search directory could not be validated. yangkit requires every
search directory to exist, be a directory, and be readable and traversable
by the current user.

## Things you can try:
- Check the path for typos
- Check directory permissions:
~~~
$ ls -ld /path/to/modules
~~~

- Remove the entry from search_paths in your config file:
~~~
$ yangkit config show
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the yangkit configuration file.

## Configuration file locations:
- Linux: ~/.config/yangkit/config.cue (or config.toml)
- macOS: ~/Library/Application Support/yangkit/config.cue
- Windows: %APPDATA%\yangkit\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ yangkit config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
search_paths: [
	"/opt/yang/standard",
	"/opt/yang/vendor",
]

options: {
	prefer_search_dirs: true
}
~~~`,
	}

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Module not found!

The requested schema module was not found in any configured location.

## Search order:
1. Configured search directories (first, with prefer_search_dirs)
2. Current working directory (unless disabled)

## Things you can try:
- List the directories actually being searched:
~~~
$ yangkit paths
~~~

- Add the directory containing the module to search_paths
- Check the module name and revision spelling`,
	}

	contextDestroyedIssue = &Issue{
		id: ContextDestroyedId,
		mdMsg: `
# Context already destroyed!

An operation was attempted on a context after it was destroyed. A destroyed
context releases its search paths, module inventory, dictionary, and
diagnostics; no operation is valid on it afterwards.

## Things you can try:
- Create a fresh context and repeat the operation
- Review the teardown order in the calling code`,
	}

	issues = map[Id]*Issue{
		searchDirUnusableIssue.Id(): searchDirUnusableIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		moduleNotFoundIssue.Id():    moduleNotFoundIssue,
		contextDestroyedIssue.Id():  contextDestroyedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
