// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ProjectNotFoundId Id = iota + 1
	ProjectFileParseErrorId
	EntryFileMissingId
	PackageNameMissingId
	InvalidDestinationId
	DependencyCycleId
	NonPeerDependenciesId
	ConfigLoadFailedId
	WatchFailedId
)

type MarkdownMsg string

type HttpLink string

// Issue is one entry of the troubleshooting catalog: a markdown card the
// CLI renders when a run hits a known fatal condition.
type Issue struct {
	id       Id          // catalog key, mapped from classified errors
	mdMsg    MarkdownMsg // card body
	docLinks []HttpLink  // optional documentation links, appended under See also
	extLinks []HttpLink  // optional external references, same treatment
}

func (i *Issue) Id() Id { return i.id }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy; catalog entries are shared values.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// ExtLinks returns a copy; catalog entries are shared values.
func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Render produces the terminal-styled card. Links, when present, are
// appended as a See also section of autolink bullets.
func (i *Issue) Render(stylePath string) (string, error) {
	var b strings.Builder
	b.WriteString(string(i.mdMsg))
	if len(i.docLinks)+len(i.extLinks) > 0 {
		b.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			b.WriteString("\n- <" + string(link) + ">")
		}
		for _, link := range i.extLinks {
			b.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(b.String(), stylePath)
}

var (
	render = glamour.Render

	projectNotFoundIssue = &Issue{
		id: ProjectNotFoundId,
		mdMsg: `
# No library project found!

We searched for a library project but couldn't find one at the given path.

## What counts as a project:
1. An ` + "`ng-package.json`" + ` file (or a directory containing one)
2. A ` + "`package.json`" + ` file with an ` + "`ngPackage`" + ` property

## Things you can try:
- Create an ng-package.json in your library directory:
~~~
$ ng-packagr init
~~~

- Or point at the project explicitly:
~~~
$ ng-packagr build -p path/to/ng-package.json
~~~

## Example ng-package.json:
~~~json
{
  "dest": "dist",
  "lib": {
    "entryFile": "public_api.ts"
  }
}
~~~`,
	}

	projectFileParseErrorIssue = &Issue{
		id: ProjectFileParseErrorId,
		mdMsg: `
# Failed to parse the project file!

Your ng-package.json (or the "ngPackage" property in package.json) contains
syntax errors or invalid configuration.

## Common issues:
- Invalid JSON syntax (trailing commas, missing quotes, etc.)
- Unknown field names
- Invalid values for known fields (e.g. ` + "`cssUrl`" + ` must be "inline" or "none")

## Things you can try:
- Check the error message above for the offending field
- Run with verbose mode for more details:
~~~
$ ng-packagr --verbose validate
~~~

## Example of a valid configuration:
~~~json
{
  "dest": "../../dist/widgets",
  "deleteDestPath": true,
  "lib": {
    "entryFile": "public_api.ts",
    "cssUrl": "inline",
    "umdModuleIds": {
      "rxjs": "Rx"
    }
  }
}
~~~`,
	}

	entryFileMissingIssue = &Issue{
		id: EntryFileMissingId,
		mdMsg: `
# Entry file not found!

The ` + "`lib.entryFile`" + ` of an entry point does not exist on disk.

## Things you can try:
- Check the path is relative to the directory holding the ng-package.json:
~~~json
{
  "lib": {
    "entryFile": "src/public_api.ts"
  }
}
~~~

- List the discovered entry points and their entry files:
~~~
$ ng-packagr ls
~~~

- Verify the file was not moved or renamed`,
	}

	packageNameMissingIssue = &Issue{
		id: PackageNameMissingId,
		mdMsg: `
# Package name missing!

The primary entry point's package.json has no ` + "`name`" + `, so module IDs and
bundle file names cannot be derived.

## Things you can try:
- Add a name to the package.json next to your ng-package.json:
~~~json
{
  "name": "@acme/widgets",
  "version": "1.0.0"
}
~~~

- Scoped names (` + "`@scope/name`" + `) are supported and become part of every
  secondary entry point's module ID`,
	}

	invalidDestinationIssue = &Issue{
		id: InvalidDestinationId,
		mdMsg: `
# Invalid destination!

The destination directory of the build could not be prepared.

## Common causes:
- ` + "`dest`" + ` points at a location you cannot write to
- The destination overlaps the source tree in a surprising way
- A file sits where the destination directory should be

## Things you can try:
- Check the ` + "`dest`" + ` value of the primary ng-package.json; it resolves
  relative to the file's directory:
~~~json
{
  "dest": "../../dist/widgets"
}
~~~

- Note that ` + "`dest`" + ` on secondary entry points is ignored; the primary
  controls the destination for the whole package`,
	}

	dependencyCycleIssue = &Issue{
		id: DependencyCycleId,
		mdMsg: `
# Entry point cycle detected!

Your entry points import each other in a cycle, so no build order exists.

## Example of a cycle:
~~~ts
// libs/widgets/testing/public_api.ts
import {Button} from '@acme/widgets/forms';

// libs/widgets/forms/public_api.ts
import {fakeClick} from '@acme/widgets/testing';  // Cycle: testing -> forms -> testing
~~~

## Things you can try:
- Review the imports between your entry points
- Move shared code into a third entry point both can import
- Keep testing entry points leaf-only`,
	}

	nonPeerDependenciesIssue = &Issue{
		id: NonPeerDependenciesId,
		mdMsg: `
# Dependencies should be peer dependencies!

An entry point's package.json declares ` + "`dependencies`" + `, which pins versions
for consumers and can cause duplicate installs.

## Things you can try:
- Move the entries to ` + "`peerDependencies`" + `:
~~~json
{
  "peerDependencies": {
    "@angular/core": "^12.0.0"
  }
}
~~~

- Or whitelist the ones you really mean to ship:
~~~json
{
  "whitelistedNonPeerDependencies": ["tslib"]
}
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the ng-packagr configuration file.

## Configuration file locations:
- Linux: ~/.config/ng-packagr/config.cue
- macOS: ~/Library/Application Support/ng-packagr/config.cue
- Windows: %APPDATA%\ng-packagr\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ ng-packagr config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/ng-packagr/config.cue
~~~

## Example configuration:
~~~cue
project: "libs/widgets"

ui: {
  color_scheme: "auto"
  verbose: false
}

watch: {
  debounce_ms: 500
  ignore: ["**/*.spec.ts"]
}
~~~`,
	}

	watchFailedIssue = &Issue{
		id: WatchFailedId,
		mdMsg: `
# Watch mode failed!

The filesystem watcher could not keep watching your library sources.

## Common causes:
- The inotify watch limit is exhausted (Linux)
- A watched directory was removed while watching
- The filesystem does not deliver change events (some network mounts)

## Things you can try:
- Raise the watch limit on Linux:
~~~
$ sudo sysctl fs.inotify.max_user_watches=524288
~~~

- Ignore bulky directories you don't need watched:
~~~cue
watch: {
  ignore: ["examples/**", "**/fixtures/**"]
}
~~~

- Re-run the build without --watch`,
	}

	issues = map[Id]*Issue{
		projectNotFoundIssue.Id():       projectNotFoundIssue,
		projectFileParseErrorIssue.Id(): projectFileParseErrorIssue,
		entryFileMissingIssue.Id():      entryFileMissingIssue,
		packageNameMissingIssue.Id():    packageNameMissingIssue,
		invalidDestinationIssue.Id():    invalidDestinationIssue,
		dependencyCycleIssue.Id():       dependencyCycleIssue,
		nonPeerDependenciesIssue.Id():   nonPeerDependenciesIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		watchFailedIssue.Id():           watchFailedIssue,
	}
)

// Values lists every catalog entry, in no particular order.
func Values() []*Issue { return maps.Values(issues) }

// Get looks up a catalog entry; unknown ids return nil.
func Get(id Id) *Issue { return issues[id] }
