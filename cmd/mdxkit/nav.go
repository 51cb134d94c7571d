package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/mdxkit/internal/config"
	"github.com/g5becks/mdxkit/internal/registry"
	"github.com/g5becks/mdxkit/internal/ui"
)

func newNavCommand() *cli.Command {
	return &cli.Command{
		Name:   "nav",
		Usage:  "Show the sidebar: nav groups, their pages and API endpoints",
		Flags:  []cli.Flag{jsonFlag()},
		Action: navAction,
	}
}

func navAction(ctx context.Context, cmd *cli.Command) error {
	cfg, reg, err := loadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	return ui.RenderNav(os.Stdout, navRows(reg), listOptions(cmd, cfg))
}

// navRows lists nav pages in order, tab by tab when the sidebar has tabs.
// API endpoints are appended after the pages of the API group, filed under
// their tag.
func navRows(reg *registry.Registry) []ui.NavRow {
	var rows []ui.NavRow

	for _, g := range orderedGroups(reg.Nav()) {
		for _, page := range g.Pages {
			title, _ := reg.SidebarTitle(page)
			rows = append(rows, ui.NavRow{Tab: g.Tab, Group: g.Group, Page: page, Title: title})
		}

		if g.Group != reg.APIGroupName() {
			continue
		}
		for _, sg := range reg.APISidebarEntries() {
			for _, e := range sg.Entries {
				rows = append(rows, ui.NavRow{
					Tab:   g.Tab,
					Group: g.Group + " > " + sg.Tag.Name,
					Page:  e.Path,
					Title: string(e.Method) + " " + e.Title,
				})
			}
		}
	}

	return rows
}

func orderedGroups(nav config.Nav) []config.NavGroup {
	if !nav.HasTabs() {
		return nav.Groups
	}

	var groups []config.NavGroup
	for _, tab := range nav.Tabs {
		groups = append(groups, nav.GroupsForTab(tab)...)
	}
	return groups
}
