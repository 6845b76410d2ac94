package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"

	m "covmap.dev/pkg/covmap/internal/model"
)

func renderResolutionsTable(resolutions []m.Resolution, colored bool) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Reported Path", "Outcome", "Indexed File"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, r := range resolutions {
		file := ""

		switch {
		case r.File != nil:
			file = string(r.File.AbsolutePath)
		case r.Outcome == m.Ambiguous:
			file = fmt.Sprintf("%d candidates", r.Candidates)
		}

		table.Append([]string{r.RawPath, renderOutcome(r.Outcome, colored), file})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Entries %d", len(resolutions)), "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderStatisticsTable(stats m.Statistics) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Statistic", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"entries", fmt.Sprintf("%d", stats.Entries)})
	table.Append([]string{"files", fmt.Sprintf("%d", stats.Files)})
	table.Append([]string{"resolved", fmt.Sprintf("%d", stats.Resolved)})
	table.Append([]string{"not found", fmt.Sprintf("%d", stats.NotFound)})
	table.Append([]string{"ambiguous", fmt.Sprintf("%d", stats.Ambiguous)})

	languages := make([]string, 0, len(stats.Languages))
	for language := range stats.Languages {
		languages = append(languages, string(language))
	}

	sort.Strings(languages)

	for _, language := range languages {
		table.Append([]string{"files (" + language + ")", fmt.Sprintf("%d", stats.Languages[m.Language(language)])})
	}

	table.Render()

	return tableBuffer.String()
}

func renderIndexTable(files []m.InputFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Language"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, file := range files {
		table.Append([]string{string(file.RelativePath), string(file.Language)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), ""})
	table.Render()

	return tableBuffer.String()
}
